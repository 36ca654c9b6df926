package html

import "github.com/gohtml/htmlevents/log"

// frame is a PendingTag: an element whose Open event has been
// emitted and whose Close has not (spec.md §3, "Parser stack frame").
type frame struct {
	name  string
	attrs Attributes
}

// Parser consumes a Tokenizer's low-level token stream through a
// depth stack of pending open tags, resolving self-closing,
// implicit-close, and mismatch cases, and emits a balanced, well-
// nested sequence of ParseEvents (spec.md §4.4).
type Parser struct {
	tok *Tokenizer

	stack    []frame
	building *frame // the tag-in-construction between OpeningTag and OpeningTagEnd

	queue   []ParseEvent
	drained bool
}

// NewParser creates a parser over the given HTML source.
func NewParser(html string) *Parser {
	return &Parser{tok: NewTokenizer(html)}
}

// Next returns the next parse event, or ok=false once the stream
// (including the end-of-input drain) is exhausted.
func (p *Parser) Next() (ParseEvent, bool) {
	for {
		if len(p.queue) > 0 {
			ev := p.queue[0]
			p.queue = p.queue[1:]
			return ev, true
		}
		if p.drained {
			return ParseEvent{}, false
		}
		tok, ok := p.tok.Next()
		if !ok {
			// The tokenizer always emits an explicit DoneToken before
			// its stream truly ends, so reaching ok=false here means
			// drain has already run; this is just the final exit.
			p.drained = true
			continue
		}
		p.handle(tok)
	}
}

func (p *Parser) handle(tok Token) {
	switch tok.Type {
	case StartToken:
		// no-op
	case DoneToken:
		p.drain()
	case OpeningTagToken:
		p.handleOpeningTag(tok)
	case AttributeToken:
		p.handleAttribute(tok)
	case OpeningTagEndToken:
		p.handleOpeningTagEnd(tok)
	case ClosingTagToken:
		p.handleClosingTag(tok)
	case TextToken:
		p.queue = append(p.queue, ParseEvent{Type: TextEvent, Text: tok.Value})
	case CommentToken:
		p.queue = append(p.queue, ParseEvent{Type: CommentEvent, Text: tok.Value})
	}
}

func (p *Parser) handleOpeningTag(tok Token) {
	// A new OpeningTag discards any existing building frame; under
	// well-formed tokenizer output there should be none.
	p.building = &frame{name: tok.Name}
}

func (p *Parser) handleAttribute(tok Token) {
	if p.building == nil {
		return
	}
	p.building.attrs.Set(tok.Name, tok.Value)
}

func (p *Parser) handleOpeningTagEnd(tok Token) {
	if p.building == nil {
		// Pathological input: a bare OpeningTagEnd with no matching
		// OpeningTag. Pass it through as literal text.
		p.queue = append(p.queue, ParseEvent{Type: TextEvent, Text: tok.Value})
		return
	}

	name := tok.Name
	attrs := p.building.attrs
	p.building = nil

	isSelfClose := tok.Value == "/>" || isVoidElement(name)

	if n := len(p.stack); n > 0 {
		top := p.stack[n-1]
		if closesOnSibling(top.name, name) {
			p.stack = p.stack[:n-1]
			log.WithFields(log.DebugLevel, "html: implicit close", map[string]interface{}{
				"rule": "sibling", "closed": top.name, "trigger": name,
			})
			p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: top.name})
		}
	}

	p.queue = append(p.queue, ParseEvent{Type: OpenEvent, Name: name, Attributes: attrs, SelfClosing: isSelfClose})

	if isSelfClose {
		p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: name, SelfClosing: true})
		return
	}
	p.stack = append(p.stack, frame{name: name, attrs: attrs})
}

func (p *Parser) handleClosingTag(tok Token) {
	n := len(p.stack)
	if n == 0 {
		return
	}

	top := p.stack[n-1]
	if top.name == tok.Name {
		p.stack = p.stack[:n-1]
		p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: tok.Name})
		return
	}

	if n > 1 {
		below := p.stack[n-2]
		if below.name == tok.Name && closedByParent[top.name] {
			p.stack = p.stack[:n-2]
			log.WithFields(log.DebugLevel, "html: implicit close", map[string]interface{}{
				"rule": "closed-by-parent", "closed": top.name, "closing_tag": tok.Name,
			})
			p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: top.name})
			p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: below.name})
			return
		}
	}

	// No matching open tag anywhere an implicit-close rule could
	// reach: silently dropped, per spec.md §4.4 and §7.
}

// drain closes every remaining open frame, deepest child first, so
// the Close events stay well-nested (spec.md §4.4 "End of input").
func (p *Parser) drain() {
	for i := len(p.stack) - 1; i >= 0; i-- {
		p.queue = append(p.queue, ParseEvent{Type: CloseEvent, Name: p.stack[i].name})
	}
	p.stack = nil
}
