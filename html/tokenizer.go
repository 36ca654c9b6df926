package html

import (
	"strings"

	"github.com/gohtml/htmlevents/log"
)

// tstate is the tokenizer's four-state automaton (spec.md §4.3).
type tstate int

const (
	stateText tstate = iota
	stateTag
	stateComment
	stateScript
)

// Tokenizer drives the chunkers over a cursor into an HTML source
// string, emitting a single-shot, forward-only stream of low-level
// Tokens. It never fails and never backtracks past a consumed
// position.
type Tokenizer struct {
	input string
	pos   int
	state tstate

	currentTag string // tag name being built while in stateTag

	startEmitted bool
	doneEmitted  bool

	// pendingNonText holds a token that Next must return immediately
	// on its next call, used to keep a flushed coalesced Text token
	// ahead of the non-text token that triggered the flush, and to
	// keep the final DoneToken behind a final flush.
	pendingNonText *Token

	// rawQueue holds extra raw tokens produced by a single chunker
	// match that logically yields more than one token (</script>'s
	// raw-text body followed by its synthetic ClosingTag).
	rawQueue []Token

	textBuf strings.Builder // coalesce buffer, spec.md §4.3 "Text coalescing"
}

// NewTokenizer creates a tokenizer over the given HTML source.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, state: stateText}
}

// Next returns the next token in the stream, or ok=false once the
// stream is exhausted (after a DoneToken has already been returned).
func (t *Tokenizer) Next() (Token, bool) {
	if t.pendingNonText != nil {
		tok := *t.pendingNonText
		t.pendingNonText = nil
		return tok, true
	}
	if !t.startEmitted {
		t.startEmitted = true
		return Token{Type: StartToken}, true
	}
	if t.doneEmitted {
		return Token{}, false
	}

	for {
		tok, ok := t.rawStep()
		if !ok {
			return t.finish()
		}
		if tok.Type == TextToken {
			t.textBuf.WriteString(tok.Value)
			continue
		}
		if flushed, didFlush := t.flushText(); didFlush {
			cp := tok
			t.pendingNonText = &cp
			return flushed, true
		}
		return tok, true
	}
}

// finish flushes any buffered text and emits the final DoneToken,
// queuing Done behind a flushed text token if one is pending.
func (t *Tokenizer) finish() (Token, bool) {
	if flushed, didFlush := t.flushText(); didFlush {
		done := Token{Type: DoneToken}
		t.pendingNonText = &done
		t.doneEmitted = true
		return flushed, true
	}
	t.doneEmitted = true
	return Token{Type: DoneToken}, true
}

func (t *Tokenizer) flushText() (Token, bool) {
	if t.textBuf.Len() == 0 {
		return Token{}, false
	}
	text := t.textBuf.String()
	t.textBuf.Reset()
	return Token{Type: TextToken, Value: text}, true
}

// rawStep advances the state machine by exactly one chunker match (or
// one fallback single-character consumption) and returns the token it
// produced. ok is false only once the cursor has reached end of
// input with nothing left to process.
func (t *Tokenizer) rawStep() (Token, bool) {
	if len(t.rawQueue) > 0 {
		tok := t.rawQueue[0]
		t.rawQueue = t.rawQueue[1:]
		return tok, true
	}
	if t.pos >= len(t.input) {
		return Token{}, false
	}
	switch t.state {
	case stateText:
		if tok, matched := t.stepText(); matched {
			return tok, true
		}
		// Entered a comment without emitting; try again from the new
		// state. pos has already advanced past "<!--".
		return t.rawStep()
	case stateTag:
		if tok, matched := t.stepTag(); matched {
			return tok, true
		}
		// Abandoned tag: fell back to stateText without consuming or
		// emitting. Retry from stateText.
		return t.rawStep()
	case stateComment:
		return t.stepComment(), true
	case stateScript:
		return t.stepScript(), true
	}
	return Token{}, false
}

// stepText implements the InText transitions of spec.md §4.3.
func (t *Tokenizer) stepText() (Token, bool) {
	if t.input[t.pos] == '<' {
		if c, ok := chunkOpeningTagStart.match(t.input, t.pos); ok {
			name := c.group(1)
			t.pos += c.length
			t.currentTag = name
			t.state = stateTag
			log.WithFields(log.DebugLevel, "html: state transition", map[string]interface{}{
				"from": "InText", "to": "InTag", "tag": name,
			})
			return Token{Type: OpeningTagToken, Name: name}, true
		}
		if c, ok := chunkClosingTag.match(t.input, t.pos); ok {
			name := c.group(1)
			t.pos += c.length
			return Token{Type: ClosingTagToken, Name: name}, true
		}
		if c, ok := chunkCommentOpen.match(t.input, t.pos); ok {
			t.pos += c.length
			t.state = stateComment
			log.WithFields(log.DebugLevel, "html: state transition", map[string]interface{}{
				"from": "InText", "to": "InComment",
			})
			return Token{}, false
		}
	}
	if c, ok := chunkText.match(t.input, t.pos); ok {
		t.pos += c.length
		return Token{Type: TextToken, Value: c.group(0)}, true
	}
	// Fallback: a stray '<' that matched nothing above. Consume one
	// character as literal text to guarantee forward progress.
	ch := t.input[t.pos]
	t.pos++
	return Token{Type: TextToken, Value: string(ch)}, true
}

// stepTag implements the InTag transitions of spec.md §4.3.
func (t *Tokenizer) stepTag() (Token, bool) {
	if c, ok := chunkAttributeName.match(t.input, t.pos); ok {
		name := c.group(1)
		hasEquals := c.group(2) != ""
		t.pos += c.length
		if hasEquals {
			value, n := readAttributeValue(t.input, t.pos)
			t.pos += n
			return Token{Type: AttributeToken, Name: name, Value: value}, true
		}
		return Token{Type: AttributeToken, Name: name, Value: ""}, true
	}
	if c, ok := chunkTagEnd.match(t.input, t.pos); ok {
		terminator := c.group(1)
		t.pos += c.length
		name := t.currentTag
		if name == "script" {
			t.state = stateScript
			log.WithFields(log.DebugLevel, "html: state transition", map[string]interface{}{
				"from": "InTag", "to": "InScript", "tag": name,
			})
		} else {
			t.state = stateText
		}
		return Token{Type: OpeningTagEndToken, Name: name, Value: terminator}, true
	}
	// Abandoned tag: input ended (or diverged) while still gathering
	// attributes. No token for the partial tag.
	t.state = stateText
	return Token{}, false
}

// stepComment implements the InComment transitions of spec.md §4.3.
func (t *Tokenizer) stepComment() Token {
	if c, ok := chunkCommentBody.match(t.input, t.pos); ok {
		t.pos += c.length
		t.state = stateText
		return Token{Type: CommentToken, Value: c.group(1)}
	}
	// No "-->" found: the remainder of the input is the comment body
	// and parsing ends.
	log.WithFields(log.DebugLevel, "html: unterminated construct, emitting remainder and stopping", map[string]interface{}{
		"construct": "comment",
	})
	body := t.input[t.pos:]
	t.pos = len(t.input)
	return Token{Type: CommentToken, Value: body}
}

// stepScript implements the InScript transitions of spec.md §4.3. A
// matched ScriptBody produces two tokens (Text then ClosingTag) for a
// single chunker match; the second is queued in rawQueue so the very
// next call to rawStep returns it, even if the cursor is already at
// end of input.
func (t *Tokenizer) stepScript() Token {
	if c, ok := chunkScriptBody.match(t.input, t.pos); ok {
		t.pos += c.length
		t.state = stateText
		t.rawQueue = append(t.rawQueue, Token{Type: ClosingTagToken, Name: "script"})
		return Token{Type: TextToken, Value: c.group(1)}
	}
	// No "</script>" found: the remainder is raw text and parsing
	// ends.
	log.WithFields(log.DebugLevel, "html: unterminated construct, emitting remainder and stopping", map[string]interface{}{
		"construct": "script",
	})
	body := t.input[t.pos:]
	t.pos = len(t.input)
	return Token{Type: TextToken, Value: body}
}
