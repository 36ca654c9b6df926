package domtree

import "github.com/gohtml/htmlevents/html"

// Build consumes every ParseEvent produced by parsing src and
// reconstructs a tree rooted at a DocumentNode. Because ParseEvent is
// already well-nested (every Open has a matching Close, spec.md §4.4),
// reconstruction is a single stack-based pass with no lookahead.
func Build(src string) *Node {
	b := NewBuilder()
	for ev := range html.Parse(src) {
		b.Feed(ev)
	}
	return b.Root()
}

// Builder incrementally reconstructs a tree from a live ParseEvent
// stream, for callers who want to interleave tree building with other
// per-event work (e.g. entity decoding via entities.DecodingTextFilter)
// instead of calling Build directly.
type Builder struct {
	root    *Node
	current *Node
}

// NewBuilder creates a Builder with an empty document root.
func NewBuilder() *Builder {
	root := NewDocument()
	return &Builder{root: root, current: root}
}

// Feed applies one ParseEvent to the tree under construction.
func (b *Builder) Feed(ev html.ParseEvent) {
	switch ev.Type {
	case html.OpenEvent:
		el := NewElement(ev.Name, ev.Attributes)
		el.SelfClosing = ev.SelfClosing
		b.current.AppendChild(el)
		b.current = el
	case html.TextEvent:
		b.current.AppendChild(NewText(ev.Text))
	case html.CommentEvent:
		b.current.AppendChild(NewComment(ev.Text))
	case html.CloseEvent:
		if b.current.Parent != nil {
			b.current = b.current.Parent
		}
	}
}

// Root returns the document root built so far.
func (b *Builder) Root() *Node {
	return b.root
}
