package html

// EventType identifies which high-level parse event a ParseEvent
// carries, per spec.md §3.
type EventType int

const (
	// OpenEvent is emitted when an opening tag (and its attributes)
	// has been fully resolved.
	OpenEvent EventType = iota
	// TextEvent carries a coalesced run of text.
	TextEvent
	// CommentEvent carries the body of a comment.
	CommentEvent
	// CloseEvent is emitted for every Open, whether from an explicit
	// closing tag, an implicit close, a self-closing tag, or the
	// final drain.
	CloseEvent
)

func (e EventType) String() string {
	switch e {
	case OpenEvent:
		return "open"
	case TextEvent:
		return "text"
	case CommentEvent:
		return "comment"
	case CloseEvent:
		return "close"
	default:
		return "unknown"
	}
}

// Attribute is one name/value pair of an opening tag, in source
// order.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered name->value mapping: iteration order is
// the order names first appeared in the source, and a later
// occurrence of the same name overwrites the value in place
// (last-wins) rather than moving it to the end (spec.md §3).
type Attributes []Attribute

// Set upserts name=value, preserving the position of name's first
// occurrence if it was already present.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Get returns the value associated with name and whether it was
// present.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// ParseEvent is a high-level, well-nested parse event. The fields
// populated depend on Type:
//
//	OpenEvent     Name, Attributes, SelfClosing
//	TextEvent     Text
//	CommentEvent  Text
//	CloseEvent    Name, SelfClosing
type ParseEvent struct {
	Type        EventType
	Name        string
	Attributes  Attributes
	Text        string
	SelfClosing bool
}
