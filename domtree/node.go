// Package domtree reconstructs a tree from the html package's flat
// ParseEvent stream. Like entities, it is an external collaborator:
// the html package never builds a tree itself (spec.md §1, §6), so
// callers who only want the event stream never pay tree-building
// cost.
//
// Adapted from the teacher's dom.Node (lukehoban-browser/dom/node.go),
// which held attributes in an unordered map and only modeled Element/
// Text/Document nodes. Node here keeps attribute order (via
// html.Attributes) and adds CommentNode, since ParseEvent carries
// comments as a distinct event.
package domtree

import "github.com/gohtml/htmlevents/html"

// NodeType identifies what a Node represents in the tree.
type NodeType int

const (
	// DocumentNode is the synthetic root every tree has exactly one of.
	DocumentNode NodeType = iota
	// ElementNode corresponds to an OpenEvent/CloseEvent pair.
	ElementNode
	// TextNode corresponds to a TextEvent.
	TextNode
	// CommentNode corresponds to a CommentEvent.
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is one node of a reconstructed tree. Which fields are
// meaningful depends on Type:
//
//	ElementNode   Name, Attributes, SelfClosing, Children
//	TextNode      Text
//	CommentNode   Text
//	DocumentNode  Children
type Node struct {
	Type        NodeType
	Name        string
	Attributes  html.Attributes
	Text        string
	SelfClosing bool
	Children    []*Node
	Parent      *Node
}

// NewElement creates a detached element node.
func NewElement(name string, attrs html.Attributes) *Node {
	return &Node{Type: ElementNode, Name: name, Attributes: attrs}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return &Node{Type: CommentNode, Text: text}
}

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// AppendChild appends child to n's children and sets child's parent.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// GetAttribute returns the named attribute's value, or "" if absent.
func (n *Node) GetAttribute(name string) string {
	value, _ := n.Attributes.Get(name)
	return value
}
