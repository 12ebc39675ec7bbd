// Package dom is a small headless document tree: elements, text nodes and
// fragments linked through parent, child and sibling pointers, with element
// lookup by a flat selector language and serialization back to markup.
package dom

// NodeType identifies which kind of node a Node is. Values follow the DOM
// nodeType constants.
type NodeType uint16

const (
	ElementNode          NodeType = 1
	TextNode             NodeType = 3
	DocumentNode         NodeType = 9
	DocumentFragmentNode NodeType = 11
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case DocumentNode:
		return "document"
	case DocumentFragmentNode:
		return "document-fragment"
	default:
		return "unknown"
	}
}
