package dom

import "strings"

// String serializes n to markup.
//
// A text node renders as its data. An element renders as <TAG attrs>,
// its children and </TAG>, or as <TAG attrs/> with no children when the tag
// is void. Documents and fragments render their children only.
//
// Attributes are written in a fixed order: plain attributes and style as
// first set, then class, then the dataset as data-* attributes. A style that
// was never set through SetAttribute follows the plain attributes. Values are
// written between double quotes as they are, without escaping.
func (n *Node) String() string {
	var sb strings.Builder
	serializeNode(n, &sb)
	return sb.String()
}

func serializeNode(n *Node, sb *strings.Builder) {
	switch n.NodeType {
	case TextNode:
		sb.WriteString(n.Data)
	case ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.TagName)
		serializeAttributes(n.Element, sb)
		if n.IsVoid() {
			sb.WriteString("/>")
			return
		}
		sb.WriteString(">")
		serializeChildren(n, sb)
		sb.WriteString("</")
		sb.WriteString(n.TagName)
		sb.WriteString(">")
	default:
		serializeChildren(n, sb)
	}
}

func serializeChildren(n *Node, sb *strings.Builder) {
	for _, child := range n.ChildNodes {
		serializeNode(child, sb)
	}
}

func serializeAttributes(e *Element, sb *strings.Builder) {
	e.eachAttribute(func(name, value string) {
		serializeAttribute(name, value, sb)
	})
	if e.ClassName != "" {
		serializeAttribute("class", e.ClassName, sb)
	}
	for _, k := range e.Dataset.keys {
		serializeAttribute(dataPrefix+k, e.Dataset.values[k], sb)
	}
}

func serializeAttribute(name, value string, sb *strings.Builder) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString("=\"")
	sb.WriteString(value)
	sb.WriteString("\"")
}
