package dom

import (
	"strings"

	"github.com/pkg/errors"
)

// Node is any node of the tree. All kinds share this record; NodeType says
// which of the embedded kind records is set. Fragments carry none.
//
// FirstChild, LastChild, PreviousSibling and NextSibling are derived from
// ChildNodes by the insertion and removal methods. Read them, don't set them.
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node kinds
	*Element
	*Text
	*Document
}

// NewElement returns a detached element. The tag name is stored upper case.
func NewElement(tag string) *Node {
	tag = strings.ToUpper(tag)
	return &Node{
		NodeType: ElementNode,
		NodeName: tag,
		Element:  newElement(tag),
	}
}

// NewTextNode returns a detached text node holding data.
func NewTextNode(data string) *Node {
	return &Node{
		NodeType: TextNode,
		NodeName: "#text",
		Text:     &Text{Data: data},
	}
}

// NewDocumentFragment returns an empty fragment.
func NewDocumentFragment() *Node {
	return &Node{
		NodeType: DocumentFragmentNode,
		NodeName: "#document-fragment",
	}
}

// HasChildNodes reports whether n has any children.
func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// ParentElement returns the parent if it is an element, else nil.
func (n *Node) ParentElement() *Node {
	if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode {
		return n.ParentNode
	}
	return nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for a := other; a != nil; a = a.ParentNode {
		if a == n {
			return true
		}
	}
	return false
}

// AppendChild inserts node as the last child of n.
func (n *Node) AppendChild(node *Node) (*Node, error) {
	return n.InsertBefore(node, nil)
}

// InsertBefore inserts node into n's children just before ref, or at the end
// when ref is nil, and returns node.
//
// A node that already has a parent is detached from it first. A fragment is
// never attached itself: its children are moved, in order, to the target
// position and the fragment is left empty.
//
// A document holds only its body: inserting into a document, or moving the
// body out of one, returns ErrHierarchyRequest.
func (n *Node) InsertBefore(node, ref *Node) (*Node, error) {
	if err := n.validateInsertion(node, ref); err != nil {
		return nil, err
	}

	if node.NodeType == DocumentFragmentNode {
		children := append(NodeList(nil), node.ChildNodes...)
		for _, child := range children {
			n.insertBefore(child, ref)
		}
		traceTree("InsertBefore", n, node)
		return node, nil
	}

	if node == ref {
		return node, nil
	}
	n.insertBefore(node, ref)
	traceTree("InsertBefore", n, node)
	return node, nil
}

func (n *Node) validateInsertion(node, ref *Node) error {
	if node == nil {
		return errors.Wrapf(ErrHierarchyRequest, "insert nil into %s", n.NodeName)
	}
	if n.NodeType == TextNode {
		return errors.Wrapf(ErrHierarchyRequest, "%s cannot have children", n.NodeName)
	}
	if n.NodeType == DocumentNode {
		return errors.Wrapf(ErrHierarchyRequest, "%s only holds its body", n.NodeName)
	}
	if p := node.ParentNode; p != nil && p.NodeType == DocumentNode {
		return errors.Wrapf(ErrHierarchyRequest, "%s cannot leave its document", node.NodeName)
	}
	if node.NodeType == DocumentNode {
		return errors.Wrapf(ErrHierarchyRequest, "%s cannot be inserted", node.NodeName)
	}
	if node.Contains(n) {
		return errors.Wrapf(ErrHierarchyRequest, "%s would become its own descendant", node.NodeName)
	}
	if ref != nil && ref.ParentNode != n {
		return errors.Wrapf(ErrNotFound, "reference %s is not a child of %s", ref.NodeName, n.NodeName)
	}
	return nil
}

// insertBefore splices a non-fragment node into place. ref is nil or a
// child of n other than node.
func (n *Node) insertBefore(node, ref *Node) {
	if p := node.ParentNode; p != nil {
		p.removeAt(p.ChildNodes.Index(node))
	}

	pos := len(n.ChildNodes)
	if ref != nil {
		pos = n.ChildNodes.Index(ref)
	}
	n.ChildNodes.WedgeIn(pos, node)
	node.ParentNode = n
	if node.OwnerDocument == nil {
		node.OwnerDocument = n.ownerDocument()
	}

	n.updateLinks(node)
	if ref != nil {
		n.updateLinks(ref.NextSibling, ref.PreviousSibling, ref)
	}
}

// RemoveChild detaches child from n and returns it. The removed node keeps
// its own children and can be inserted again. If child is not a direct
// child of n, ErrNotFound is returned and nothing changes. The body of a
// document cannot be removed.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	i := n.ChildNodes.Index(child)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "remove %s from %s", nodeLabel(child), n.NodeName)
	}
	if n.NodeType == DocumentNode {
		return nil, errors.Wrapf(ErrHierarchyRequest, "remove %s from %s", nodeLabel(child), n.NodeName)
	}
	n.removeAt(i)
	traceTree("RemoveChild", n, child)
	return child, nil
}

func (n *Node) removeAt(i int) *Node {
	child := n.ChildNodes.Remove(i)
	if child == nil {
		return nil
	}
	child.ParentNode = nil
	n.updateLinks(child.PreviousSibling, child.NextSibling, child)
	return child
}

// ReplaceChild puts node where old is and removes old, returning old. node
// is moved from its current parent if it has one.
func (n *Node) ReplaceChild(node, old *Node) (*Node, error) {
	if old == nil || old.ParentNode != n {
		return nil, errors.Wrapf(ErrNotFound, "replace %s in %s", nodeLabel(old), n.NodeName)
	}
	if node == old {
		return old, nil
	}
	if _, err := n.InsertBefore(node, old); err != nil {
		return nil, err
	}
	return n.RemoveChild(old)
}

// updateLinks recomputes first and last child of n, and the sibling
// pointers of each given node from its current parent's child list along
// with the back pointers of its neighbours. Detached nodes lose their
// sibling pointers. Running it again on the same nodes changes nothing.
func (n *Node) updateLinks(nodes ...*Node) {
	n.FirstChild = n.ChildNodes.Item(0)
	n.LastChild = n.ChildNodes.Item(len(n.ChildNodes) - 1)

	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.ParentNode == nil {
			node.PreviousSibling, node.NextSibling = nil, nil
			continue
		}
		siblings := node.ParentNode.ChildNodes
		i := siblings.Index(node)
		node.NextSibling = siblings.Item(i + 1)
		if node.NextSibling != nil {
			node.NextSibling.PreviousSibling = node
		}
		node.PreviousSibling = siblings.Item(i - 1)
		if node.PreviousSibling != nil {
			node.PreviousSibling.NextSibling = node
		}
	}
}

// TextContent returns the text of n: its own data for a text node, else the
// data of every descendant text node in document order.
func (n *Node) TextContent() string {
	if n.NodeType == TextNode {
		return n.Data
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, child := range n.ChildNodes {
		if child.NodeType == TextNode {
			sb.WriteString(child.Data)
			continue
		}
		child.collectText(sb)
	}
}

// SetTextContent replaces the data of a text node, or replaces every child of
// an element or fragment with a single text node. An empty string leaves no
// children. On a document it does nothing.
func (n *Node) SetTextContent(data string) {
	switch n.NodeType {
	case TextNode:
		n.Data = data
		return
	case DocumentNode:
		return
	}
	for len(n.ChildNodes) > 0 {
		n.removeAt(len(n.ChildNodes) - 1)
	}
	if data != "" {
		n.insertBefore(NewTextNode(data), nil)
	}
	traceTree("SetTextContent", n, n.FirstChild)
}

func (n *Node) ownerDocument() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}

func (n *Node) getRoot() *Node {
	root := n
	for root.ParentNode != nil {
		root = root.ParentNode
	}
	return root
}
