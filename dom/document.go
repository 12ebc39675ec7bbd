package dom

// Document is the kind record of a document node. A document has a single
// child, its body element, and builds detached nodes owned by it.
type Document struct {
	Body *Node

	node *Node
}

// NewDocument returns a new document whose only child is an empty BODY
// element.
func NewDocument() *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
	}
	n.Document = &Document{node: n}
	n.Body = n.CreateElement("body")
	n.insertBefore(n.Body, nil)
	return n
}

// CreateElement returns a detached element owned by the document.
func (d *Document) CreateElement(tag string) *Node {
	e := NewElement(tag)
	e.OwnerDocument = d.node
	return e
}

// CreateTextNode returns a detached text node owned by the document.
func (d *Document) CreateTextNode(data string) *Node {
	t := NewTextNode(data)
	t.OwnerDocument = d.node
	return t
}

// CreateDocumentFragment returns an empty fragment owned by the document.
func (d *Document) CreateDocumentFragment() *Node {
	f := NewDocumentFragment()
	f.OwnerDocument = d.node
	return f
}
