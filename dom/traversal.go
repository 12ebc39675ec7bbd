package dom

import "strings"

// searchRoot is where element lookups start: a document searches its body,
// every other node searches itself.
func (n *Node) searchRoot() *Node {
	if n.NodeType == DocumentNode && n.Body != nil {
		return n.Body
	}
	return n
}

// GetElementsByTagName returns the descendant elements with the given tag
// name in document order. "*" matches every element. Tag names compare
// case-insensitively.
func (n *Node) GetElementsByTagName(tag string) []*Node {
	root := n.searchRoot()
	if tag == "*" {
		return root.scan(func(*Node) bool { return true }, false)
	}
	return root.scan(func(el *Node) bool {
		return strings.EqualFold(el.TagName, tag)
	}, false)
}

// GetElementById returns the first element in document order whose id
// attribute equals id. An element receiver is checked before its
// descendants.
func (n *Node) GetElementById(id string) *Node {
	root := n.searchRoot()
	if root.NodeType == ElementNode {
		if v, ok := root.LookupAttribute("id"); ok && v == id {
			return root
		}
	}
	for _, child := range root.ChildNodes {
		if child.NodeType != ElementNode {
			continue
		}
		if found := child.GetElementById(id); found != nil {
			return found
		}
	}
	return nil
}

// scan walks the descendants of n in document order and collects the
// elements accepted by match. With first set it stops at the first one.
// The walk never leaves the subtree of n and never yields n.
func (n *Node) scan(match func(*Node) bool, first bool) []*Node {
	var found []*Node
	for el := n.FirstChild; el != nil; el = n.next(el) {
		if el.NodeType != ElementNode || !match(el) {
			continue
		}
		found = append(found, el)
		if first {
			break
		}
	}
	return found
}

// next returns the node after el in a pre-order walk bounded by n.
func (n *Node) next(el *Node) *Node {
	if el.FirstChild != nil {
		return el.FirstChild
	}
	for ; el != nil && el != n; el = el.ParentNode {
		if el.NextSibling != nil {
			return el.NextSibling
		}
	}
	return nil
}
