package dom

import "slices"

// NodeList is the ordered child sequence of a node.
type NodeList []*Node

// Length returns the number of nodes in the list.
func (l NodeList) Length() int {
	return len(l)
}

// Item returns the node at index i, or nil when i is out of range.
func (l NodeList) Item(i int) *Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Index returns the position of n in the list by identity, or -1.
func (l NodeList) Index(n *Node) int {
	for i := range l {
		if n == l[i] {
			return i
		}
	}
	return -1
}

// Remove cuts the node at index i out of the list and returns it, or
// returns nil when i is out of range.
func (l *NodeList) Remove(i int) *Node {
	node := l.Item(i)
	if node != nil {
		*l = slices.Delete(*l, i, i+1)
	}
	return node
}

// WedgeIn inserts n at index i, shifting later nodes right. An index past
// the end appends; a negative index does nothing.
func (l *NodeList) WedgeIn(i int, n *Node) {
	if i < 0 {
		return
	}
	*l = slices.Insert(*l, min(i, len(*l)), n)
}
