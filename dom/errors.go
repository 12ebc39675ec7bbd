package dom

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a node expected to be a child of the
	// receiver is not one. The tree is left untouched.
	ErrNotFound = errors.New("node not found")
	// ErrHierarchyRequest is returned when an insertion would put a node
	// inside itself or give children to a node that cannot have them.
	ErrHierarchyRequest = errors.New("hierarchy request error")
)

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.NodeName
}
