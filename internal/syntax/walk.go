package syntax

import "iter"

// Walk returns a depth-first pre-order traversal of the subtree rooted at
// root: each node is yielded before its children, children in source order,
// nothing skipped. The sequence is lazy and restartable; ranging over it
// again starts a fresh traversal.
func Walk(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for i := 0; i < n.ChildCount(); i++ {
				if !visit(n.Child(i)) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
