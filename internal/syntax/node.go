package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Node is one node of a parsed syntax tree. The zero value is invalid; nodes
// are obtained from Tree.Root and child/parent lookups. Nodes are read-only
// views into the tree and share the underlying source buffer.
type Node struct {
	inner *sitter.Node
	src   []byte
}

// Kind returns the grammar's tag for this node, e.g. "module", "assignment",
// "function_definition", "identifier".
func (n Node) Kind() string {
	return n.inner.Type()
}

// StartLine returns the 1-based line on which the node starts.
func (n Node) StartLine() int {
	return int(n.inner.StartPoint().Row) + 1
}

// StartByte returns the node's starting byte offset in the source.
func (n Node) StartByte() int {
	return int(n.inner.StartByte())
}

// EndByte returns the byte offset just past the node's end.
func (n Node) EndByte() int {
	return int(n.inner.EndByte())
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	return n.inner.Content(n.src)
}

// ChildCount returns the number of children, named and anonymous.
func (n Node) ChildCount() int {
	return int(n.inner.ChildCount())
}

// Child returns the i-th child in source order.
func (n Node) Child(i int) Node {
	return Node{inner: n.inner.Child(i), src: n.src}
}

// ChildByField returns the child occupying the named grammar field,
// e.g. "left" on an assignment or "name" on a function_definition.
func (n Node) ChildByField(name string) (Node, bool) {
	child := n.inner.ChildByFieldName(name)
	if child == nil {
		return Node{}, false
	}
	return Node{inner: child, src: n.src}, true
}

// Parent returns the enclosing node. The relation is non-owning: the tree
// owns all nodes and the parent is looked up, not stored.
func (n Node) Parent() (Node, bool) {
	parent := n.inner.Parent()
	if parent == nil {
		return Node{}, false
	}
	return Node{inner: parent, src: n.src}, true
}

// IsNamed reports whether the node is a named grammar construct rather than
// an anonymous token such as punctuation.
func (n Node) IsNamed() bool {
	return n.inner.IsNamed()
}

// IsError reports whether the node marks a spot where the parser recovered
// from a syntax error.
func (n Node) IsError() bool {
	return n.inner.IsError() || n.inner.IsMissing()
}

// Same reports whether two nodes denote the same position in the tree.
func (n Node) Same(other Node) bool {
	return n.inner.StartByte() == other.inner.StartByte() &&
		n.inner.EndByte() == other.inner.EndByte() &&
		n.Kind() == other.Kind()
}
