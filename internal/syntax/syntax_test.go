package syntax

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestParseValidSource(t *testing.T) {
	tree := mustParse(t, "x = 1\nprint(x)\n")
	root := tree.Root()

	assert.Equal(t, "module", root.Kind())
	assert.Equal(t, 1, root.StartLine())
	assert.Equal(t, 0, root.StartByte())
	assert.False(t, root.IsError())
}

func TestParseIsErrorTolerant(t *testing.T) {
	// Broken source still yields a tree; the recovery spot is marked with an
	// error node rather than failing the parse.
	tree := mustParse(t, "def broken(:\n")

	errNodes := 0
	for node := range Walk(tree.Root()) {
		if node.IsError() {
			errNodes++
		}
	}
	assert.Greater(t, errNodes, 0)
}

func TestNodeText(t *testing.T) {
	tree := mustParse(t, "count = 42\n")

	var ident Node
	found := false
	for node := range Walk(tree.Root()) {
		if node.Kind() == "identifier" {
			ident = node
			found = true
			break
		}
	}
	require.True(t, found)
	assert.Equal(t, "count", ident.Text())
	assert.Equal(t, 0, ident.StartByte())
	assert.Equal(t, 5, ident.EndByte())
}

func TestNodeParent(t *testing.T) {
	tree := mustParse(t, "x = 1\n")

	_, ok := tree.Root().Parent()
	assert.False(t, ok, "root has no parent")

	for node := range Walk(tree.Root()) {
		if node.Kind() != "identifier" {
			continue
		}
		parent, ok := node.Parent()
		require.True(t, ok)
		assert.Equal(t, "assignment", parent.Kind())
		// child range contained in parent range
		assert.GreaterOrEqual(t, node.StartByte(), parent.StartByte())
		assert.LessOrEqual(t, node.EndByte(), parent.EndByte())
	}
}

func TestChildByField(t *testing.T) {
	tree := mustParse(t, "l = 5\n")

	for node := range Walk(tree.Root()) {
		if node.Kind() != "assignment" {
			continue
		}
		left, ok := node.ChildByField("left")
		require.True(t, ok)
		assert.Equal(t, "identifier", left.Kind())
		assert.Equal(t, "l", left.Text())

		_, ok = node.ChildByField("no-such-field")
		assert.False(t, ok)
		return
	}
	t.Fatal("no assignment node found")
}

func TestWalkPreOrder(t *testing.T) {
	tree := mustParse(t, "x = 1\n")

	var kinds []string
	for node := range Walk(tree.Root()) {
		if node.IsNamed() {
			kinds = append(kinds, node.Kind())
		}
	}
	assert.Equal(t, []string{"module", "expression_statement", "assignment", "identifier", "integer"}, kinds)
}

func TestWalkCompleteness(t *testing.T) {
	tree := mustParse(t, "def f(a, b):\n    return a + b\n\nf(1, 2)\n")
	root := tree.Root()

	// count nodes by explicit recursion
	var count func(Node) int
	count = func(n Node) int {
		total := 1
		for i := 0; i < n.ChildCount(); i++ {
			total += count(n.Child(i))
		}
		return total
	}
	want := count(root)

	seen := 0
	for range Walk(root) {
		seen++
	}
	assert.Equal(t, want, seen, "walker must yield every node exactly once")
}

func TestWalkRestartable(t *testing.T) {
	tree := mustParse(t, "a = 1\nb = 2\n")

	collect := func() []string {
		var kinds []string
		for node := range Walk(tree.Root()) {
			kinds = append(kinds, node.Kind())
		}
		return kinds
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second, "a fresh traversal must repeat the sequence")
	assert.NotEmpty(t, first)
}

func TestWalkEarlyStop(t *testing.T) {
	tree := mustParse(t, "a = 1\nb = 2\n")

	yielded := 0
	for range Walk(tree.Root()) {
		yielded++
		if yielded == 3 {
			break
		}
	}
	assert.Equal(t, 3, yielded)
}

func TestWalkSubtree(t *testing.T) {
	tree := mustParse(t, "x = 1\ndef f():\n    pass\n")

	// a traversal can start from any node, not just the root
	for node := range Walk(tree.Root()) {
		if node.Kind() != "function_definition" {
			continue
		}
		var kinds []string
		for sub := range Walk(node) {
			if sub.IsNamed() {
				kinds = append(kinds, sub.Kind())
			}
		}
		assert.Equal(t, "function_definition", kinds[0])
		assert.Contains(t, kinds, "identifier")
		return
	}
	t.Fatal("no function_definition node found")
}

func TestDump(t *testing.T) {
	tree := mustParse(t, "x = 1\n")

	dump := Dump(tree.Root())
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "module ["))
	assert.Contains(t, dump, "  expression_statement [")
	assert.Contains(t, dump, "    assignment [")
	assert.Contains(t, dump, "      identifier [0-1] line 1")
}
