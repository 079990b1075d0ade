package syntax

import (
	"fmt"
	"strings"
)

// Dump renders the named nodes of the subtree rooted at root, one per line,
// indented by depth, with kind tag, byte range, and start line.
func Dump(root Node) string {
	var b strings.Builder
	dumpNode(&b, root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	fmt.Fprintf(b, "%s%s [%d-%d] line %d\n",
		strings.Repeat("  ", depth), n.Kind(), n.StartByte(), n.EndByte(), n.StartLine())

	for i := 0; i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.IsNamed() {
			dumpNode(b, child, depth+1)
		}
	}
}
