package lints

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

type checkFunc func(syntax.Node) (tt.Finding, bool)

// runCheck parses src and applies check to every node in traversal order.
func runCheck(t *testing.T, src string, check checkFunc) []tt.Finding {
	t.Helper()

	tree, err := syntax.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	var findings []tt.Finding
	for node := range syntax.Walk(tree.Root()) {
		if finding, ok := check(node); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}
