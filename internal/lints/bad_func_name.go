package lints

import (
	"fmt"

	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

// CheckBadFuncName reports a function whose name is a confusable
// single-character name. It matches the identifier in the name position of a
// function definition, so the finding lands on the def line.
func CheckBadFuncName(node syntax.Node) (tt.Finding, bool) {
	if node.Kind() != "identifier" || !confusableNames[node.Text()] {
		return tt.Finding{}, false
	}

	parent, ok := node.Parent()
	if !ok || parent.Kind() != "function_definition" {
		return tt.Finding{}, false
	}
	if name, ok := parent.ChildByField("name"); !ok || !name.Same(node) {
		return tt.Finding{}, false
	}

	return tt.Finding{
		Rule:    RuleBadFuncName,
		Message: fmt.Sprintf("Function name '%s' is ambiguous", node.Text()),
		Line:    node.StartLine(),
	}, true
}
