package lints

import (
	"fmt"

	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

// Rule names.
const (
	RuleAmbiguousName = "ambiguous-name"
	RuleBadFuncName   = "bad-function-name"
)

// confusableNames are single-character names easily mistaken for the digits
// 1 and 0, or for each other, in common fonts.
var confusableNames = map[string]bool{
	"l": true,
	"O": true,
	"I": true,
}

// CheckAmbiguousName reports an identifier bound to a confusable
// single-character name. Only binding positions are inspected: the left-hand
// side of an assignment and parameter names. Reference positions pass
// through, so a bad name is reported once, at the line that binds it.
func CheckAmbiguousName(node syntax.Node) (tt.Finding, bool) {
	if node.Kind() != "identifier" || !confusableNames[node.Text()] {
		return tt.Finding{}, false
	}

	parent, ok := node.Parent()
	if !ok {
		return tt.Finding{}, false
	}

	switch parent.Kind() {
	case "assignment", "augmented_assignment":
		if left, ok := parent.ChildByField("left"); !ok || !left.Same(node) {
			return tt.Finding{}, false
		}
	case "parameters", "lambda_parameters", "typed_parameter":
		// plain parameter: the identifier itself is the binding
	case "default_parameter", "typed_default_parameter":
		if name, ok := parent.ChildByField("name"); !ok || !name.Same(node) {
			return tt.Finding{}, false
		}
	default:
		return tt.Finding{}, false
	}

	return tt.Finding{
		Rule:    RuleAmbiguousName,
		Message: fmt.Sprintf("Variable name '%s' is ambiguous", node.Text()),
		Line:    node.StartLine(),
	}, true
}
