package internal

import (
	"github.com/pylin-dev/pylin/internal/lints"
	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// LintRule defines the interface for all lint rules. A rule is a predicate
// over a single syntax node and produces at most one finding per node.
type LintRule interface {
	// Check inspects one node and reports whether it violates the rule.
	Check(node syntax.Node) (tt.Finding, bool)

	// Name returns the name of the lint rule.
	Name() string
}

type ruleConstructor func() LintRule

// defaultRuleOrder fixes the order rules are applied to each node, which in
// turn fixes finding order within a node.
var defaultRuleOrder = []string{
	lints.RuleAmbiguousName,
	lints.RuleBadFuncName,
}

var allRuleConstructors = map[string]ruleConstructor{
	lints.RuleAmbiguousName: func() LintRule { return &AmbiguousNameRule{} },
	lints.RuleBadFuncName:   func() LintRule { return &BadFuncNameRule{} },
}

// AmbiguousNameRule flags variables and parameters bound to visually
// confusable single-character names.
type AmbiguousNameRule struct{}

func (r *AmbiguousNameRule) Check(node syntax.Node) (tt.Finding, bool) {
	return lints.CheckAmbiguousName(node)
}

func (r *AmbiguousNameRule) Name() string {
	return lints.RuleAmbiguousName
}

// BadFuncNameRule flags functions named with visually confusable
// single-character names.
type BadFuncNameRule struct{}

func (r *BadFuncNameRule) Check(node syntax.Node) (tt.Finding, bool) {
	return lints.CheckBadFuncName(node)
}

func (r *BadFuncNameRule) Name() string {
	return lints.RuleBadFuncName
}
