package internal

import (
	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

// Engine manages the linting process for one syntax tree at a time.
type Engine struct {
	ignoredRules map[string]bool
	rules        []LintRule
}

// NewEngine creates a lint engine with the default rule set registered.
func NewEngine() *Engine {
	engine := &Engine{
		ignoredRules: make(map[string]bool),
	}
	engine.registerDefaultRules()
	return engine
}

func (e *Engine) registerDefaultRules() {
	for _, name := range defaultRuleOrder {
		e.rules = append(e.rules, allRuleConstructors[name]())
	}
}

// IgnoreRule excludes the named rule from subsequent runs.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// Run applies all registered rules to the tree and returns the findings.
// Rules share a single depth-first traversal so findings come out in
// discovery order; they are never re-sorted or deduplicated. A node no rule
// can classify is simply skipped, so Run itself cannot fail.
func (e *Engine) Run(tree *syntax.Tree) []tt.Finding {
	var findings []tt.Finding
	for node := range syntax.Walk(tree.Root()) {
		for _, rule := range e.rules {
			if e.ignoredRules[rule.Name()] {
				continue
			}
			if finding, ok := rule.Check(node); ok {
				findings = append(findings, finding)
			}
		}
	}
	return findings
}
