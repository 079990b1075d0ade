// Package syntax wraps the tree-sitter parsing engine behind a small node
// API: parse source text once, then traverse typed, positioned nodes.
package syntax

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrNoTree is returned when the engine produces no syntax tree at all.
// Syntactically invalid programs do not hit this path; tree-sitter recovers
// and yields a tree containing error nodes instead.
var ErrNoTree = errors.New("parser produced no syntax tree")

// Tree is a parsed source file. It keeps the source bytes alongside the
// engine's tree so nodes can slice their own text.
type Tree struct {
	src  []byte
	tree *sitter.Tree
}

// Parse parses Python source text into a concrete syntax tree.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("error parsing source: %w", err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, ErrNoTree
	}

	return &Tree{src: src, tree: tree}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{inner: t.tree.RootNode(), src: t.src}
}

// Close releases the engine's resources. The tree must not be used after.
func (t *Tree) Close() {
	t.tree.Close()
}
