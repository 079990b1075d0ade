package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pylin-dev/pylin/lint"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Dump the parse tree of a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := newRunContext()
		defer cancel()

		if err := newSession().Run(ctx, args[0], lint.Mode{Debug: true}); err != nil {
			fatal(args[0], err)
		}
	},
}
