package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pylin-dev/pylin/lint"
)

var writeBack bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print the formatted file, or write it back with --write",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := newRunContext()
		defer cancel()

		mode := lint.Mode{Format: !writeBack, Write: writeBack}
		if err := newSession().Run(ctx, args[0], mode); err != nil {
			fatal(args[0], err)
		}
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write the result back instead of printing it")
}
