package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pylin-dev/pylin/lint"
)

var watchFormat bool

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-run the linter whenever the file changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		mode := lint.Mode{Format: watchFormat}
		if err := newSession().Watch(ctx, args[0], mode); err != nil {
			fatal(args[0], err)
		}
	},
}

func init() {
	watchCmd.Flags().BoolVarP(&watchFormat, "format", "f", false, "Also print the formatted file on each run")
}
