package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pylin-dev/pylin/lint"
)

var ignoreRules string

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Run the lint rules on a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLint(args[0])
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
}

func runLint(path string) {
	ctx, cancel := newRunContext()
	defer cancel()

	session := newSession()
	if ignoreRules != "" {
		for _, rule := range strings.Split(ignoreRules, ",") {
			session.IgnoreRule(strings.TrimSpace(rule))
		}
	}

	if err := session.Run(ctx, path, lint.Mode{}); err != nil {
		fatal(path, err)
	}
}
