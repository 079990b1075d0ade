package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pylin-dev/pylin/lint"
)

var (
	cfgFile string
	timeout time.Duration

	showFormat bool
	applyFix   bool
	debugTree  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pylin <file>",
	Short: "pylin - a fast single-file Python linter and formatter",
	Long: `pylin parses one Python source file, reports lint findings, and can
print or write back a formatted version of the file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'pylin' is entered
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		runSession(args[0], rootMode())
	},
}

// rootMode maps the root command's flags onto a session mode: debug wins and
// suppresses everything else; format and fix are independent.
func rootMode() lint.Mode {
	if debugTree {
		return lint.Mode{Debug: true}
	}
	return lint.Mode{Format: showFormat, Write: applyFix}
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger, _ = zap.NewProduction()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a yaml configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for a single run")

	rootCmd.Flags().BoolVarP(&showFormat, "format", "f", false, "Print the formatted file to stdout")
	rootCmd.Flags().BoolVarP(&applyFix, "fix", "x", false, "Write the formatted file back in place")
	rootCmd.Flags().BoolVarP(&debugTree, "debug", "d", false, "Dump the parse tree instead of linting")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(watchCmd)
}

func runSession(path string, mode lint.Mode) {
	ctx, cancel := newRunContext()
	defer cancel()

	if err := newSession().Run(ctx, path, mode); err != nil {
		fatal(path, err)
	}
}

func newRunContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func newSession() *lint.Session {
	session, err := lint.NewSession(cfgFile, logger, nil)
	if err != nil {
		logger.Fatal("Failed to initialize session", zap.Error(err))
	}
	return session
}

func fatal(path string, err error) {
	logger.Fatal("Failed to process file", zap.String("file", path), zap.Error(err))
}
