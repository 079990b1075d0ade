package lint

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pylin-dev/pylin/formatter"
	"github.com/pylin-dev/pylin/internal"
	"github.com/pylin-dev/pylin/internal/format"
	"github.com/pylin-dev/pylin/internal/syntax"
)

// Mode selects the work performed by a single run. Debug takes precedence
// and suppresses lint and format output entirely; otherwise lint always
// runs, Format prints the formatted source, and Write overwrites the file
// with it. Format and Write may be combined.
type Mode struct {
	Format bool
	Write  bool
	Debug  bool
}

// Session runs lint, format, and debug passes over single files. A session
// holds no per-file state and may run any number of files sequentially.
type Session struct {
	engine    *internal.Engine
	formatter *format.Formatter
	logger    *zap.Logger
	out       io.Writer
	debounce  time.Duration
}

// NewSession creates a session from the configuration at configPath (empty
// for defaults). Reports are written to out; operational messages go to
// logger. A nil out defaults to stdout.
func NewSession(configPath string, logger *zap.Logger, out io.Writer) (*Session, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	config.applyColorMode()

	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		engine:    internal.NewEngine(),
		formatter: format.New(),
		logger:    logger,
		out:       out,
		debounce:  config.Debounce(),
	}, nil
}

// IgnoreRule excludes the named rule from this session's lint runs.
func (s *Session) IgnoreRule(rule string) {
	s.engine.IgnoreRule(rule)
}

// Run processes one file according to mode. File read failures and parse
// failures are returned as errors; lint findings are advisory and never
// cause a non-nil return. When a format or write is requested, formatting
// still runs on a file that fails to parse (it is a pure text transform),
// and the parse error is returned afterwards.
func (s *Session) Run(ctx context.Context, path string, mode Mode) error {
	src, err := internal.ReadSourceFile(path)
	if err != nil {
		return err
	}

	tree, parseErr := syntax.Parse(ctx, src.Data)
	if parseErr != nil {
		parseErr = fmt.Errorf("error parsing %s: %w", path, parseErr)
		if !mode.Format && !mode.Write {
			return parseErr
		}
		s.logger.Warn("parse failed; lint skipped", zap.String("file", path), zap.Error(parseErr))
	} else {
		defer tree.Close()
	}

	if mode.Debug {
		if parseErr != nil {
			return parseErr
		}
		fmt.Fprint(s.out, formatter.TreeReport(tree.Root()))
		return nil
	}

	if parseErr == nil {
		findings := s.engine.Run(tree)
		fmt.Fprint(s.out, formatter.LintReport(findings))
	}

	if mode.Format || mode.Write {
		result := s.formatter.Format(string(src.Data))

		if mode.Format {
			fmt.Fprint(s.out, formatter.FormatPreview(result.Text))
		}
		if mode.Write {
			if result.Changed {
				if err := src.Save(result.Text); err != nil {
					return err
				}
				fmt.Fprint(s.out, formatter.SaveConfirmation(path))
			} else {
				fmt.Fprint(s.out, formatter.AlreadyFormatted(path))
			}
		}
	}

	return parseErr
}

// Watch re-runs the file according to mode on every change until ctx is
// canceled. The first run happens immediately.
func (s *Session) Watch(ctx context.Context, path string, mode Mode) error {
	run := func() {
		if err := s.Run(ctx, path, mode); err != nil {
			s.logger.Error("error processing file", zap.String("file", path), zap.Error(err))
		}
	}

	watcher, err := internal.NewWatcher(path, s.debounce, run)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	run()
	<-ctx.Done()
	return nil
}
