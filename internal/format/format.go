// Package format rewrites source text through an ordered pipeline of
// line-level passes. It works on raw text, not the syntax tree, so it stays
// usable even when the source does not parse.
package format

import (
	"strings"

	tt "github.com/pylin-dev/pylin/internal/types"
)

// LinePass rewrites a single line. The line is passed without its
// terminator and the returned text must not introduce one.
type LinePass func(line string) string

// TrimTrailingWhitespace removes space and tab characters at the end of a
// line. A line consisting entirely of whitespace becomes empty.
func TrimTrailingWhitespace(line string) string {
	return strings.TrimRight(line, " \t")
}

// Formatter applies its passes to every line of a file, in order.
type Formatter struct {
	passes []LinePass
}

// New creates a formatter with the default pass pipeline.
func New() *Formatter {
	return &Formatter{passes: []LinePass{TrimTrailingWhitespace}}
}

// NewWithPasses creates a formatter running exactly the given passes.
func NewWithPasses(passes ...LinePass) *Formatter {
	return &Formatter{passes: passes}
}

// Format runs the pass pipeline over text. The file's line-ending convention
// is detected once and used throughout the output, never mixed; line count
// and the presence or absence of a final newline are preserved. Format is
// idempotent as long as every pass is.
func (f *Formatter) Format(text string) tt.FormatResult {
	eol := detectLineEnding(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for _, pass := range f.passes {
			line = pass(line)
		}
		lines[i] = line
	}

	out := strings.Join(lines, eol)
	return tt.FormatResult{
		Text:    out,
		Changed: out != text,
	}
}

// detectLineEnding picks the convention for the whole file: CRLF when the
// file contains any CRLF terminator, LF otherwise.
func detectLineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
