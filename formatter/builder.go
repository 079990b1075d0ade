// Package formatter renders lint findings, formatted source, and parse trees
// as human-readable terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/pylin-dev/pylin/internal/syntax"
	tt "github.com/pylin-dev/pylin/internal/types"
)

const (
	linterHeader    = "--- Running Linter ---"
	formattedHeader = "--- Formatted Code ---"
	debugHeader     = "--- Debug Parse Tree ---"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	tagStyle     = color.New(color.FgYellow, color.Bold)
	lineStyle    = color.New(color.FgHiBlue)
	successStyle = color.New(color.FgGreen, color.Bold)
	noticeStyle  = color.New(color.FgWhite)
)

// LintReport renders the lint section: a header followed by one line per
// finding, in the order given.
func LintReport(findings []tt.Finding) string {
	var builder strings.Builder
	builder.WriteString(headerStyle.Sprint(linterHeader))
	builder.WriteString("\n")
	for _, finding := range findings {
		builder.WriteString(fmt.Sprintf("%s %s %s\n",
			tagStyle.Sprint("[Lint]"),
			finding.Message,
			lineStyle.Sprintf("(line %d)", finding.Line),
		))
	}
	return builder.String()
}

// FormatPreview renders the formatted-code section with the formatted text
// verbatim below the header.
func FormatPreview(text string) string {
	return headerStyle.Sprint(formattedHeader) + "\n" + text
}

// SaveConfirmation renders the message printed after an in-place write.
func SaveConfirmation(path string) string {
	return successStyle.Sprintf("File formatted and saved: %q", path) + "\n"
}

// AlreadyFormatted renders the message printed when an in-place write was
// skipped because the file needed no changes.
func AlreadyFormatted(path string) string {
	return noticeStyle.Sprintf("File already formatted: %q", path) + "\n"
}

// TreeReport renders the debug parse tree section.
func TreeReport(root syntax.Node) string {
	return headerStyle.Sprint(debugHeader) + "\n" + syntax.Dump(root)
}
