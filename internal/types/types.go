package types

// Finding represents a single lint rule violation found in a source file.
// Findings are ordered by discovery order and never re-sorted.
type Finding struct {
	Rule    string
	Message string
	Line    int
}

// FormatResult holds the output of a formatting run. Changed reports whether
// the text differs from the input it was produced from.
type FormatResult struct {
	Text    string
	Changed bool
}
