// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether r is a file descriptor attached to a terminal.
// Readers without a descriptor, such as pipes wrapped in buffers, never are.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ForNotTable returns hints for documents whose top level is not a single table.
// found lists the kind names of the top-level blocks that were parsed;
// fromTerminal tells whether the input was typed rather than piped, which
// usually means the user forgot to redirect a file.
func ForNotTable(found []string, fromTerminal bool) string {
	switch {
	case len(found) == 0 && fromTerminal:
		return format("md2tsv reads standard input; try: md2tsv < table.md")
	case len(found) == 0:
		return format("input is empty")
	case len(found) == 1:
		return formatHints([]string{
			fmt.Sprintf("found a %s", found[0]),
			"a table needs a header row followed by a delimiter row such as | --- | --- |",
		})
	default:
		return formatHints([]string{
			fmt.Sprintf("found %d blocks (%s)", len(found), strings.Join(found, ", ")),
			"remove everything except the table",
		})
	}
}

// ForInvalidEncoding returns a hint for input that is not UTF-8.
func ForInvalidEncoding() string {
	return format("convert the input first, e.g. iconv -t UTF-8")
}

// ForUsage returns a hint for invocations with positional arguments.
func ForUsage() string {
	return format("md2tsv takes no arguments; redirect the file instead: md2tsv < table.md")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
