package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tsv [flags] < table.md > table.tsv")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a GitHub-flavored Markdown table to tab-separated values.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Standard input must hold exactly one table and nothing else.")
	fmt.Fprintln(w, "Every row, the header included, becomes one record on standard output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help       Show this message")
	fmt.Fprintln(w, "      --version    Show version information")
	fmt.Fprintln(w, "  -v, --verbose    Show detailed timing on standard error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  invalid usage")
	fmt.Fprintln(w, "  3  read or write failure")
	fmt.Fprintln(w, "  4  input is not a single Markdown table")
}
