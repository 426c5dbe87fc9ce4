// Package md2tsv converts a GitHub-flavored Markdown table to tab-separated values.
//
// # Quick Start
//
// Convert standard input to standard output:
//
//	if err := md2tsv.Convert(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// The input must be exactly one table and nothing else: no headings, no
// surrounding paragraphs, no second table.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Read the whole input and check it is UTF-8 (ReadDocument)
//  2. Markdown preprocessing (byte order mark, line endings)
//  3. GFM parsing via Goldmark, then validation of the
//     document → table → row → cell structure (Extract)
//  4. Tab-delimited output via encoding/csv (Serialize)
//
// Each cell is emitted as its source text: inline markup such as **bold**,
// `code` or [links](url) is kept literally, and the pipe escape \| becomes |.
// The header row is emitted like any other row.
//
// # Errors
//
// Failures are reported through sentinel errors, to be checked with errors.Is:
//
//   - ErrParse: the Markdown parser rejected the input
//   - ErrShape: the input is not a single table of rows of cells; the
//     concrete *ShapeError also matches ErrNotTable, ErrNotRow or ErrNotCell
//     and carries a YAML dump of what was parsed
//   - ErrRead, ErrWrite: the input or output stream failed
//
// Use errors.As to reach the dump:
//
//	var shapeErr *md2tsv.ShapeError
//	if errors.As(err, &shapeErr) {
//	    fmt.Println(shapeErr.Structure)
//	}
//
// # Ragged Tables
//
// Rows shorter than the header keep their own cell count; they are neither
// padded nor rejected. Cells beyond the header width are dropped by the GFM
// grammar before extraction sees them.
package md2tsv
