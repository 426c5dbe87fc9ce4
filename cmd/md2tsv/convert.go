package main

import (
	"fmt"
	"time"

	md2tsv "github.com/alnah/go-md2tsv"
)

// runConvert reads the table from stdin and writes records to stdout.
// The stages are called one by one so verbose mode can time each of them.
func runConvert(deps *Dependencies, verbose bool) error {
	logf := func(format string, args ...any) {
		if verbose {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}
	}

	start := deps.Now()
	document, err := md2tsv.ReadDocument(deps.Stdin)
	if err != nil {
		return err
	}
	readDone := deps.Now()
	logf("Read %d bytes in %s", len(document), readDone.Sub(start).Round(time.Microsecond))

	table, err := md2tsv.Extract(document)
	if err != nil {
		return err
	}
	extractDone := deps.Now()
	logf("Extracted %d rows, %d columns%s in %s",
		len(table), table.Width(), raggedNote(table), extractDone.Sub(readDone).Round(time.Microsecond))

	if err := md2tsv.Serialize(deps.Stdout, table); err != nil {
		return err
	}
	logf("Wrote %d records in %s", len(table), deps.Now().Sub(extractDone).Round(time.Microsecond))

	return nil
}

// raggedNote flags tables whose rows have different cell counts.
func raggedNote(t md2tsv.Table) string {
	if t.Ragged() {
		return " (ragged)"
	}
	return ""
}
