package md2tsv

import (
	"encoding/csv"
	"fmt"
	"io"
)

// fieldDelimiter separates fields within a record.
const fieldDelimiter = '\t'

// Serialize writes t to w as tab-delimited records, one per row, in order.
// Fields containing a tab, a double quote or a line break are quoted with
// internal quotes doubled. Records end with "\n". No header is synthesized.
// Quoting follows encoding/csv, which also quotes fields starting with a
// space and writes a row holding one empty field as a bare "\n" rather than "".
//
// A write failure stops the remaining writes and is returned as ErrWrite.
// Records already flushed to w are not retracted.
func Serialize(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = fieldDelimiter

	for i, row := range t {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrWrite, i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
