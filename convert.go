package md2tsv

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// ReadDocument reads r to completion and returns it as text.
// The input must be valid UTF-8.
func ReadDocument(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %w", ErrRead, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Convert reads a Markdown table from r and writes it to w as tab-separated
// values. The whole input is read and the whole table is extracted before
// anything is written, so a parse or shape error leaves w untouched.
func Convert(r io.Reader, w io.Writer) error {
	document, err := ReadDocument(r)
	if err != nil {
		return err
	}

	table, err := Extract(document)
	if err != nil {
		return err
	}

	return Serialize(w, table)
}
