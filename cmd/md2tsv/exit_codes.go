package main

import (
	"errors"
	"os"
	"syscall"

	md2tsv "github.com/alnah/go-md2tsv"
)

// Exit codes for md2tsv CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or arguments
	ExitIO      = 3 // Reading stdin or writing stdout failed
	ExitInput   = 4 // Input is not a single Markdown table
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Input errors (exit 4)
	if errors.Is(err, md2tsv.ErrParse) ||
		errors.Is(err, md2tsv.ErrShape) {
		return ExitInput
	}

	// I/O errors (exit 3)
	if errors.Is(err, md2tsv.ErrRead) ||
		errors.Is(err, md2tsv.ErrWrite) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
