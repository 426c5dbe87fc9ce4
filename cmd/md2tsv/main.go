package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2tsv "github.com/alnah/go-md2tsv"
	"github.com/alnah/go-md2tsv/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultDeps()))
}

// runMain parses flags, runs the conversion and returns the process exit code.
// All diagnostics go to deps.Stderr; deps.Stdout only ever receives records,
// usage or the version line.
func runMain(args []string, deps *Dependencies) int {
	flags, positional, err := parseFlags(args, deps.Stderr)
	if err != nil {
		return reportError(deps, err)
	}

	if flags.help {
		printUsage(deps.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(deps.Stdout, "md2tsv %s\n", Version)
		return ExitSuccess
	}
	if len(positional) > 0 {
		return reportError(deps, fmt.Errorf("%w: %q", ErrUnexpectedArgs, positional[0]))
	}

	undo := configureMaxProcs(flags.verbose, deps.Stderr)
	defer undo()

	if err := runConvert(deps, flags.verbose); err != nil {
		return reportError(deps, err)
	}
	return ExitSuccess
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, stderr io.Writer) func() {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logger))
	if undo == nil {
		return func() {}
	}
	return undo
}

// reportError prints err with an optional hint and returns its exit code.
func reportError(deps *Dependencies, err error) int {
	fmt.Fprintf(deps.Stderr, "md2tsv: %v%s\n", err, hintFor(err, deps.Stdin))
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
// stdin is the stream the document was read from.
func hintFor(err error, stdin io.Reader) string {
	var shapeErr *md2tsv.ShapeError
	switch {
	case errors.As(err, &shapeErr) && errors.Is(err, md2tsv.ErrNotTable):
		return hints.ForNotTable(shapeErr.Found, hints.IsTerminal(stdin))
	case errors.Is(err, md2tsv.ErrInvalidEncoding):
		return hints.ForInvalidEncoding()
	case errors.Is(err, ErrUnexpectedArgs):
		return hints.ForUsage()
	default:
		return ""
	}
}
