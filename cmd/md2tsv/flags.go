package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnexpectedArgs = errors.New("unexpected argument")
)

// cliFlags holds the ambient flags. None of them changes the conversion.
type cliFlags struct {
	help    bool
	version bool
	verbose bool
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2tsv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}
