package md2tsv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2tsv/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrParse = pipeline.ErrParse
	ErrShape = errors.New("input does not have the shape of a single table")

	// Shape violations, one per structural level.
	ErrNotTable = errors.New("input isn't a table")
	ErrNotRow   = errors.New("input isn't a row")
	ErrNotCell  = errors.New("input isn't a cell")

	// Stream errors.
	ErrRead            = errors.New("failed to read input")
	ErrWrite           = errors.New("failed to write output")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// ShapeError reports a document that parses but is not exactly one table of
// rows of cells. It matches ErrShape and unwraps to the level sentinel.
type ShapeError struct {
	Err       error    // ErrNotTable, ErrNotRow or ErrNotCell
	Found     []string // Kind names of the nodes found where the violation occurred
	Line      int      // 1-based source line of the offending node, 0 when unknown
	Structure string   // YAML dump of what was actually parsed
}

func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Structure != "" {
		b.WriteString(":\n")
		b.WriteString(e.Structure)
	}
	return b.String()
}

func (e *ShapeError) Unwrap() error { return e.Err }

// Is makes every ShapeError match ErrShape.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }
