// Package mdast models the parsed document as a small closed set of node kinds.
//
// Goldmark exposes an open, interface-based tree. The table extractor only
// cares whether a node is the document root, a table, a row, a cell, or
// anything else, so the tree is converted once into Node values tagged with a
// Kind and matched with an exhaustive switch.
package mdast

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Kind tags a Node with its structural role.
type Kind int

// Node kinds.
const (
	KindOther Kind = iota
	KindRoot
	KindTable
	KindRow
	KindCell
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindTable:
		return "table"
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	default:
		return "other"
	}
}

// Node is one element of the converted syntax tree.
type Node struct {
	Kind     Kind
	Name     string // Goldmark kind name, e.g. "Paragraph", "TableHeader"
	Text     string // Source text for leaf blocks, text spans and cells
	Line     int    // 1-based source line of block nodes, 0 when unknown
	Children []*Node
}

// FromGoldmark converts a Goldmark subtree rooted at n.
// source must be the byte slice the tree was parsed from.
func FromGoldmark(n ast.Node, source []byte) *Node {
	node := &Node{
		Kind: kindOf(n),
		Name: n.Kind().String(),
		Line: lineOf(n, source),
	}

	switch node.Kind {
	case KindCell:
		node.Text = CellText(n, source)
	case KindOther:
		node.Text = textOf(n, source)
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		// GFM pads rows shorter than the header with empty cells that have
		// no source segment. They are not part of the input.
		if kindOf(c) == KindCell && c.Lines().Len() == 0 {
			continue
		}
		node.Children = append(node.Children, FromGoldmark(c, source))
	}

	return node
}

// kindOf maps a Goldmark node kind onto the closed Kind set.
// The GFM header row is a row like any other.
func kindOf(n ast.Node) Kind {
	switch n.Kind() {
	case ast.KindDocument:
		return KindRoot
	case east.KindTable:
		return KindTable
	case east.KindTableHeader, east.KindTableRow:
		return KindRow
	case east.KindTableCell:
		return KindCell
	default:
		return KindOther
	}
}

// CellText returns the verbatim source text of a table cell.
// Inline markers are kept as written; the table-level pipe escape is resolved.
func CellText(n ast.Node, source []byte) string {
	return string(bytes.ReplaceAll(joinLines(n.Lines(), source), []byte(`\|`), []byte("|")))
}

// textOf returns a best-effort source rendering used only in diagnostics.
func textOf(n ast.Node, source []byte) string {
	switch v := n.(type) {
	case *ast.Text:
		return string(v.Segment.Value(source))
	case *ast.String:
		return string(v.Value)
	}
	if n.Type() == ast.TypeBlock {
		return string(joinLines(n.Lines(), source))
	}
	return ""
}

// lineOf returns the 1-based line where a block node starts.
// Container blocks without segments of their own (tables, rows) report the
// line of their first child.
func lineOf(n ast.Node, source []byte) int {
	if n.Type() != ast.TypeBlock {
		return 0
	}
	if n.Lines().Len() == 0 {
		if c := n.FirstChild(); c != nil {
			return lineOf(c, source)
		}
		return 0
	}
	start := n.Lines().At(0).Start
	if start > len(source) {
		return 0
	}
	return bytes.Count(source[:start], []byte("\n")) + 1
}

func joinLines(lines *text.Segments, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte('\n')
		}
		seg := lines.At(i)
		buf.Write(bytes.TrimRight(seg.Value(source), "\n"))
	}
	return buf.Bytes()
}
