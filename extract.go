package md2tsv

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2tsv/internal/mdast"
	"github.com/alnah/go-md2tsv/internal/pipeline"
)

// extractor turns Markdown source into a Table.
type extractor struct {
	preprocessor pipeline.MarkdownPreprocessor
	parser       pipeline.Parser
}

// newExtractor creates an extractor with the GFM preprocessor and parser.
func newExtractor() *extractor {
	return &extractor{
		preprocessor: &pipeline.GFMPreprocessor{},
		parser:       pipeline.NewGoldmarkParser(),
	}
}

var defaultExtractor = newExtractor()

// Extract parses document as GitHub-flavored Markdown and returns its single
// table. The document must contain exactly one top-level block, a table, and
// nothing else. Any other shape fails with a *ShapeError; no partial table is
// ever returned.
func Extract(document string) (Table, error) {
	return defaultExtractor.extract(document)
}

func (e *extractor) extract(document string) (Table, error) {
	content := e.preprocessor.PreprocessMarkdown(document)

	parsed, err := e.parser.Parse(content)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			err = fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, err
	}

	root := mdast.FromGoldmark(parsed.Root, parsed.Source)
	return tableFromRoot(root)
}

// tableFromRoot validates the three structural tiers and collects cell text.
func tableFromRoot(root *mdast.Node) (Table, error) {
	if len(root.Children) != 1 || root.Children[0].Kind != mdast.KindTable {
		return nil, newShapeError(ErrNotTable, root, offendingLine(root.Children), root.Children...)
	}

	tableNode := root.Children[0]
	table := make(Table, 0, len(tableNode.Children))
	for _, rowNode := range tableNode.Children {
		if rowNode.Kind != mdast.KindRow {
			return nil, newShapeError(ErrNotRow, rowNode, rowNode.Line, rowNode)
		}

		row := make(Row, 0, len(rowNode.Children))
		for _, cellNode := range rowNode.Children {
			if cellNode.Kind != mdast.KindCell {
				return nil, newShapeError(ErrNotCell, cellNode, cellNode.Line, cellNode)
			}
			row = append(row, cellNode.Text)
		}
		table = append(table, row)
	}

	return table, nil
}

// offendingLine returns the line of the first top-level block that is not a
// table, or of the second table when the document holds only tables.
func offendingLine(blocks []*mdast.Node) int {
	for _, n := range blocks {
		if n.Kind != mdast.KindTable {
			return n.Line
		}
	}
	if len(blocks) > 1 {
		return blocks[1].Line
	}
	return 0
}

// newShapeError describes a violation at subject; found lists the nodes that
// were present where the expected kind was required.
func newShapeError(sentinel error, subject *mdast.Node, line int, found ...*mdast.Node) *ShapeError {
	names := make([]string, 0, len(found))
	for _, n := range found {
		names = append(names, n.Name)
	}
	return &ShapeError{
		Err:       sentinel,
		Found:     names,
		Line:      line,
		Structure: mdast.Dump(subject),
	}
}
