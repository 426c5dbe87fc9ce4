package mdast_test

// Notes:
// - Trees are produced by the real GFM parser from internal/pipeline rather than
//   built by hand, so the tests pin down how Goldmark's table nodes map onto Kind.
// - textOf is only checked through Dump output: it exists for diagnostics.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-md2tsv/internal/mdast"
	"github.com/alnah/go-md2tsv/internal/pipeline"
)

func parse(t *testing.T, src string) *mdast.Node {
	t.Helper()

	parsed, err := pipeline.NewGoldmarkParser().Parse(src)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	return mdast.FromGoldmark(parsed.Root, parsed.Source)
}

// ---------------------------------------------------------------------------
// TestFromGoldmark_TableKinds - Goldmark table nodes map onto the closed set
// ---------------------------------------------------------------------------

func TestFromGoldmark_TableKinds(t *testing.T) {
	t.Parallel()

	root := parse(t, "| a | b |\n| - | - |\n| 1 | 2 |\n")

	if root.Kind != mdast.KindRoot || root.Name != "Document" {
		t.Fatalf("root = %v/%s, want root/Document", root.Kind, root.Name)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}

	table := root.Children[0]
	if table.Kind != mdast.KindTable {
		t.Fatalf("child kind = %v, want table", table.Kind)
	}
	if len(table.Children) != 2 {
		t.Fatalf("table has %d children, want 2", len(table.Children))
	}

	wantNames := []string{"TableHeader", "TableRow"}
	wantCells := [][]string{{"a", "b"}, {"1", "2"}}
	for i, row := range table.Children {
		if row.Kind != mdast.KindRow {
			t.Errorf("row %d kind = %v, want row", i, row.Kind)
		}
		if row.Name != wantNames[i] {
			t.Errorf("row %d name = %q, want %q", i, row.Name, wantNames[i])
		}
		if len(row.Children) != len(wantCells[i]) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row.Children), len(wantCells[i]))
		}
		for j, cell := range row.Children {
			if cell.Kind != mdast.KindCell {
				t.Errorf("row %d cell %d kind = %v, want cell", i, j, cell.Kind)
			}
			if cell.Text != wantCells[i][j] {
				t.Errorf("row %d cell %d text = %q, want %q", i, j, cell.Text, wantCells[i][j])
			}
			if wantLine := 2*i + 1; cell.Line != wantLine {
				t.Errorf("row %d cell %d line = %d, want %d", i, j, cell.Line, wantLine)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestFromGoldmark_PaddingCellsDropped - Short rows keep their source width
// ---------------------------------------------------------------------------

func TestFromGoldmark_PaddingCellsDropped(t *testing.T) {
	t.Parallel()

	root := parse(t, "| a | b | c |\n| - | - | - |\n| 1 |\n|  | 2 |\n")
	rows := root.Children[0].Children

	if got := len(rows[1].Children); got != 1 {
		t.Errorf("short row has %d cells, want 1", got)
	}
	if got := len(rows[2].Children); got != 2 {
		t.Errorf("row with an explicit empty cell has %d cells, want 2", got)
	}
	if got := rows[2].Children[0].Text; got != "" {
		t.Errorf("explicit empty cell text = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestCellText - Verbatim cell source
// ---------------------------------------------------------------------------

func TestCellText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{"plain", "hello", "hello"},
		{"emphasis", "*a* and __b__", "*a* and __b__"},
		{"code span", "`x := 1`", "`x := 1`"},
		{"link", "[docs](https://example.com/a?b=c)", "[docs](https://example.com/a?b=c)"},
		{"autolink", "https://example.com", "https://example.com"},
		{"escaped pipe", `a \| b`, "a | b"},
		{"other escapes kept", `\*not em\*`, `\*not em\*`},
		{"html entity kept", "&amp; &lt;", "&amp; &lt;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := parse(t, "| "+tt.cell+" |\n| - |\n")
			cell := root.Children[0].Children[0].Children[0]
			if cell.Text != tt.want {
				t.Errorf("cell text = %q, want %q", cell.Text, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFromGoldmark_OtherBlocks - Non-table blocks and their lines
// ---------------------------------------------------------------------------

func TestFromGoldmark_OtherBlocks(t *testing.T) {
	t.Parallel()

	root := parse(t, "# Title\n\nfirst line\nsecond line\n\n---\n")

	if len(root.Children) != 3 {
		t.Fatalf("root has %d children, want 3", len(root.Children))
	}

	tests := []struct {
		name     string
		wantName string
		wantText string
		wantLine int
	}{
		{"heading", "Heading", "Title", 1},
		{"paragraph", "Paragraph", "first line\nsecond line", 3},
		{"thematic break", "ThematicBreak", "", 0},
	}

	for i, tt := range tests {
		n := root.Children[i]
		if n.Kind != mdast.KindOther {
			t.Errorf("%s kind = %v, want other", tt.name, n.Kind)
		}
		if n.Name != tt.wantName {
			t.Errorf("%s name = %q, want %q", tt.name, n.Name, tt.wantName)
		}
		if n.Text != tt.wantText {
			t.Errorf("%s text = %q, want %q", tt.name, n.Text, tt.wantText)
		}
		if n.Line != tt.wantLine {
			t.Errorf("%s line = %d, want %d", tt.name, n.Line, tt.wantLine)
		}
	}
}

// ---------------------------------------------------------------------------
// TestKind_String - Kind names
// ---------------------------------------------------------------------------

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind mdast.Kind
		want string
	}{
		{mdast.KindRoot, "root"},
		{mdast.KindTable, "table"},
		{mdast.KindRow, "row"},
		{mdast.KindCell, "cell"},
		{mdast.KindOther, "other"},
		{mdast.Kind(99), "other"},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDump - YAML rendering for diagnostics
// ---------------------------------------------------------------------------

type dumped struct {
	Kind     string   `yaml:"kind"`
	Line     int      `yaml:"line"`
	Text     string   `yaml:"text"`
	Children []dumped `yaml:"children"`
}

func TestDump(t *testing.T) {
	t.Parallel()

	root := parse(t, "| a |\n| - |\n\nafter the table\n")
	out := mdast.Dump(root)

	if strings.HasSuffix(out, "\n") {
		t.Error("Dump() should not end with a newline")
	}

	var d dumped
	if err := yaml.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("Dump() output is not YAML: %v\n%s", err, out)
	}
	if d.Kind != "Document" {
		t.Errorf("kind = %q, want Document", d.Kind)
	}
	if len(d.Children) != 2 {
		t.Fatalf("dump has %d children, want 2:\n%s", len(d.Children), out)
	}
	if d.Children[0].Kind != "Table" {
		t.Errorf("first child = %q, want Table", d.Children[0].Kind)
	}
	cell := d.Children[0].Children[0].Children[0]
	if cell.Kind != "TableCell" || cell.Text != "a" || cell.Line != 1 {
		t.Errorf("cell dump = %+v, want TableCell a on line 1", cell)
	}
	para := d.Children[1]
	if para.Kind != "Paragraph" || para.Line != 4 {
		t.Errorf("paragraph dump = %+v, want Paragraph on line 4", para)
	}
	if para.Text != "after the table" {
		t.Errorf("paragraph text = %q, want %q", para.Text, "after the table")
	}
}

func TestDump_Nil(t *testing.T) {
	t.Parallel()

	if got := mdast.Dump(nil); got != "<nil>" {
		t.Errorf("Dump(nil) = %q, want <nil>", got)
	}
}
