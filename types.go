package md2tsv

// Row is the ordered cell text of one table row.
type Row []string

// Table is the ordered rows of a Markdown table. The GFM header row is the
// first Row; nothing distinguishes it from body rows.
type Table []Row

// Width returns the cell count of the widest row.
func (t Table) Width() int {
	width := 0
	for _, row := range t {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Ragged reports whether rows differ in cell count.
func (t Table) Ragged() bool {
	for _, row := range t {
		if len(row) != len(t[0]) {
			return true
		}
	}
	return false
}
