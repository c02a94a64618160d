// Package table lays out row-oriented data (rosters, attendance grids) across
// one or more pages.
//
// Row heights are fixed per document type rather than measured from content:
// every cell is single-line fixed-size text, so measuring would buy nothing.
// A row is atomic — if it does not fit in the remaining vertical space, the
// whole row moves to a fresh page. Column overflow (text wider than its fixed
// column) is not wrapped or truncated; templates keep cell data short.
package table

import (
	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/layout"
)

// Column defines one fixed-width table column.
type Column struct {
	Header string
	Width  float64 // mm
	Align  doc.Align
}

// Cell is one cell of a data row. A Checkbox cell draws an empty tick box
// instead of text (attendance grids).
type Cell struct {
	Text     string
	Checkbox bool
}

// TextRow builds a plain text row from cell values.
func TextRow(cells ...string) []Cell {
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i] = Cell{Text: c}
	}
	return row
}

// Table renders a header row plus data rows, breaking to new pages at a fixed
// bottom threshold.
type Table struct {
	Columns      []Column
	RowHeight    float64 // mm per data row
	BottomMargin float64 // mm reserved at the page bottom; break threshold is pageHeight - BottomMargin
	HeaderFill   float64 // gray level of the header background
	RepeatHeader bool    // repeat the header row after a page break; off by default
}

// NewPageFunc supplies a fresh page builder when the current page overflows.
// The paginator resets its cursor to the new builder's current position.
type NewPageFunc func() *layout.Builder

// threshold returns the Y beyond which no further row may start.
func (t *Table) threshold(g doc.Geometry) float64 {
	bm := t.BottomMargin
	if bm <= 0 {
		bm = g.Margin
	}
	return g.Height - bm
}

// totalWidth sums the fixed column widths.
func (t *Table) totalWidth() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}
	return w
}

// Render draws the header and all rows starting at b's cursor, requesting new
// pages from newPage as needed, and returns the builder holding the last row.
// Each input row appears on exactly one page.
func (t *Table) Render(b *layout.Builder, rows [][]Cell, newPage NewPageFunc) *layout.Builder {
	x0 := b.Geometry().Margin
	headerHeight := t.RowHeight + 1

	t.renderHeader(b, x0, headerHeight)
	b.Advance(headerHeight)

	for _, row := range rows {
		if b.Y()+t.RowHeight > t.threshold(b.Geometry()) {
			b = newPage()
			x0 = b.Geometry().Margin
			if t.RepeatHeader {
				t.renderHeader(b, x0, headerHeight)
				b.Advance(headerHeight)
			}
		}
		t.renderRow(b, x0, row)
		b.Advance(t.RowHeight)
	}
	return b
}

func (t *Table) renderHeader(b *layout.Builder, x0, h float64) {
	y := b.Y()
	if t.HeaderFill > 0 {
		b.FillBox(x0, y, t.totalWidth(), h, t.HeaderFill)
	}
	x := x0
	for _, col := range t.Columns {
		b.Box(x, y, col.Width, h)
		b.Text(x+1.5, y+h-2, col.Header, layout.SizeSmall, doc.FontBold)
		x += col.Width
	}
}

func (t *Table) renderRow(b *layout.Builder, x0 float64, row []Cell) {
	y := b.Y()
	x := x0
	for i, col := range t.Columns {
		b.Box(x, y, col.Width, t.RowHeight)
		if i < len(row) {
			t.renderCell(b, row[i], col, x, y)
		}
		x += col.Width
	}
}

func (t *Table) renderCell(b *layout.Builder, c Cell, col Column, x, y float64) {
	if c.Checkbox {
		// Empty tick box centered in the cell.
		side := t.RowHeight - 3
		b.Box(x+(col.Width-side)/2, y+1.5, side, side)
		return
	}
	if c.Text == "" {
		return
	}
	baseline := y + t.RowHeight - 2.2
	switch col.Align {
	case doc.AlignCenter:
		b.TextCentered(x+col.Width/2, baseline, c.Text, layout.SizeSmall, doc.FontRegular)
	case doc.AlignRight:
		b.TextRight(x+col.Width-1.5, baseline, c.Text, layout.SizeSmall, doc.FontRegular)
	default:
		b.Text(x+1.5, baseline, c.Text, layout.SizeSmall, doc.FontRegular)
	}
}
