// Package layout positions text, rules and boxes on a page at absolute
// millimeter coordinates.
//
// Administrative paperwork has a fixed, known skeleton per document type, so
// the engine is deliberately not flow-based: each template picks its own
// vertical anchors and line height and emits draw commands in source order.
// Order matters only for opaque fills — a fill painted after text covers it.
package layout

import (
	"github.com/edutrack/docgen/doc"
)

// Default font sizes in points.
const (
	SizeTitle  = 16.0
	SizeHeader = 11.0
	SizeBody   = 11.0
	SizeSmall  = 9.0
)

// Builder accumulates draw commands for a single page and tracks a running
// Y cursor for line-oriented templates.
type Builder struct {
	page *doc.Page
	y    float64
}

// NewPage starts a fresh page with the given geometry and returns its builder.
// The cursor starts at the top margin.
func NewPage(g doc.Geometry) *Builder {
	return &Builder{
		page: &doc.Page{Geometry: g},
		y:    g.Margin,
	}
}

// Page returns the page built so far.
func (b *Builder) Page() *doc.Page { return b.page }

// Geometry returns the page geometry.
func (b *Builder) Geometry() doc.Geometry { return b.page.Geometry }

// Y returns the current cursor position.
func (b *Builder) Y() float64 { return b.y }

// SetY moves the cursor to an absolute position.
func (b *Builder) SetY(y float64) { b.y = y }

// Advance moves the cursor down by dy.
func (b *Builder) Advance(dy float64) { b.y += dy }

// Emit appends a raw command to the page.
func (b *Builder) Emit(cmd doc.Command) {
	b.page.Commands = append(b.page.Commands, cmd)
}

// Text places left-aligned text at (x, y) without moving the cursor.
func (b *Builder) Text(x, y float64, s string, size float64, style doc.FontStyle) {
	b.Emit(doc.Text{X: x, Y: y, Value: s, Size: size, Style: style})
}

// TextCentered places text anchored at x with center alignment. Centering is
// carried as an alignment flag on the command; renderers resolve it against
// measured text width.
func (b *Builder) TextCentered(x, y float64, s string, size float64, style doc.FontStyle) {
	b.Emit(doc.Text{X: x, Y: y, Value: s, Size: size, Style: style, Align: doc.AlignCenter})
}

// TextRight places text anchored at x with right alignment.
func (b *Builder) TextRight(x, y float64, s string, size float64, style doc.FontStyle) {
	b.Emit(doc.Text{X: x, Y: y, Value: s, Size: size, Style: style, Align: doc.AlignRight})
}

// Line writes a left-aligned body line at the left margin and advances the
// cursor by lineHeight.
func (b *Builder) Line(s string, lineHeight float64) {
	b.Text(b.page.Geometry.Margin, b.y, s, SizeBody, doc.FontRegular)
	b.y += lineHeight
}

// CenterLine writes a horizontally centered line and advances the cursor.
func (b *Builder) CenterLine(s string, size float64, style doc.FontStyle, lineHeight float64) {
	b.TextCentered(b.page.Geometry.Width/2, b.y, s, size, style)
	b.y += lineHeight
}

// Rule draws a horizontal rule across the content area at the cursor and
// advances by dy.
func (b *Builder) Rule(dy float64) {
	g := b.page.Geometry
	b.Emit(doc.Line{X1: g.Margin, Y1: b.y, X2: g.Width - g.Margin, Y2: b.y})
	b.y += dy
}

// Box draws a rectangle outline.
func (b *Builder) Box(x, y, w, h float64) {
	b.Emit(doc.Rect{X: x, Y: y, W: w, H: h})
}

// FillBox draws a filled rectangle.
func (b *Builder) FillBox(x, y, w, h, gray float64) {
	b.Emit(doc.FillRect{X: x, Y: y, W: w, H: h, Gray: gray})
}

// Barcode places a barcode box.
func (b *Builder) Barcode(x, y, w, h float64, kind doc.BarcodeKind, payload string) {
	b.Emit(doc.Barcode{X: x, Y: y, W: w, H: h, Kind: kind, Payload: payload})
}

// SignatureBox draws a labeled signature area: the label above an empty box.
func (b *Builder) SignatureBox(x, y, w float64, label string) {
	b.Text(x, y, label, SizeSmall, doc.FontRegular)
	b.Box(x, y+3, w, 22)
}

// Watermark stamps a large light-gray centered text across the middle of the
// page. Stamped before content so body text stays readable on top of it.
func (b *Builder) Watermark(s string) {
	g := b.page.Geometry
	b.Emit(doc.Text{
		X:     g.Width / 2,
		Y:     g.Height / 2,
		Value: s,
		Size:  48,
		Style: doc.FontBold,
		Align: doc.AlignCenter,
		Gray:  0.85,
	})
}

// Header writes the standard school letterhead: school name, address line,
// and a rule. Returns with the cursor below the header block.
func (b *Builder) Header(schoolName, addressLine string) {
	b.CenterLine(schoolName, SizeHeader+2, doc.FontBold, 7)
	if addressLine != "" {
		b.CenterLine(addressLine, SizeSmall, doc.FontRegular, 6)
	}
	b.Rule(8)
}
