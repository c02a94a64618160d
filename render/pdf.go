// Package render contains the backends that turn a doc.Document display list
// into viewable artifacts: a self-contained PDF 1.4 writer and a PNG
// rasterizer. Both consume the same command sequence; neither mutates it.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/edutrack/docgen/doc"
)

const mmToPt = 72.0 / 25.4

// PDF serializes a document to PDF 1.4 bytes. Text uses the built-in
// Helvetica faces with WinAnsi encoding, which covers the French accented
// characters these documents carry.
func PDF(d *doc.Document) ([]byte, error) {
	w := &pdfWriter{}
	return w.write(d)
}

// pdfWriter assembles the object table and cross-reference section.
type pdfWriter struct {
	buf     bytes.Buffer
	offsets []int
}

// Fixed object numbers: 1 catalog, 2 page tree, 3-5 fonts. Page and content
// objects are appended in pairs from 6.
const (
	objCatalog  = 1
	objPages    = 2
	objFontReg  = 3
	objFontBold = 4
	objFontItal = 5
	objFirst    = 6
)

func (w *pdfWriter) write(d *doc.Document) ([]byte, error) {
	n := len(d.Pages)
	w.offsets = make([]int, objFirst-1+2*n)

	w.buf.WriteString("%PDF-1.4\n")

	w.beginObj(objCatalog)
	w.buf.WriteString("<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	w.beginObj(objPages)
	w.buf.WriteString("<< /Type /Pages /Kids [")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&w.buf, " %d 0 R", objFirst+2*i)
	}
	fmt.Fprintf(&w.buf, " ] /Count %d >>\nendobj\n", n)

	for i, name := range []string{"Helvetica", "Helvetica-Bold", "Helvetica-Oblique"} {
		w.beginObj(objFontReg + i)
		fmt.Fprintf(&w.buf,
			"<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>\nendobj\n", name)
	}

	for i, p := range d.Pages {
		content, err := pageContent(p)
		if err != nil {
			return nil, err
		}

		w.beginObj(objFirst + 2*i)
		fmt.Fprintf(&w.buf,
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] "+
				"/Resources << /Font << /F1 3 0 R /F2 4 0 R /F3 5 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			p.Geometry.Width*mmToPt, p.Geometry.Height*mmToPt, objFirst+2*i+1)

		w.beginObj(objFirst + 2*i + 1)
		fmt.Fprintf(&w.buf, "<< /Length %d >>\nstream\n", len(content))
		w.buf.Write(content)
		w.buf.WriteString("\nendstream\nendobj\n")
	}

	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", len(w.offsets)+1)
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf,
		"trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(w.offsets)+1, xref)

	return w.buf.Bytes(), nil
}

func (w *pdfWriter) beginObj(num int) {
	w.offsets[num-1] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n", num)
}

// pageContent builds the content stream for one page. The display list uses
// top-left millimeter coordinates; PDF user space is bottom-left points, so
// every Y is flipped against the page height.
func pageContent(p *doc.Page) ([]byte, error) {
	var b bytes.Buffer
	h := p.Geometry.Height

	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case doc.Text:
			writeText(&b, c, h)
		case doc.Line:
			lw := c.Width
			if lw == 0 {
				lw = 0.2
			}
			fmt.Fprintf(&b, "%.2f w %.2f %.2f m %.2f %.2f l S\n",
				lw*mmToPt, c.X1*mmToPt, (h-c.Y1)*mmToPt, c.X2*mmToPt, (h-c.Y2)*mmToPt)
		case doc.Rect:
			fmt.Fprintf(&b, "0.2 w %.2f %.2f %.2f %.2f re S\n",
				c.X*mmToPt, (h-c.Y-c.H)*mmToPt, c.W*mmToPt, c.H*mmToPt)
		case doc.FillRect:
			fmt.Fprintf(&b, "%.2f g %.2f %.2f %.2f %.2f re f 0 g\n",
				c.Gray, c.X*mmToPt, (h-c.Y-c.H)*mmToPt, c.W*mmToPt, c.H*mmToPt)
		case doc.Barcode:
			if err := writeBarcode(&b, c, h); err != nil {
				return nil, err
			}
		}
	}
	return b.Bytes(), nil
}

func writeText(b *bytes.Buffer, c doc.Text, pageH float64) {
	x := c.X
	switch c.Align {
	case doc.AlignCenter:
		x -= textWidthMM(c.Value, c.Size, c.Style) / 2
	case doc.AlignRight:
		x -= textWidthMM(c.Value, c.Size, c.Style)
	}

	font := "/F1"
	switch c.Style {
	case doc.FontBold:
		font = "/F2"
	case doc.FontItalic:
		font = "/F3"
	}

	if c.Gray > 0 {
		fmt.Fprintf(b, "%.2f g ", c.Gray)
	}
	fmt.Fprintf(b, "BT %s %.1f Tf %.2f %.2f Td (%s) Tj ET\n",
		font, c.Size, x*mmToPt, (pageH-c.Y)*mmToPt, escapeText(c.Value))
	if c.Gray > 0 {
		b.WriteString("0 g\n")
	}
}

// writeBarcode encodes the payload and paints each dark module as a filled
// rectangle, avoiding image XObjects entirely.
func writeBarcode(b *bytes.Buffer, c doc.Barcode, pageH float64) error {
	img, err := EncodeBarcode(c.Kind, c.Payload)
	if err != nil {
		// A payload the symbology cannot encode degrades to an empty
		// outline; export must not fail for malformed source data.
		fmt.Fprintf(b, "0.2 w %.2f %.2f %.2f %.2f re S\n",
			c.X*mmToPt, (pageH-c.Y-c.H)*mmToPt, c.W*mmToPt, c.H*mmToPt)
		return nil
	}

	bounds := img.Bounds()
	mw := c.W / float64(bounds.Dx())
	mh := c.H / float64(bounds.Dy())

	b.WriteString("0 g\n")
	for my := bounds.Min.Y; my < bounds.Max.Y; my++ {
		for mx := bounds.Min.X; mx < bounds.Max.X; mx++ {
			if !darkModule(img, mx, my) {
				continue
			}
			x := c.X + float64(mx-bounds.Min.X)*mw
			y := c.Y + float64(my-bounds.Min.Y)*mh
			fmt.Fprintf(b, "%.2f %.2f %.2f %.2f re f\n",
				x*mmToPt, (pageH-y-mh)*mmToPt, mw*mmToPt, mh*mmToPt)
		}
	}
	return nil
}

// EncodeBarcode produces the unscaled module image for a barcode command.
// Code 128 yields a one-module-high strip; PDF417 a 2D grid.
func EncodeBarcode(kind doc.BarcodeKind, payload string) (barcode.Barcode, error) {
	switch kind {
	case doc.BarcodePDF417:
		return pdf417.Encode(payload, 4, 2), nil
	default:
		return code128.Encode(payload)
	}
}

func darkModule(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 128
}

// escapeText converts a UTF-8 string to WinAnsi bytes with PDF string
// escaping. Characters outside Latin-1 degrade to '?'.
func escapeText(s string) []byte {
	var out []byte
	for _, r := range s {
		var b byte
		switch {
		case r < 0x80:
			b = byte(r)
		case r >= 0xA0 && r <= 0xFF:
			b = byte(r)
		case r == '’' || r == '‘':
			b = '\''
		case r == '–' || r == '—':
			b = '-'
		default:
			b = '?'
		}
		if b == '(' || b == ')' || b == '\\' {
			out = append(out, '\\')
		}
		out = append(out, b)
	}
	return out
}

// helvWidths maps a few narrow and wide glyphs to their Helvetica advance in
// thousandths of an em; everything else uses the average 556.
var helvWidths = map[rune]int{
	'i': 222, 'j': 222, 'l': 222, 't': 278, 'f': 278, 'r': 333,
	'I': 278, 'J': 500, '.': 278, ',': 278, ':': 278, ';': 278,
	' ': 278, '\'': 191, '(': 333, ')': 333, '-': 333, '/': 278,
	'm': 833, 'M': 833, 'w': 722, 'W': 944,
}

// textWidthMM estimates the rendered width of a string in millimeters. Bold
// runs a touch wider.
func textWidthMM(s string, size float64, style doc.FontStyle) float64 {
	total := 0
	for _, r := range s {
		if w, ok := helvWidths[r]; ok {
			total += w
		} else {
			total += 556
		}
	}
	pts := float64(total) / 1000 * size
	if style == doc.FontBold {
		pts *= 1.05
	}
	return pts / mmToPt
}
