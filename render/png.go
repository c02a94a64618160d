package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/boombuler/barcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/edutrack/docgen/doc"
)

// DefaultScale is the default rasterization density in pixels per millimeter
// (roughly 100 dpi).
const DefaultScale = 4.0

// PNG rasterizes one page of a document to PNG bytes at the given pixels-per-
// millimeter scale. A scale of 0 uses DefaultScale. Intended for on-screen
// preview thumbnails; print fidelity comes from the PDF backend.
func PNG(d *doc.Document, pageIndex int, scale float64) ([]byte, error) {
	if pageIndex < 0 || pageIndex >= len(d.Pages) {
		return nil, fmt.Errorf("render: page index %d out of range (%d pages)", pageIndex, len(d.Pages))
	}
	img := PNGImage(d.Pages[pageIndex], scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNGImage rasterizes a single page into an RGBA image.
func PNGImage(p *doc.Page, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = DefaultScale
	}
	w := int(math.Ceil(p.Geometry.Width * scale))
	h := int(math.Ceil(p.Geometry.Height * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, cmd := range p.Commands {
		switch c := cmd.(type) {
		case doc.Text:
			drawText(img, c, scale)
		case doc.Line:
			drawLine(img, c.X1*scale, c.Y1*scale, c.X2*scale, c.Y2*scale, color.Black)
		case doc.Rect:
			strokeRect(img, c.X*scale, c.Y*scale, c.W*scale, c.H*scale)
		case doc.FillRect:
			fillRect(img, c.X*scale, c.Y*scale, c.W*scale, c.H*scale, grayColor(c.Gray))
		case doc.Barcode:
			drawBarcode(img, c, scale)
		}
	}
	return img
}

func grayColor(g float64) color.Color {
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	return color.Gray{Y: uint8(g * 255)}
}

// drawText renders with the fixed 7x13 face regardless of the command's point
// size; preview output trades typography for zero font assets.
func drawText(img *image.RGBA, c doc.Text, scale float64) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(grayColor(c.Gray)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(c.X*scale), int(c.Y*scale)),
	}
	switch c.Align {
	case doc.AlignCenter:
		d.Dot.X -= d.MeasureString(c.Value) / 2
	case doc.AlignRight:
		d.Dot.X -= d.MeasureString(c.Value)
	}
	d.DrawString(c.Value)
}

func drawLine(img *image.RGBA, x1, y1, x2, y2 float64, col color.Color) {
	steps := math.Max(math.Abs(x2-x1), math.Abs(y2-y1))
	if steps < 1 {
		steps = 1
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		img.Set(int(x1+(x2-x1)*t), int(y1+(y2-y1)*t), col)
	}
}

func strokeRect(img *image.RGBA, x, y, w, h float64) {
	drawLine(img, x, y, x+w, y, color.Black)
	drawLine(img, x, y+h, x+w, y+h, color.Black)
	drawLine(img, x, y, x, y+h, color.Black)
	drawLine(img, x+w, y, x+w, y+h, color.Black)
}

func fillRect(img *image.RGBA, x, y, w, h float64, col color.Color) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// drawBarcode scales the module image to the command's pixel box and blits
// it. Unencodable payloads degrade to an empty outline, matching the PDF
// backend's behavior.
func drawBarcode(img *image.RGBA, c doc.Barcode, scale float64) {
	px, py := c.X*scale, c.Y*scale
	pw, ph := int(c.W*scale), int(c.H*scale)

	bc, err := EncodeBarcode(c.Kind, c.Payload)
	if err == nil && pw > 0 && ph > 0 {
		scaled, scaleErr := barcode.Scale(bc, pw, ph)
		if scaleErr == nil {
			r := image.Rect(int(px), int(py), int(px)+pw, int(py)+ph)
			draw.Draw(img, r, scaled, scaled.Bounds().Min, draw.Over)
			return
		}
	}
	strokeRect(img, px, py, c.W*scale, c.H*scale)
}
