package render_test

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/render"
)

func TestPNGPageSizeMatchesGeometry(t *testing.T) {
	d := onePageDoc(doc.Text{X: 20, Y: 30, Value: "Aperçu", Size: 11})

	b, err := render.PNG(d, 0, render.DefaultScale)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	g := d.Pages[0].Geometry
	wantW := int(math.Ceil(g.Width * render.DefaultScale))
	wantH := int(math.Ceil(g.Height * render.DefaultScale))
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("image %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestPNGPageIndexOutOfRange(t *testing.T) {
	d := onePageDoc()
	if _, err := render.PNG(d, 1, 0); err == nil {
		t.Error("expected error for out-of-range page index")
	}
	if _, err := render.PNG(d, -1, 0); err == nil {
		t.Error("expected error for negative page index")
	}
}

func TestPNGFillRectPaintsPixels(t *testing.T) {
	p := &doc.Page{
		Geometry: doc.DefaultGeometry(),
		Commands: []doc.Command{doc.FillRect{X: 50, Y: 50, W: 20, H: 10, Gray: 0}},
	}
	img := render.PNGImage(p, 2)

	r, g, b, _ := img.At(110, 105).RGBA() // inside the filled box at 2 px/mm
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel inside fill = (%d,%d,%d), want black", r, g, b)
	}
	r, g, b, _ = img.At(10, 10).RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Error("pixel outside fill should stay white")
	}
}
