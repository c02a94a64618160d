package doc_test

import (
	"errors"
	"testing"

	"github.com/edutrack/docgen/doc"
)

func TestNewGeometryValid(t *testing.T) {
	g, err := doc.NewGeometry(210, 297, 20)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	if g.Width != 210 || g.Height != 297 || g.Margin != 20 {
		t.Errorf("geometry = %+v", g)
	}
}

func TestNewGeometryRejectsDegenerateAreas(t *testing.T) {
	cases := []struct {
		w, h, m float64
	}{
		{0, 297, 20},
		{210, 0, 20},
		{210, 297, -1},
		{210, 297, 105},
		{210, 297, 150},
		{40, 297, 20},
	}
	for _, c := range cases {
		if _, err := doc.NewGeometry(c.w, c.h, c.m); !errors.Is(err, doc.ErrInvalidGeometry) {
			t.Errorf("NewGeometry(%g, %g, %g): err = %v, want ErrInvalidGeometry", c.w, c.h, c.m, err)
		}
	}
}

func TestOrientedSwapsOnce(t *testing.T) {
	g := doc.DefaultGeometry()

	l := g.Oriented(doc.Landscape)
	if l.Width != g.Height || l.Height != g.Width {
		t.Errorf("landscape = %gx%g", l.Width, l.Height)
	}
	if p := l.Oriented(doc.Portrait); p != g {
		t.Errorf("round trip = %+v, want %+v", p, g)
	}
	if p := g.Oriented(doc.Portrait); p != g {
		t.Errorf("portrait of portrait = %+v, want unchanged", p)
	}
}
