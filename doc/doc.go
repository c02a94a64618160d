// Package doc defines the core contracts of the document engine: page geometry,
// draw commands, pages and generated documents.
//
// A generated document is a retained-mode display list: an ordered sequence of
// pages, each an ordered sequence of draw commands with absolute millimeter
// coordinates. Rendering backends (PDF, PNG) consume this list; the engine
// itself never performs I/O.
package doc

import (
	"errors"
	"fmt"
)

// Orientation selects which way a page is turned.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// A4 dimensions in millimeters.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// ErrInvalidGeometry is returned when a geometry leaves no positive content area.
var ErrInvalidGeometry = errors.New("docgen: invalid page geometry")

// Geometry holds the immutable page dimensions used by the layout engine.
// All values are millimeters. Zero value is not usable; construct with
// NewGeometry or use DefaultGeometry.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// NewGeometry validates and returns a page geometry. The margin must leave a
// positive content area on both axes.
func NewGeometry(width, height, margin float64) (Geometry, error) {
	g := Geometry{Width: width, Height: height, Margin: margin}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// DefaultGeometry is portrait A4 with a 20mm margin.
func DefaultGeometry() Geometry {
	return Geometry{Width: A4Width, Height: A4Height, Margin: 20}
}

// Validate reports whether the geometry describes a positive content area.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page %gx%gmm", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Margin < 0 || 2*g.Margin >= g.Width || 2*g.Margin >= g.Height {
		return fmt.Errorf("%w: margin %gmm on %gx%gmm page", ErrInvalidGeometry, g.Margin, g.Width, g.Height)
	}
	return nil
}

// Oriented returns the geometry with width/height arranged for the given
// orientation. The stored dimensions are taken as the portrait ones.
func (g Geometry) Oriented(o Orientation) Geometry {
	w, h := g.Width, g.Height
	if (o == Landscape) == (w < h) {
		w, h = h, w
	}
	return Geometry{Width: w, Height: h, Margin: g.Margin}
}

// Align is the horizontal anchor for a text command.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// FontStyle selects the face used for a text command.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
)

// BarcodeKind selects the symbology of a barcode command.
type BarcodeKind int

const (
	BarcodeCode128 BarcodeKind = iota
	BarcodePDF417
)

// Command is a single draw instruction. Exactly one of the concrete command
// types implements it. Coordinates are millimeters from the top-left corner.
type Command interface {
	command()
}

// Text places a string at (X, Y) with the given anchor alignment. For
// AlignCenter and AlignRight, X is the anchor point, not the left edge.
type Text struct {
	X, Y  float64
	Value string
	Size  float64 // font size in points
	Style FontStyle
	Align Align
	Gray  float64 // 0 = black (default), 1 = white
}

// Line draws a straight rule from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64 // line width in mm; 0 means hairline default
}

// Rect draws a rectangle outline with top-left corner (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// FillRect draws a filled rectangle. Emission order matters: a fill emitted
// after text paints over it.
type FillRect struct {
	X, Y, W, H float64
	Gray       float64 // fill gray level, 0 = black
}

// Barcode places a barcode of the given symbology inside the (X, Y, W, H) box.
// The payload is encoded by the rendering backend, not by the layout engine.
type Barcode struct {
	X, Y, W, H float64
	Kind       BarcodeKind
	Payload    string
}

func (Text) command()     {}
func (Line) command()     {}
func (Rect) command()     {}
func (FillRect) command() {}
func (Barcode) command()  {}

// Page is one printable sheet: its geometry plus an ordered command list.
type Page struct {
	Geometry Geometry
	Commands []Command
}

// Document is the output of one generation call: an ordered page sequence.
// Every generated document has at least one page.
type Document struct {
	Title string
	Pages []*Page
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Pages) }
