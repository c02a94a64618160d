package render_test

import (
	"bytes"
	"testing"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/render"
)

func onePageDoc(cmds ...doc.Command) *doc.Document {
	return &doc.Document{
		Pages: []*doc.Page{{Geometry: doc.DefaultGeometry(), Commands: cmds}},
	}
}

func TestPDFHeaderAndTrailer(t *testing.T) {
	b, err := render.PDF(onePageDoc(
		doc.Text{X: 20, Y: 30, Value: "Certificat de scolarité", Size: 12},
	))
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Error("output missing %PDF- header")
	}
	if !bytes.Contains(b, []byte("%%EOF")) {
		t.Errorf("output missing %%%%EOF trailer")
	}
	t.Logf("PDF: %d bytes", len(b))
}

func TestPDFOnePairOfObjectsPerPage(t *testing.T) {
	d := &doc.Document{Pages: []*doc.Page{
		{Geometry: doc.DefaultGeometry()},
		{Geometry: doc.DefaultGeometry()},
		{Geometry: doc.DefaultGeometry()},
	}}
	b, err := render.PDF(d)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Contains(b, []byte("/Count 3")) {
		t.Error("page tree must count 3 pages")
	}
}

func TestPDFEscapesDelimiters(t *testing.T) {
	b, err := render.PDF(onePageDoc(
		doc.Text{X: 20, Y: 30, Value: `Né(e) le \ test`, Size: 11},
	))
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Contains(b, []byte(`\(e\)`)) {
		t.Error("parentheses must be escaped in PDF strings")
	}
	if !bytes.Contains(b, []byte(`\\`)) {
		t.Error("backslash must be escaped in PDF strings")
	}
}

func TestPDFBoldUsesSecondFont(t *testing.T) {
	b, err := render.PDF(onePageDoc(
		doc.Text{X: 20, Y: 30, Value: "TITRE", Size: 16, Style: doc.FontBold},
	))
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Contains(b, []byte("/F2 16.0 Tf")) {
		t.Error("bold text must select /F2")
	}
}

func TestPDFBarcodeEmitsFills(t *testing.T) {
	withBarcode, err := render.PDF(onePageDoc(
		doc.Barcode{X: 20, Y: 250, W: 50, H: 10, Kind: doc.BarcodeCode128, Payload: "M12345"},
	))
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	empty, err := render.PDF(onePageDoc())
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if bytes.Count(withBarcode, []byte(" re f")) <= bytes.Count(empty, []byte(" re f")) {
		t.Error("barcode must emit filled module rectangles")
	}
}

func TestPDFDeterministic(t *testing.T) {
	d := onePageDoc(
		doc.Text{X: 105, Y: 50, Value: "LISTE DES ÉLÈVES", Size: 16, Style: doc.FontBold, Align: doc.AlignCenter},
		doc.Line{X1: 20, Y1: 55, X2: 190, Y2: 55},
		doc.Rect{X: 20, Y: 60, W: 170, H: 7},
		doc.FillRect{X: 20, Y: 60, W: 170, H: 7, Gray: 0.9},
	)
	a, err := render.PDF(d)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	b, err := render.PDF(d)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical documents must serialize identically")
	}
}

func TestEncodeBarcodeKinds(t *testing.T) {
	if _, err := render.EncodeBarcode(doc.BarcodeCode128, "M12345"); err != nil {
		t.Errorf("code128: %v", err)
	}
	if _, err := render.EncodeBarcode(doc.BarcodePDF417, "M12345|25000|01/09/2024"); err != nil {
		t.Errorf("pdf417: %v", err)
	}
}
