package template_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/template"
)

func testCtx() template.Context {
	return template.Context{
		Geometry: doc.DefaultGeometry(),
		Now:      func() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func docContains(d *doc.Document, want string) bool {
	for _, p := range d.Pages {
		for _, cmd := range p.Commands {
			if txt, ok := cmd.(doc.Text); ok && txt.Value == want {
				return true
			}
		}
	}
	return false
}

func docContainsSubstring(d *doc.Document, want string) bool {
	for _, p := range d.Pages {
		for _, cmd := range p.Commands {
			if txt, ok := cmd.(doc.Text); ok && strings.Contains(txt.Value, want) {
				return true
			}
		}
	}
	return false
}

func TestTotalityAllTypesEmptyData(t *testing.T) {
	types := append(template.Types(), "unknown_type_xyz", "", "42")
	for _, dt := range types {
		d := template.Generate(testCtx(), dt, nil)
		if d == nil {
			t.Fatalf("%s: nil document", dt)
		}
		if d.PageCount() < 1 {
			t.Errorf("%s: %d pages, want >= 1", dt, d.PageCount())
		}
	}
}

func TestCertificateFullData(t *testing.T) {
	data := format.Record{
		"student": map[string]any{
			"first_name":    "Jean",
			"last_name":     "Mballa",
			"date_of_birth": "2009-05-01",
			"class_name":    "5ème B",
			"matricule":     "M12345",
		},
		"school": map[string]any{
			"name":    "Lycée X",
			"city":    "Douala",
			"country": "Cameroun",
		},
		"academicYear": "2024-2025",
	}
	d := template.Generate(testCtx(), template.TypeCertificatScolarite, data)
	if d.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", d.PageCount())
	}
	for _, want := range []string{"Mballa Jean", "01/05/2009", "5ème B", "M12345"} {
		if !docContainsSubstring(d, want) {
			t.Errorf("certificate missing %q", want)
		}
	}
}

func TestCertificateEmptyData(t *testing.T) {
	d := template.Generate(testCtx(), template.TypeCertificatScolarite, format.Record{})
	if d.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", d.PageCount())
	}
	for _, want := range []string{"Nom de l'élève", format.BlankDate, format.BlankField} {
		if !docContainsSubstring(d, want) {
			t.Errorf("empty certificate missing placeholder %q", want)
		}
	}
}

func TestCertificateBarcodeOnlyWithMatricule(t *testing.T) {
	withM := format.Record{"student": map[string]any{"matricule": "M12345"}}
	d := template.Generate(testCtx(), template.TypeCertificatScolarite, withM)
	if countBarcodes(d) != 1 {
		t.Errorf("barcodes = %d, want 1", countBarcodes(d))
	}
	d = template.Generate(testCtx(), template.TypeCertificatScolarite, format.Record{})
	if countBarcodes(d) != 0 {
		t.Errorf("barcodes without matricule = %d, want 0", countBarcodes(d))
	}
}

func countBarcodes(d *doc.Document) int {
	n := 0
	for _, p := range d.Pages {
		for _, cmd := range p.Commands {
			if _, ok := cmd.(doc.Barcode); ok {
				n++
			}
		}
	}
	return n
}

func TestRosterPaginationBoundary(t *testing.T) {
	students := make([]any, 61)
	for i := range students {
		students[i] = map[string]any{
			"first_name": fmt.Sprintf("Prénom%02d", i+1),
			"last_name":  fmt.Sprintf("Nom%02d", i+1),
		}
	}
	data := format.Record{"students": students, "className": "Test"}

	d := template.Generate(testCtx(), template.TypeListeEleves, data)
	if d.PageCount() < 2 {
		t.Fatalf("pages = %d, want >= 2", d.PageCount())
	}

	// Each student appears exactly once, first on page 1, last on final page.
	counts := map[int]int{}
	for pi, p := range d.Pages {
		for _, cmd := range p.Commands {
			txt, ok := cmd.(doc.Text)
			if !ok {
				continue
			}
			for i := 1; i <= 61; i++ {
				if txt.Value == fmt.Sprintf("Nom%02d Prénom%02d", i, i) {
					counts[i]++
					if i == 1 && pi != 0 {
						t.Errorf("student 1 on page %d, want page 1", pi+1)
					}
					if i == 61 && pi != d.PageCount()-1 {
						t.Errorf("student 61 on page %d, want final page %d", pi+1, d.PageCount())
					}
				}
			}
		}
	}
	for i := 1; i <= 61; i++ {
		if counts[i] != 1 {
			t.Errorf("student %d emitted %d times, want exactly once", i, counts[i])
		}
	}
}

func TestAttendanceGridIsLandscapeWithCheckboxes(t *testing.T) {
	students := []any{
		map[string]any{"first_name": "A", "last_name": "B"},
		map[string]any{"first_name": "C", "last_name": "D"},
	}
	d := template.Generate(testCtx(), template.TypeListeAppel, format.Record{"students": students})

	g := d.Pages[0].Geometry
	if g.Width <= g.Height {
		t.Errorf("attendance grid geometry %gx%g, want landscape", g.Width, g.Height)
	}
	for _, day := range []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"} {
		if !docContains(d, day) {
			t.Errorf("attendance grid missing weekday header %q", day)
		}
	}
}

func TestUnknownTypeTitle(t *testing.T) {
	d := template.Generate(testCtx(), "unknown_type_xyz", format.Record{})
	if d.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", d.PageCount())
	}
	if !docContains(d, "UNKNOWN TYPE XYZ") {
		t.Error("placeholder document missing derived title")
	}
	if d.Title != "UNKNOWN TYPE XYZ" {
		t.Errorf("document title = %q", d.Title)
	}
}

func TestNoticeFamilyTitles(t *testing.T) {
	cases := map[string]string{
		template.TypeCirculaire:    "CIRCULAIRE",
		template.TypeConvocation:   "CONVOCATION",
		template.TypeAvisImportant: "AVIS IMPORTANT",
		template.TypeAvisPaiement:  "AVIS DE PAIEMENT",
	}
	for dt, want := range cases {
		if got := template.Title(dt); got != want {
			t.Errorf("Title(%s) = %q, want %q", dt, got, want)
		}
		d := template.Generate(testCtx(), dt, format.Record{"content": "Ligne 1\nLigne 2"})
		if !docContains(d, want) {
			t.Errorf("%s document missing title %q", dt, want)
		}
		if !docContains(d, "Ligne 2") {
			t.Errorf("%s document missing content line", dt)
		}
	}
}

func TestDocumentDateFromDataBeatsClock(t *testing.T) {
	data := format.Record{"date": "2024-11-30"}
	d := template.Generate(testCtx(), template.TypeCirculaire, data)
	if !docContains(d, "Le 30/11/2024") {
		t.Error("notice must use the supplied date")
	}
	d = template.Generate(testCtx(), template.TypeCirculaire, format.Record{})
	if !docContains(d, "Le 15/01/2025") {
		t.Error("notice must fall back to the clock date")
	}
}

func TestWatermarkStampedUnderContent(t *testing.T) {
	ctx := testCtx()
	ctx.Watermark = "DUPLICATA"
	d := template.Generate(ctx, template.TypeCertificatScolarite, format.Record{})

	first, ok := d.Pages[0].Commands[0].(doc.Text)
	if !ok || first.Value != "DUPLICATA" {
		t.Fatalf("first command = %#v, want the watermark", d.Pages[0].Commands[0])
	}
	if first.Gray <= 0.5 {
		t.Error("watermark must be light gray")
	}
}
