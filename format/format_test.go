package format_test

import (
	"testing"
	"time"

	"github.com/edutrack/docgen/format"
)

func TestDateValidISO(t *testing.T) {
	got := format.Date("2009-05-01")
	if got != "01/05/2009" {
		t.Errorf("Date(2009-05-01) = %q, want 01/05/2009", got)
	}
}

func TestDateRFC3339(t *testing.T) {
	got := format.Date("2024-09-15T08:30:00Z")
	if got != "15/09/2024" {
		t.Errorf("Date(RFC3339) = %q, want 15/09/2024", got)
	}
}

func TestDateTime(t *testing.T) {
	d := time.Date(2023, 12, 24, 10, 0, 0, 0, time.UTC)
	if got := format.Date(d); got != "24/12/2023" {
		t.Errorf("Date(time.Time) = %q, want 24/12/2023", got)
	}
}

func TestDateInvalid(t *testing.T) {
	cases := []any{nil, "", "not-a-date", "2009-13-45", 42, true}
	for _, c := range cases {
		if got := format.Date(c); got != format.BlankDate {
			t.Errorf("Date(%v) = %q, want %q", c, got, format.BlankDate)
		}
	}
}

func TestBirthDateAliasPriority(t *testing.T) {
	r := format.Record{
		"birth_date":    "2010-01-01",
		"date_of_birth": "2009-05-01",
		"birthdate":     "2011-02-02",
	}
	if got := format.BirthDate(r); got != "2009-05-01" {
		t.Errorf("BirthDate = %v, want date_of_birth value", got)
	}
}

func TestBirthDateFallsThroughEmptyAliases(t *testing.T) {
	r := format.Record{
		"date_of_birth": "",
		"birth_date":    nil,
		"birthdate":     "2011-02-02",
	}
	if got := format.BirthDate(r); got != "2011-02-02" {
		t.Errorf("BirthDate = %v, want birthdate value", got)
	}
	if got := format.BirthDate(format.Record{}); got != nil {
		t.Errorf("BirthDate(empty) = %v, want nil", got)
	}
}

func TestBirthDateCamelCaseAlias(t *testing.T) {
	r := format.Record{"dateOfBirth": "2012-03-03"}
	if got := format.BirthDate(r); got != "2012-03-03" {
		t.Errorf("BirthDate = %v, want dateOfBirth value", got)
	}
}

func TestBlankFallback(t *testing.T) {
	if got := format.Blank(""); got != format.BlankField {
		t.Errorf("Blank(\"\") = %q", got)
	}
	if got := format.Blank("5ème B"); got != "5ème B" {
		t.Errorf("Blank kept value = %q", got)
	}
}

func TestFullName(t *testing.T) {
	r := format.Record{"first_name": "Jean", "last_name": "Mballa"}
	if got := format.FullName(r, "Nom de l'élève"); got != "Mballa Jean" {
		t.Errorf("FullName = %q, want Mballa Jean", got)
	}
	if got := format.FullName(format.Record{}, "Nom de l'élève"); got != "Nom de l'élève" {
		t.Errorf("FullName fallback = %q", got)
	}
	if got := format.FullName(format.Record{"first_name": "Jean"}, "x"); got != "Jean" {
		t.Errorf("FullName first only = %q", got)
	}
}

func TestMatricule(t *testing.T) {
	if got := format.Matricule(format.Record{"matricule": "M12345"}); got != "M12345" {
		t.Errorf("Matricule = %q", got)
	}
	r := format.Record{"id": "a1b2c3d4-e5f6-7890"}
	if got := format.Matricule(r); got != "a1b2c3d4" {
		t.Errorf("Matricule from id = %q, want a1b2c3d4", got)
	}
	if got := format.Matricule(format.Record{}); got != format.BlankField {
		t.Errorf("Matricule empty = %q", got)
	}
}

func TestStrCoercions(t *testing.T) {
	r := format.Record{"amount": float64(25000), "rank": 3, "name": "  x  "}
	if got := format.Str(r, "amount"); got != "25000" {
		t.Errorf("Str(float64) = %q", got)
	}
	if got := format.Str(r, "rank"); got != "3" {
		t.Errorf("Str(int) = %q", got)
	}
	if got := format.Str(r, "name"); got != "x" {
		t.Errorf("Str trims = %q", got)
	}
	if got := format.Str(r, "missing"); got != "" {
		t.Errorf("Str(missing) = %q", got)
	}
}

func TestAsRecords(t *testing.T) {
	in := []any{
		map[string]any{"first_name": "A"},
		"garbage",
		map[string]any{"first_name": "B"},
	}
	recs := format.AsRecords(in)
	if len(recs) != 3 {
		t.Fatalf("AsRecords len = %d, want 3", len(recs))
	}
	if format.Str(recs[0], "first_name") != "A" || format.Str(recs[2], "first_name") != "B" {
		t.Error("AsRecords lost field values")
	}
}
