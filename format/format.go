// Package format normalizes loosely-typed record fields into fixed-format
// printable strings.
//
// Administrative source data is sparse and inconsistent: dates arrive in
// several encodings, the same concept lives under several legacy field names,
// and any field may simply be absent. Every function here is total — invalid
// input resolves to a placeholder, never an error.
package format

import (
	"fmt"
	"strings"
	"time"
)

// BlankField is the fill-in-later placeholder for a missing scalar field.
const BlankField = "________"

// BlankDate is the placeholder emitted for a missing or unparseable date.
const BlankDate = "__/__/____"

// Record is a loosely-typed record bag, typically decoded from JSON.
type Record map[string]any

// birthDateAliases is the fixed priority order for the legacy birth-date field
// names. First non-empty alias wins; the order is part of the contract.
var birthDateAliases = []string{
	"date_of_birth",
	"birth_date",
	"birthdate",
	"dateOfBirth",
}

// dateLayouts are the input encodings Date tries, in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// Date formats a date-like value as DD/MM/YYYY. Nil, empty and unparseable
// values all resolve to BlankDate.
func Date(v any) string {
	switch d := v.(type) {
	case nil:
		return BlankDate
	case time.Time:
		if d.IsZero() {
			return BlankDate
		}
		return d.Format("02/01/2006")
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return BlankDate
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("02/01/2006")
			}
		}
		return BlankDate
	default:
		return BlankDate
	}
}

// BirthDate returns the raw value of the first populated birth-date alias on
// the record, or nil when none is set.
func BirthDate(r Record) any {
	for _, key := range birthDateAliases {
		if v, ok := r[key]; ok && v != nil {
			if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
			return v
		}
	}
	return nil
}

// Str returns the record field as a trimmed string, or "" when absent.
func Str(r Record, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	case float64:
		// JSON numbers decode as float64; whole values print without decimals.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case int:
		return fmt.Sprintf("%d", s)
	case int64:
		return fmt.Sprintf("%d", s)
	default:
		return ""
	}
}

// StrAny returns the first populated field among keys, or "" when none is set.
func StrAny(r Record, keys ...string) string {
	for _, key := range keys {
		if s := Str(r, key); s != "" {
			return s
		}
	}
	return ""
}

// Or substitutes fallback for an empty value.
func Or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// Blank substitutes the BlankField placeholder for an empty value.
func Blank(v string) string {
	return Or(v, BlankField)
}

// FullName renders "Last First" from a record's name fields. Both parts are
// optional; when both are missing, fallback is returned.
func FullName(r Record, fallback string) string {
	first := Str(r, "first_name")
	last := Str(r, "last_name")
	name := strings.TrimSpace(last + " " + first)
	return Or(name, fallback)
}

// Matricule returns the student's matriculation number, falling back to the
// first 8 characters of the record id.
func Matricule(r Record) string {
	if m := Str(r, "matricule"); m != "" {
		return m
	}
	id := Str(r, "id")
	if id == "" {
		return BlankField
	}
	runes := []rune(id)
	if len(runes) > 8 {
		runes = runes[:8]
	}
	return string(runes)
}

// AsRecord coerces a decoded JSON value into a Record. Non-map values yield an
// empty record, keeping downstream field access total.
func AsRecord(v any) Record {
	switch r := v.(type) {
	case Record:
		return r
	case map[string]any:
		return Record(r)
	default:
		return Record{}
	}
}

// AsRecords coerces a decoded JSON value into a record slice. Elements that
// are not objects become empty records rather than being dropped, so row
// counts stay faithful to the input.
func AsRecords(v any) []Record {
	switch list := v.(type) {
	case []Record:
		return list
	case []map[string]any:
		out := make([]Record, len(list))
		for i, m := range list {
			out[i] = Record(m)
		}
		return out
	case []any:
		out := make([]Record, len(list))
		for i, e := range list {
			out[i] = AsRecord(e)
		}
		return out
	default:
		return nil
	}
}
