// Package template maps document-type keys to layout generators for the
// administrative documents EduTrack prints: certificates, enrollment forms,
// payment attestations, class rosters, attendance sheets and notices.
//
// Generation is total. Unknown document types fall through to a generic
// placeholder document, and missing record fields render as blank-line
// placeholders, so a caller can hand any type key and any data bag to
// Generate and always get at least one page back.
package template

import (
	"strings"
	"time"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
)

// Document type keys. The set is fixed but the registry degrades gracefully
// for anything outside it.
const (
	TypeCertificatScolarite     = "certificat_scolarite"
	TypeCertificatFrequentation = "certificat_frequentation"
	TypeFicheInscription        = "fiche_inscription"
	TypeAttestationPaiement     = "attestation_paiement"
	TypeListeEleves             = "liste_eleves"
	TypeListeAppel              = "liste_appel"
	TypeCirculaire              = "circulaire"
	TypeConvocation             = "convocation"
	TypeAvisImportant           = "avis_important"
	TypeAvisPaiement            = "avis_paiement"
)

// Context carries the per-generator configuration: page geometry (portrait
// base), the clock used for "fait le" dates when the data supplies none, and
// an optional watermark stamped under every page's content.
type Context struct {
	Geometry  doc.Geometry
	Now       func() time.Time
	Watermark string
}

// generator produces a complete document from a data bag.
type generator func(Context, format.Record) *doc.Document

// generators is the dispatch table. The notice family shares one generator
// parameterized by its title.
var generators = map[string]generator{
	TypeCertificatScolarite:     certificatScolarite,
	TypeCertificatFrequentation: certificatFrequentation,
	TypeFicheInscription:        ficheInscription,
	TypeAttestationPaiement:     attestationPaiement,
	TypeListeEleves:             listeEleves,
	TypeListeAppel:              listeAppel,
	TypeCirculaire:              notice(TypeCirculaire),
	TypeConvocation:             notice(TypeConvocation),
	TypeAvisImportant:           notice(TypeAvisImportant),
	TypeAvisPaiement:            notice(TypeAvisPaiement),
}

// noticeTitles is the fixed title table for the notice/circular family.
var noticeTitles = map[string]string{
	TypeCirculaire:    "CIRCULAIRE",
	TypeConvocation:   "CONVOCATION",
	TypeAvisImportant: "AVIS IMPORTANT",
	TypeAvisPaiement:  "AVIS DE PAIEMENT",
}

// layoutSpec hoists the per-type pagination constants out of template prose
// so the break math is auditable in one place.
type layoutSpec struct {
	orientation  doc.Orientation
	startY       float64 // Y of the first table row block
	rowHeight    float64 // mm per data row
	bottomMargin float64 // break threshold is pageHeight - bottomMargin
}

var layouts = map[string]layoutSpec{
	TypeListeEleves: {orientation: doc.Portrait, startY: 60, rowHeight: 7, bottomMargin: 27},
	TypeListeAppel:  {orientation: doc.Landscape, startY: 50, rowHeight: 8, bottomMargin: 20},
}

// Generate dispatches to the registered generator for docType, or to the
// generic placeholder when the type is unknown. It is defined for every
// string and every data bag, including nil.
func Generate(ctx Context, docType string, data format.Record) *doc.Document {
	if ctx.Now == nil {
		ctx.Now = time.Now
	}
	if err := ctx.Geometry.Validate(); err != nil {
		ctx.Geometry = doc.DefaultGeometry()
	}
	if gen, ok := generators[docType]; ok {
		return gen(ctx, data)
	}
	return placeholder(ctx, docType)
}

// Types lists the registered document types in stable order.
func Types() []string {
	return []string{
		TypeCertificatScolarite,
		TypeCertificatFrequentation,
		TypeFicheInscription,
		TypeAttestationPaiement,
		TypeListeEleves,
		TypeListeAppel,
		TypeCirculaire,
		TypeConvocation,
		TypeAvisImportant,
		TypeAvisPaiement,
	}
}

// Known reports whether docType has a dedicated generator.
func Known(docType string) bool {
	_, ok := generators[docType]
	return ok
}

// Title returns the display title for a document type: the fixed notice-family
// title when one exists, otherwise the key upper-cased with underscores turned
// into spaces.
func Title(docType string) string {
	if t, ok := noticeTitles[docType]; ok {
		return t
	}
	return strings.ToUpper(strings.ReplaceAll(docType, "_", " "))
}

// newPage opens a page in the context geometry for the given orientation,
// stamping the watermark first so content paints over it.
func (c Context) newPage(o doc.Orientation) *layout.Builder {
	b := layout.NewPage(c.Geometry.Oriented(o))
	if c.Watermark != "" {
		b.Watermark(c.Watermark)
	}
	return b
}

// generatedOn resolves the document date: the data bag's "date" field when it
// parses, otherwise the context clock. This is the one documented exception
// to full determinism of generation.
func (c Context) generatedOn(data format.Record) string {
	if s := format.Date(data["date"]); s != format.BlankDate {
		return s
	}
	return c.Now().Format("02/01/2006")
}

// school pulls the school record out of the data bag.
func school(data format.Record) format.Record {
	return format.AsRecord(data["school"])
}

// student pulls the student record out of the data bag.
func student(data format.Record) format.Record {
	return format.AsRecord(data["student"])
}

// schoolHeader writes the standard letterhead from the school record. A
// missing school name falls back to the generic "École".
func schoolHeader(b *layout.Builder, data format.Record) {
	s := school(data)
	name := format.Or(format.Str(s, "name"), "École")

	var parts []string
	for _, key := range []string{"address", "city", "country"} {
		if v := format.Str(s, key); v != "" {
			parts = append(parts, v)
		}
	}
	b.Header(name, strings.Join(parts, " - "))
}

// signatureLine writes the closing "Fait à ..., le ..." line at y.
func signatureLine(b *layout.Builder, data format.Record, date string) {
	city := format.Blank(format.Str(school(data), "city"))
	b.Line("Fait à "+city+", le "+date, 10)
}

// placeholder is the graceful-degradation document for unknown types.
func placeholder(ctx Context, docType string) *doc.Document {
	title := Title(docType)
	b := ctx.newPage(doc.Portrait)
	b.SetY(60)
	b.CenterLine(title, layout.SizeTitle, doc.FontBold, 20)
	b.CenterLine("Ce document est en cours de développement.", layout.SizeBody, doc.FontRegular, 8)
	return &doc.Document{Title: title, Pages: []*doc.Page{b.Page()}}
}
