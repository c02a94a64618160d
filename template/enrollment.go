package template

import (
	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
)

// ficheInscription is the enrollment form: student identity, parent/guardian
// details and schooling section, with signature boxes for the parent and the
// administration.
func ficheInscription(ctx Context, data format.Record) *doc.Document {
	stu := student(data)

	b := ctx.newPage(doc.Portrait)
	schoolHeader(b, data)

	b.SetY(50)
	b.CenterLine("FICHE D'INSCRIPTION", layout.SizeTitle, doc.FontBold, 6)
	b.CenterLine("Année scolaire "+format.Blank(format.Str(data, "academicYear")), layout.SizeSmall, doc.FontRegular, 14)

	const lh = 8.0
	g := b.Geometry()

	section(b, "ÉLÈVE")
	b.Line("Nom : "+format.Blank(format.Str(stu, "last_name")), lh)
	b.Line("Prénom : "+format.Blank(format.Str(stu, "first_name")), lh)
	birth := format.Date(format.BirthDate(stu))
	place := format.Blank(format.StrAny(stu, "place_of_birth", "birth_place"))
	b.Line("Né(e) le : "+birth+" à "+place, lh)
	b.Line("Sexe : "+format.Blank(format.Str(stu, "gender")), lh)
	b.Line("Nationalité : "+format.Blank(format.Str(stu, "nationality")), lh)
	b.Line("Adresse : "+format.Blank(format.Str(stu, "address")), lh+4)

	section(b, "PARENTS / TUTEUR")
	b.Line("Nom du père : "+format.Blank(format.Str(stu, "father_name")), lh)
	b.Line("Profession : "+format.Blank(format.Str(stu, "father_profession")), lh)
	b.Line("Nom de la mère : "+format.Blank(format.Str(stu, "mother_name")), lh)
	b.Line("Profession : "+format.Blank(format.Str(stu, "mother_profession")), lh)
	b.Line("Tuteur : "+format.Blank(format.StrAny(stu, "guardian_name", "parent_name")), lh+4)

	section(b, "SCOLARITÉ")
	b.Line("Classe : "+format.Blank(format.Str(stu, "class_name")), lh)
	b.Line("Matricule : "+format.Matricule(stu), lh+6)

	signatureLine(b, data, ctx.generatedOn(data))

	y := b.Y() + 4
	b.SignatureBox(g.Margin, y, 60, "Le Parent / Tuteur")
	b.SignatureBox(g.Width-g.Margin-60, y, 60, "L'Administration")

	return &doc.Document{Title: "FICHE D'INSCRIPTION", Pages: []*doc.Page{b.Page()}}
}

// section writes a shaded section heading bar and advances below it.
func section(b *layout.Builder, label string) {
	g := b.Geometry()
	y := b.Y()
	b.FillBox(g.Margin, y, g.Width-2*g.Margin, 7, 0.9)
	b.Text(g.Margin+2, y+5, label, layout.SizeHeader, doc.FontBold)
	b.Advance(11)
}
