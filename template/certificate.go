package template

import (
	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
)

// certificatScolarite attests that a student is enrolled for the academic
// year. Single portrait page with a Code 128 matricule strip when the student
// carries a matriculation number.
func certificatScolarite(ctx Context, data format.Record) *doc.Document {
	return certificate(ctx, data,
		"CERTIFICAT DE SCOLARITÉ",
		"est régulièrement inscrit(e) dans notre établissement pour",
	)
}

// certificatFrequentation attests that a student actually attends class.
func certificatFrequentation(ctx Context, data format.Record) *doc.Document {
	return certificate(ctx, data,
		"CERTIFICAT DE FRÉQUENTATION",
		"fréquente régulièrement notre établissement pour",
	)
}

func certificate(ctx Context, data format.Record, title, attestation string) *doc.Document {
	stu := student(data)
	sch := school(data)

	b := ctx.newPage(doc.Portrait)
	schoolHeader(b, data)

	b.SetY(55)
	b.CenterLine(title, layout.SizeTitle, doc.FontBold, 6)
	b.CenterLine("Année scolaire "+format.Blank(format.Str(data, "academicYear")), layout.SizeSmall, doc.FontRegular, 16)

	const lh = 9.0
	schoolName := format.Or(format.Str(sch, "name"), "École")
	b.Line("Le Directeur de l'établissement "+schoolName+" soussigné,", lh)
	b.Line("certifie que :", lh+3)

	b.Line("Nom et prénom : "+format.FullName(stu, "Nom de l'élève"), lh)
	birth := format.Date(format.BirthDate(stu))
	place := format.Blank(format.StrAny(stu, "place_of_birth", "birth_place"))
	b.Line("Né(e) le : "+birth+" à "+place, lh)
	b.Line("Matricule : "+format.Matricule(stu), lh)
	b.Line("Classe : "+format.Blank(format.Str(stu, "class_name")), lh+3)

	b.Line(attestation, lh)
	b.Line("l'année scolaire "+format.Blank(format.Str(data, "academicYear"))+".", lh)
	b.Line("En foi de quoi, le présent certificat lui est délivré pour servir", lh)
	b.Line("et valoir ce que de droit.", lh+6)

	signatureLine(b, data, ctx.generatedOn(data))

	g := b.Geometry()
	b.SignatureBox(g.Width-g.Margin-60, b.Y()+4, 60, "Le Directeur")

	if m := format.Str(stu, "matricule"); m != "" {
		b.Barcode(g.Margin, g.Height-g.Margin-12, 50, 10, doc.BarcodeCode128, m)
	}

	return &doc.Document{Title: title, Pages: []*doc.Page{b.Page()}}
}
