package template

import (
	"strings"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
)

// attestationPaiement is the payment receipt. It carries a PDF417 block
// encoding the matricule, amount and payment date so the accounting office
// can verify a printed receipt against its records.
func attestationPaiement(ctx Context, data format.Record) *doc.Document {
	stu := student(data)

	b := ctx.newPage(doc.Portrait)
	schoolHeader(b, data)

	b.SetY(55)
	b.CenterLine("ATTESTATION DE PAIEMENT", layout.SizeTitle, doc.FontBold, 16)

	const lh = 9.0
	b.Line("Nous soussignés, attestons avoir reçu de :", lh+2)
	b.Line("Nom et prénom : "+format.FullName(stu, "Nom de l'élève"), lh)
	b.Line("Matricule : "+format.Matricule(stu), lh)
	b.Line("Classe : "+format.Blank(format.Str(stu, "class_name")), lh+3)

	amount := format.Blank(format.Str(data, "amount"))
	b.Line("La somme de : "+amount+" FCFA", lh)
	b.Line("Date du paiement : "+format.Date(data["paymentDate"]), lh)
	b.Line("Motif : frais de scolarité, année "+format.Blank(format.Str(data, "academicYear"))+".", lh+6)

	signatureLine(b, data, ctx.generatedOn(data))

	g := b.Geometry()
	b.SignatureBox(g.Width-g.Margin-60, b.Y()+4, 60, "Le Caissier")

	b.Barcode(g.Margin, g.Height-g.Margin-22, 60, 20, doc.BarcodePDF417, verificationPayload(stu, data))

	return &doc.Document{Title: "ATTESTATION DE PAIEMENT", Pages: []*doc.Page{b.Page()}}
}

// verificationPayload builds the machine-readable receipt summary.
func verificationPayload(stu, data format.Record) string {
	return strings.Join([]string{
		format.Matricule(stu),
		format.Str(data, "amount"),
		format.Date(data["paymentDate"]),
	}, "|")
}
