package template

import (
	"strings"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
)

// notice builds the shared generator for the circular/notice family
// (circulaire, convocation, avis_important, avis_paiement). The family shares
// one layout and differs only in its fixed title; the data bag may override
// the title and supplies the body content.
func notice(docType string) generator {
	return func(ctx Context, data format.Record) *doc.Document {
		title := format.Or(format.Str(data, "title"), Title(docType))

		b := ctx.newPage(doc.Portrait)
		schoolHeader(b, data)

		b.SetY(55)
		b.CenterLine(title, layout.SizeTitle, doc.FontBold, 14)

		b.Line("Le "+ctx.generatedOn(data), 12)

		content := format.Str(data, "content")
		if content == "" {
			content = "Contenu à compléter."
		}
		for _, line := range strings.Split(content, "\n") {
			b.Line(line, 7)
		}
		b.Advance(10)

		g := b.Geometry()
		b.SignatureBox(g.Width-g.Margin-60, b.Y(), 60, "L'Administration")

		return &doc.Document{Title: title, Pages: []*doc.Page{b.Page()}}
	}
}
