package template

import (
	"fmt"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/layout"
	"github.com/edutrack/docgen/table"
)

// weekdays are the five fixed columns of the attendance grid, independent of
// the actual calendar week.
var weekdays = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}

// listeEleves renders the class roster: one numbered row per student, paged
// in portrait.
func listeEleves(ctx Context, data format.Record) *doc.Document {
	spec := layouts[TypeListeEleves]
	students := format.AsRecords(data["students"])

	b := ctx.newPage(spec.orientation)
	pages := []*doc.Page{b.Page()}

	rosterHeading(b, data, "LISTE DES ÉLÈVES")
	b.SetY(spec.startY)

	tbl := &table.Table{
		Columns: []table.Column{
			{Header: "N°", Width: 12, Align: doc.AlignCenter},
			{Header: "Matricule", Width: 30},
			{Header: "Nom et Prénom", Width: 75},
			{Header: "Date de naissance", Width: 33, Align: doc.AlignCenter},
			{Header: "Sexe", Width: 15, Align: doc.AlignCenter},
		},
		RowHeight:    spec.rowHeight,
		BottomMargin: spec.bottomMargin,
		HeaderFill:   0.9,
	}

	rows := make([][]table.Cell, len(students))
	for i, stu := range students {
		rows[i] = table.TextRow(
			fmt.Sprintf("%d", i+1),
			format.Matricule(stu),
			format.FullName(stu, format.BlankField),
			format.Date(format.BirthDate(stu)),
			format.Str(stu, "gender"),
		)
	}

	tbl.Render(b, rows, func() *layout.Builder {
		nb := ctx.newPage(spec.orientation)
		pages = append(pages, nb.Page())
		return nb
	})

	return &doc.Document{Title: "LISTE DES ÉLÈVES", Pages: pages}
}

// listeAppel renders the weekly attendance grid: landscape so the five
// weekday checkbox columns fit beside the name column.
func listeAppel(ctx Context, data format.Record) *doc.Document {
	spec := layouts[TypeListeAppel]
	students := format.AsRecords(data["students"])

	b := ctx.newPage(spec.orientation)
	pages := []*doc.Page{b.Page()}

	rosterHeading(b, data, "LISTE D'APPEL")
	b.SetY(spec.startY)

	cols := []table.Column{
		{Header: "N°", Width: 12, Align: doc.AlignCenter},
		{Header: "Nom et Prénom", Width: 80},
	}
	for _, day := range weekdays {
		cols = append(cols, table.Column{Header: day, Width: 30, Align: doc.AlignCenter})
	}

	tbl := &table.Table{
		Columns:      cols,
		RowHeight:    spec.rowHeight,
		BottomMargin: spec.bottomMargin,
		HeaderFill:   0.9,
	}

	rows := make([][]table.Cell, len(students))
	for i, stu := range students {
		row := []table.Cell{
			{Text: fmt.Sprintf("%d", i+1)},
			{Text: format.FullName(stu, format.BlankField)},
		}
		for range weekdays {
			row = append(row, table.Cell{Checkbox: true})
		}
		rows[i] = row
	}

	tbl.Render(b, rows, func() *layout.Builder {
		nb := ctx.newPage(spec.orientation)
		pages = append(pages, nb.Page())
		return nb
	})

	return &doc.Document{Title: "LISTE D'APPEL", Pages: pages}
}

// rosterHeading writes the letterhead plus the list title and class line.
func rosterHeading(b *layout.Builder, data format.Record, title string) {
	schoolHeader(b, data)
	b.CenterLine(title, layout.SizeTitle, doc.FontBold, 7)

	class := format.Blank(format.Str(data, "className"))
	year := format.Blank(format.Str(data, "academicYear"))
	b.CenterLine("Classe : "+class+" / Année scolaire "+year, layout.SizeHeader, doc.FontRegular, 8)
}
