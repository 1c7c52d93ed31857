package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/version"
)

// WritePDF writes a printable analysis report to w
func WritePDF(w io.Writer, m *model.Model, results []*model.CaseResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(m.Name, true)
	pdf.SetCreator("goframe "+version.Version, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, m.Name)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if m.Description != "" {
		pdf.MultiCell(0, 6, m.Description, "", "L", false)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Units: force %s, length %s", orDash(m.Units.Force), orDash(m.Units.Length)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Nodes: %d   Members: %d   Load cases: %d", len(m.Nodes), len(m.Members), len(m.LoadCases)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for _, r := range results {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Load case: %s", r.Case))
		pdf.Ln(10)

		rows := make([][]string, 0, len(r.Displacements))
		for _, d := range r.Displacements {
			rows = append(rows, []string{nodeID(m, d.Node), num(d.Ux), num(d.Uz), num(d.ThetaY)})
		}
		table(pdf, "Displacements", []string{"Node", "Ux", "Uz", "ThetaY"}, rows)

		rows = rows[:0]
		for _, re := range r.Reactions {
			rows = append(rows, []string{nodeID(m, re.Node), num(re.Fx), num(re.Fz), num(re.My)})
		}
		table(pdf, "Reactions", []string{"Node", "Fx", "Fz", "My"}, rows)

		rows = rows[:0]
		for _, mf := range r.MemberForces {
			rows = append(rows, []string{
				memberID(m, mf.Element), num(mf.Ni), num(mf.Vi), num(mf.Mi), num(mf.Nj), num(mf.Vj), num(mf.Mj),
			})
		}
		table(pdf, "Member end forces (local axes)", []string{"Member", "Ni", "Vi", "Mi", "Nj", "Vj", "Mj"}, rows)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// table draws a titled grid that spans the printable width
func table(pdf *gofpdf.Fpdf, title string, header []string, rows [][]string) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(header))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, title)
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range header {
		pdf.CellFormat(colW, 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for k, cell := range row {
			align := "R"
			if k == 0 {
				align = "L"
			}
			pdf.CellFormat(colW, 5, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
