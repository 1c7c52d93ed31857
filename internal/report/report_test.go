package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goframe/internal/model"
)

func exampleResults(tst *testing.T) (*model.Model, []*model.CaseResult) {
	m := model.Example()
	a, err := m.Build()
	if err != nil {
		tst.Fatalf("Build failed:\n%v", err)
	}
	results, err := a.RunAll()
	if err != nil {
		tst.Fatalf("RunAll failed:\n%v", err)
	}
	return m, results
}

func Test_xlsx01(tst *testing.T) {

	chk.PrintTitle("xlsx01. workbook sheets and rows")

	m, results := exampleResults(tst)
	path := filepath.Join(tst.TempDir(), "out.xlsx")
	if err := WriteXLSX(path, m, results); err != nil {
		tst.Errorf("WriteXLSX failed:\n%v", err)
		return
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Errorf("OpenFile failed:\n%v", err)
		return
	}
	defer f.Close()

	chk.Strings(tst, "sheets", f.GetSheetList(), []string{SheetDisplacements, SheetReactions, SheetMemberForces})

	rows, err := f.GetRows(SheetDisplacements)
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	chk.Int(tst, "displacement rows", len(rows), 1+len(results)*len(m.Nodes))
	chk.Strings(tst, "header", rows[0], []string{"Case", "Node", "Ux", "Uz", "ThetaY"})
	chk.String(tst, rows[1][0], "Dead")
	chk.String(tst, rows[1][1], "A")

	rows, _ = f.GetRows(SheetReactions)
	chk.Int(tst, "reaction rows", len(rows), 1+len(results)*2)

	rows, _ = f.GetRows(SheetMemberForces)
	chk.Int(tst, "member rows", len(rows), 1+len(results)*len(m.Members))
	chk.String(tst, rows[2][1], "B1")
}

func Test_pdf01(tst *testing.T) {

	chk.PrintTitle("pdf01. report document")

	m, results := exampleResults(tst)
	var buf bytes.Buffer
	if err := WritePDF(&buf, m, results); err != nil {
		tst.Errorf("WritePDF failed:\n%v", err)
		return
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		tst.Errorf("output is not a PDF document")
	}
}
