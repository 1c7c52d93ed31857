package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goframe/internal/model"
)

// Sheet names of the workbook
const (
	SheetDisplacements = "Displacements"
	SheetReactions     = "Reactions"
	SheetMemberForces  = "Member Forces"
)

// NewWorkbook tabulates results in three sheets, one row block per load case.
// The caller must Close the returned file.
func NewWorkbook(m *model.Model, results []*model.CaseResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetDisplacements); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetReactions, SheetMemberForces} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   func(r *model.CaseResult) [][]interface{}
	}{
		{
			SheetDisplacements,
			[]interface{}{"Case", "Node", "Ux", "Uz", "ThetaY"},
			func(r *model.CaseResult) (rows [][]interface{}) {
				for _, d := range r.Displacements {
					rows = append(rows, []interface{}{r.Case, nodeID(m, d.Node), d.Ux, d.Uz, d.ThetaY})
				}
				return
			},
		},
		{
			SheetReactions,
			[]interface{}{"Case", "Node", "Fx", "Fz", "My"},
			func(r *model.CaseResult) (rows [][]interface{}) {
				for _, re := range r.Reactions {
					rows = append(rows, []interface{}{r.Case, nodeID(m, re.Node), re.Fx, re.Fz, re.My})
				}
				return
			},
		},
		{
			SheetMemberForces,
			[]interface{}{"Case", "Member", "Node I", "Node J", "Ni", "Vi", "Mi", "Nj", "Vj", "Mj"},
			func(r *model.CaseResult) (rows [][]interface{}) {
				for _, mf := range r.MemberForces {
					rows = append(rows, []interface{}{
						r.Case, memberID(m, mf.Element), nodeID(m, mf.NodeI), nodeID(m, mf.NodeJ),
						mf.Ni, mf.Vi, mf.Mi, mf.Nj, mf.Vj, mf.Mj,
					})
				}
				return
			},
		},
	}

	for _, s := range sheets {
		if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
			f.Close()
			return nil, err
		}
		last, _ := excelize.CoordinatesToCellName(len(s.header), 1)
		if err := f.SetCellStyle(s.name, "A1", last, bold); err != nil {
			f.Close()
			return nil, err
		}

		row := 2
		for _, r := range results {
			for _, values := range s.rows(r) {
				cell, _ := excelize.CoordinatesToCellName(1, row)
				if err := f.SetSheetRow(s.name, cell, &values); err != nil {
					f.Close()
					return nil, err
				}
				row++
			}
		}
	}

	return f, nil
}

// WriteXLSX saves the results workbook to path
func WriteXLSX(path string, m *model.Model, results []*model.CaseResult) error {
	f, err := NewWorkbook(m, results)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func nodeID(m *model.Model, k int) string {
	if k >= 0 && k < len(m.Nodes) {
		return m.Nodes[k].ID
	}
	return ""
}

func memberID(m *model.Model, k int) string {
	if k >= 0 && k < len(m.Members) {
		return m.Members[k].ID
	}
	return ""
}
