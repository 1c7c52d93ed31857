package model

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/analysis"
)

// Analysis is a model translated to the solver's numbering.
// Node and element indices are positions in Model.Nodes and Model.Members.
type Analysis struct {
	Model    *Model
	Mapper   *analysis.DofMapper
	Elements []analysis.Element

	solver *analysis.LinearStatic
	index  map[string]int
	loads  [][][3]float64 // [case][node] applied load
}

// CaseResult holds the recovered results of one load case
type CaseResult struct {
	Case string `json:"case"`
	analysis.Results
}

// Build numbers the DOFs and creates one element per member
func (m *Model) Build() (*Analysis, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	a := &Analysis{Model: m, index: make(map[string]int, len(m.Nodes))}
	restraints := make([][]bool, len(m.Nodes))
	for k, n := range m.Nodes {
		a.index[n.ID] = k
		restraints[k], _ = n.restraints()
	}

	mapper, err := analysis.NewDofMapper(len(m.Nodes), func(node int) []bool { return restraints[node] })
	if err != nil {
		return nil, err
	}
	a.Mapper = mapper

	a.Elements = make([]analysis.Element, 0, len(m.Members))
	for _, mem := range m.Members {
		elem, err := a.element(mem)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", mem.ID, err)
		}
		a.Elements = append(a.Elements, elem)
	}

	if a.solver, err = analysis.NewLinearStatic(a.Elements, a.Mapper); err != nil {
		return nil, err
	}

	a.loads = make([][][3]float64, len(m.LoadCases))
	for k, lc := range m.LoadCases {
		a.loads[k] = make([][3]float64, len(m.Nodes))
		for _, load := range lc.NodalLoads {
			p := a.loads[k][a.index[load.Node]]
			a.loads[k][a.index[load.Node]] = [3]float64{p[0] + load.Fx, p[1] + load.Fz, p[2] + load.My}
		}
	}
	return a, nil
}

func (a *Analysis) element(mem Member) (analysis.Element, error) {
	i, j := a.index[mem.I], a.index[mem.J]
	ni, nj := a.Model.Nodes[i], a.Model.Nodes[j]

	e, err := a.Model.material(mem.Material).Modulus()
	if err != nil {
		return nil, err
	}
	area, inertia, err := a.Model.section(mem.Section).Properties()
	if err != nil {
		return nil, err
	}

	if mem.Kind == TrussMember {
		return analysis.NewTrussElement(i, j, ni.X, ni.Z, nj.X, nj.Z, e*area)
	}
	return analysis.NewFrameElement(i, j, ni.X, ni.Z, nj.X, nj.Z, e*area, e*inertia)
}

// NodeIndex returns the analysis index of a node id
func (a *Analysis) NodeIndex(id string) (int, bool) {
	k, ok := a.index[id]
	return k, ok
}

// Run solves one load case
func (a *Analysis) Run(caseIndex int) (*CaseResult, error) {
	if caseIndex < 0 || caseIndex >= len(a.loads) {
		return nil, fmt.Errorf("load case %d does not exist (model has %d)", caseIndex, len(a.loads))
	}
	nodal := a.nodal(caseIndex)
	x, err := a.solver.Solve(a.Mapper.Scatter(nodal))
	if err != nil {
		return nil, fmt.Errorf("load case %q: %w", a.Model.LoadCases[caseIndex].Name, err)
	}
	return a.recover(caseIndex, x)
}

// RunAll solves every load case against a single factorization
func (a *Analysis) RunAll() ([]*CaseResult, error) {
	if len(a.loads) == 0 {
		return []*CaseResult{}, nil
	}
	forces := make([][]float64, len(a.loads))
	for k := range a.loads {
		forces[k] = a.Mapper.Scatter(a.nodal(k))
	}
	xs, err := a.solver.SolveCases(forces)
	if err != nil {
		return nil, err
	}
	results := make([]*CaseResult, len(xs))
	for k, x := range xs {
		if results[k], err = a.recover(k, x); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (a *Analysis) recover(k int, x []float64) (*CaseResult, error) {
	res, err := analysis.Recover(a.Elements, a.Mapper, x, a.nodal(k))
	if err != nil {
		return nil, err
	}
	return &CaseResult{Case: a.Model.LoadCases[k].Name, Results: *res}, nil
}

func (a *Analysis) nodal(k int) func(node int) [3]float64 {
	loads := a.loads[k]
	return func(node int) [3]float64 { return loads[node] }
}
