package model

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// sums returns the totals of applied loads and reactions of one case,
// with moments taken about the origin
func sums(m *Model, r *CaseResult, k int) (applied, reacted [3]float64) {
	pos := make(map[string]int)
	for i, n := range m.Nodes {
		pos[n.ID] = i
	}
	for _, l := range m.LoadCases[k].NodalLoads {
		n := m.Nodes[pos[l.Node]]
		applied[0] += l.Fx
		applied[1] += l.Fz
		applied[2] += l.My + n.X*l.Fz - n.Z*l.Fx
	}
	for _, re := range r.Reactions {
		n := m.Nodes[re.Node]
		reacted[0] += re.Fx
		reacted[1] += re.Fz
		reacted[2] += re.My + n.X*re.Fz - n.Z*re.Fx
	}
	return
}
