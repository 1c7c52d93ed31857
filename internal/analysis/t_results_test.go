package analysis

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_recover01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recover01. cantilever reactions and end forces")

	sol := cantilever(tst)
	m := sol.Mapper()
	loads := [][3]float64{{0, 0, 0}, {0, -100, 0}}
	nodal := func(node int) [3]float64 { return loads[node] }
	x, err := sol.Solve(m.Scatter(nodal))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	res, err := Recover(sol.elements, m, x, nodal)
	if err != nil {
		tst.Errorf("Recover failed:\n%v", err)
		return
	}
	io.Pforan("res = %+v\n", res)

	chk.Int(tst, "len(displacements)", len(res.Displacements), 2)
	chk.Float64(tst, "u0", 1e-15, res.Displacements[0].Uz, 0)
	chk.Float64(tst, "u1", 1e-15, res.Displacements[1].Uz, x[1])

	chk.Int(tst, "len(reactions)", len(res.Reactions), 1)
	r := res.Reactions[0]
	chk.Int(tst, "reaction node", r.Node, 0)
	chk.Float64(tst, "Fx", 1e-9, r.Fx, 0)
	chk.Float64(tst, "Fz", 1e-9, r.Fz, 100)
	chk.Float64(tst, "My", 1e-8, r.My, 1000)

	f := res.MemberForces[0]
	chk.Float64(tst, "Vi", 1e-9, f.Vi, 100)
	chk.Float64(tst, "Mi", 1e-8, f.Mi, 1000)
	chk.Float64(tst, "Vj", 1e-9, f.Vj, -100)
	chk.Float64(tst, "Mj", 1e-8, f.Mj, 0)
}

func Test_recover02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recover02. global equilibrium of a portal frame")

	coords := [][2]float64{{0, 0}, {0, 4}, {6, 4}, {6, 0}}
	m, _ := NewDofMapper(4, restraintsOf(fixed, free, free, []bool{true, true, false}))
	var elems []Element
	for _, c := range [][2]int{{0, 1}, {1, 2}, {3, 2}} {
		a, b := coords[c[0]], coords[c[1]]
		e, _ := NewFrameElement(c[0], c[1], a[0], a[1], b[0], b[1], 2e6, 4e4)
		elems = append(elems, e)
	}
	loads := [][3]float64{{0, 0, 0}, {12, -30, 0}, {0, -50, 8}, {0, 0, 0}}
	nodal := func(node int) [3]float64 { return loads[node] }

	sol, _ := NewLinearStatic(elems, m)
	x, err := sol.Solve(m.Scatter(nodal))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	res, err := Recover(elems, m, x, nodal)
	if err != nil {
		tst.Errorf("Recover failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(reactions)", len(res.Reactions), 2)

	// ΣFx = ΣFz = 0 and ΣM about the origin = 0
	var sx, sz, sm float64
	for n, l := range loads {
		sx += l[0]
		sz += l[1]
		sm += l[2] + coords[n][0]*l[1] - coords[n][1]*l[0]
	}
	for _, r := range res.Reactions {
		sx += r.Fx
		sz += r.Fz
		sm += r.My + coords[r.Node][0]*r.Fz - coords[r.Node][1]*r.Fx
	}
	chk.Float64(tst, "ΣFx", 1e-8, sx, 0)
	chk.Float64(tst, "ΣFz", 1e-8, sz, 0)
	chk.Float64(tst, "ΣM", 1e-7, sm, 0)

	// pinned base carries no moment
	chk.Float64(tst, "My(3)", 1e-15, res.Reactions[1].My, 0)
}

func Test_recover03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("recover03. argument errors")

	sol := cantilever(tst)
	if _, err := Recover(sol.elements, sol.Mapper(), []float64{1}, nil); !errors.Is(err, ErrSizeMismatch) {
		tst.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if _, err := Recover(sol.elements, nil, nil, nil); !errors.Is(err, ErrNilArgument) {
		tst.Errorf("expected ErrNilArgument, got %v", err)
	}
}
