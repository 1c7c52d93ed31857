package analysis

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dofmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap01. node-major numbering")

	m, err := NewDofMapper(3, restraintsOf(
		[]bool{true, true, false},
		free,
		[]bool{false, true, true},
	))
	if err != nil {
		tst.Errorf("NewDofMapper failed:\n%v", err)
		return
	}
	chk.Int(tst, "nfree", m.FreeDofCount(), 5)
	chk.Int(tst, "nfixed", m.RestrainedCount(), 4)
	chk.Ints(tst, "eqs", m.eqs, []int{-1, -1, 0, 1, 2, 3, 4, -1, -1})

	umap, err := m.ElementDofIndices(0, 2)
	if err != nil {
		tst.Errorf("ElementDofIndices failed:\n%v", err)
		return
	}
	chk.Ints(tst, "umap 0-2", umap[:], []int{-1, -1, 0, 4, -1, -1})

	umap, _ = m.ElementDofIndices(2, 1)
	chk.Ints(tst, "umap 2-1", umap[:], []int{4, -1, -1, 1, 2, 3})

	eq, _ := m.GlobalIndex(1, ThetaY)
	chk.Int(tst, "eq(1,ry)", eq, 3)
}

func Test_dofmap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap02. free count and location arrays for random restraints")

	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		nn := 1 + rnd.Intn(20)
		table := make([][]bool, nn)
		nfixed := 0
		for i := range table {
			table[i] = make([]bool, 3)
			for k := range table[i] {
				table[i][k] = rnd.Intn(2) == 1
				if table[i][k] {
					nfixed++
				}
			}
		}
		m, err := NewDofMapper(nn, restraintsOf(table...))
		if err != nil {
			tst.Errorf("NewDofMapper failed:\n%v", err)
			return
		}
		chk.Int(tst, "nfree", m.FreeDofCount(), 3*nn-nfixed)

		// contiguous equation numbers
		next := 0
		for _, eq := range m.eqs {
			if eq >= 0 {
				chk.Int(tst, "eq", eq, next)
				next++
			}
		}

		i, j := rnd.Intn(nn), rnd.Intn(nn)
		umap, err := m.ElementDofIndices(i, j)
		if err != nil {
			tst.Errorf("ElementDofIndices failed:\n%v", err)
			return
		}
		for k := 0; k < 6; k++ {
			node := i
			if k >= 3 {
				node = j
			}
			eq, _ := m.GlobalIndex(node, Dof(k%3))
			chk.Int(tst, "umap[k]", umap[k], eq)
		}
	}
}

func Test_dofmap03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap03. construction and range errors")

	_, err := NewDofMapper(0, restraintsOf())
	if !errors.Is(err, ErrInvalidModelSize) {
		tst.Errorf("zero nodes: expected ErrInvalidModelSize, got %v", err)
	}

	_, err = NewDofMapper(2, nil)
	if !errors.Is(err, ErrMalformedRestraint) {
		tst.Errorf("nil source: expected ErrMalformedRestraint, got %v", err)
	}

	_, err = NewDofMapper(2, restraintsOf(fixed, []bool{true, false}))
	if !errors.Is(err, ErrMalformedRestraint) {
		tst.Errorf("short triple: expected ErrMalformedRestraint, got %v", err)
	}

	_, err = NewDofMapper(1, func(int) []bool { return nil })
	if !errors.Is(err, ErrMalformedRestraint) {
		tst.Errorf("nil triple: expected ErrMalformedRestraint, got %v", err)
	}

	m, _ := NewDofMapper(2, restraintsOf(fixed, free))
	for _, c := range []struct {
		node int
		dof  Dof
	}{{-1, Ux}, {2, Ux}, {0, -1}, {0, 3}} {
		if _, err := m.GlobalIndex(c.node, c.dof); !errors.Is(err, ErrIndexOutOfRange) {
			tst.Errorf("GlobalIndex(%d,%d): expected ErrIndexOutOfRange, got %v", c.node, c.dof, err)
		}
	}
	if _, err := m.ElementDofIndices(0, 2); !errors.Is(err, ErrIndexOutOfRange) {
		tst.Errorf("ElementDofIndices(0,2): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.ElementDofIndices(-1, 1); !errors.Is(err, ErrIndexOutOfRange) {
		tst.Errorf("ElementDofIndices(-1,1): expected ErrIndexOutOfRange, got %v", err)
	}
}

func Test_dofmap04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap04. scatter and gather")

	m, _ := NewDofMapper(3, restraintsOf(fixed, free, []bool{false, true, false}))
	loads := [][3]float64{{1, 2, 3}, {10, -20, 30}, {5, 6, 7}}
	f := m.Scatter(func(node int) [3]float64 { return loads[node] })
	chk.Array(tst, "f", 1e-15, f, []float64{10, -20, 30, 5, 7})

	x := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	u0, _ := m.Gather(x, 0)
	u1, _ := m.Gather(x, 1)
	u2, _ := m.Gather(x, 2)
	chk.Array(tst, "u0", 1e-15, u0[:], []float64{0, 0, 0})
	chk.Array(tst, "u1", 1e-15, u1[:], []float64{0.1, 0.2, 0.3})
	chk.Array(tst, "u2", 1e-15, u2[:], []float64{0.4, 0, 0.5})

	if _, err := m.Gather(x, 3); !errors.Is(err, ErrIndexOutOfRange) {
		tst.Errorf("Gather(x,3): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Gather(x, -1); !errors.Is(err, ErrIndexOutOfRange) {
		tst.Errorf("Gather(x,-1): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Gather(x[:4], 1); !errors.Is(err, ErrSizeMismatch) {
		tst.Errorf("Gather(short x): expected ErrSizeMismatch, got %v", err)
	}

	chk.Array(tst, "nil loads", 1e-15, m.Scatter(nil), make([]float64, 5))
}
