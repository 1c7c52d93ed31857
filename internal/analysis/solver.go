package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PivotTolerance is the smallest pivot magnitude accepted by the factorization
const PivotTolerance = 1e-12

// LinearStatic assembles and solves K·x = F over the free DOFs of a mapper.
// It keeps no mutable state; every Solve allocates its own K, F and x, so
// concurrent calls are safe.
type LinearStatic struct {
	elements []Element
	mapper   *DofMapper
}

// NewLinearStatic returns a solver for the given elements and numbering
func NewLinearStatic(elements []Element, mapper *DofMapper) (*LinearStatic, error) {
	if elements == nil {
		return nil, fmt.Errorf("elements: %w", ErrNilArgument)
	}
	if mapper == nil {
		return nil, fmt.Errorf("dof mapper: %w", ErrNilArgument)
	}
	return &LinearStatic{elements: elements, mapper: mapper}, nil
}

// Mapper returns the equation numbering used by the solver
func (o *LinearStatic) Mapper() *DofMapper { return o.mapper }

// locate returns the location array of every element
func (o *LinearStatic) locate() ([][6]int, error) {
	umaps := make([][6]int, len(o.elements))
	for e, elem := range o.elements {
		i, j := elem.Nodes()
		umap, err := o.mapper.ElementDofIndices(i, j)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", e, err)
		}
		umaps[e] = umap
	}
	return umaps, nil
}

// Assemble returns the reduced global stiffness matrix. Element terms touching
// a restrained DOF are dropped, which condenses the system directly.
// A model without free DOFs has no matrix and yields ErrInvalidModelSize.
func (o *LinearStatic) Assemble() (*mat.SymDense, error) {
	umaps, err := o.locate()
	if err != nil {
		return nil, err
	}
	n := o.mapper.FreeDofCount()
	if n == 0 {
		return nil, fmt.Errorf("model has no free DOFs: %w", ErrInvalidModelSize)
	}
	K := mat.NewSymDense(n, nil)
	for e, elem := range o.elements {
		umap := umaps[e]
		ke := elem.GlobalStiffness()
		for r, I := range umap {
			if I < 0 {
				continue
			}
			for c, J := range umap {
				// upper triangle only; SetSym mirrors it
				if J < I {
					continue
				}
				K.SetSym(I, J, K.At(I, J)+ke.At(r, c))
			}
		}
	}
	return K, nil
}

// Solve returns the free-DOF displacements for the force vector f, in the
// mapper's equation order
func (o *LinearStatic) Solve(f []float64) ([]float64, error) {
	n := o.mapper.FreeDofCount()
	if len(f) != n {
		return nil, fmt.Errorf("force vector has %d entries, free DOF count is %d: %w", len(f), n, ErrSizeMismatch)
	}
	if n == 0 {
		// fully restrained: nothing moves
		if _, err := o.locate(); err != nil {
			return nil, err
		}
		return []float64{}, nil
	}
	K, err := o.Assemble()
	if err != nil {
		return nil, err
	}
	fac, err := factorize(K)
	if err != nil {
		return nil, err
	}
	return fac.solve(f), nil
}

// SolveCases solves several independent load vectors against one
// factorization of K
func (o *LinearStatic) SolveCases(cases [][]float64) ([][]float64, error) {
	n := o.mapper.FreeDofCount()
	for k, f := range cases {
		if len(f) != n {
			return nil, fmt.Errorf("case %d: force vector has %d entries, free DOF count is %d: %w", k, len(f), n, ErrSizeMismatch)
		}
	}
	if n == 0 {
		if _, err := o.locate(); err != nil {
			return nil, err
		}
		xs := make([][]float64, len(cases))
		for k := range xs {
			xs[k] = []float64{}
		}
		return xs, nil
	}
	K, err := o.Assemble()
	if err != nil {
		return nil, err
	}
	fac, err := factorize(K)
	if err != nil {
		return nil, err
	}
	xs := make([][]float64, len(cases))
	for k, f := range cases {
		xs[k] = fac.solve(f)
	}
	return xs, nil
}

// ldl holds K = L·D·Lᵗ with unit lower triangular L.
//
// No pivoting is done. For a symmetric matrix the pivots d are exactly those
// of plain Gaussian elimination on the diagonal, so the same models are
// reported singular.
type ldl struct {
	n int
	l *mat.TriDense
	d []float64
}

func factorize(K *mat.SymDense) (*ldl, error) {
	n := K.SymmetricDim()
	o := &ldl{n: n, l: mat.NewTriDense(n, mat.Lower, nil), d: make([]float64, n)}
	w := make([]float64, n) // w[k] = L[j][k]·d[k] for the current column j
	for j := 0; j < n; j++ {
		djj := K.At(j, j)
		for k := 0; k < j; k++ {
			ljk := o.l.At(j, k)
			w[k] = ljk * o.d[k]
			djj -= ljk * w[k]
		}
		if math.Abs(djj) < PivotTolerance || math.IsNaN(djj) {
			return nil, fmt.Errorf("pivot %g at equation %d: %w", djj, j, ErrSingularMatrix)
		}
		o.d[j] = djj
		o.l.SetTri(j, j, 1)
		for i := j + 1; i < n; i++ {
			s := K.At(i, j)
			for k := 0; k < j; k++ {
				s -= o.l.At(i, k) * w[k]
			}
			o.l.SetTri(i, j, s/djj)
		}
	}
	return o, nil
}

// solve returns x for L·D·Lᵗ·x = b without modifying b
func (o *ldl) solve(b []float64) []float64 {
	x := make([]float64, o.n)
	copy(x, b)
	for i := 0; i < o.n; i++ {
		for k := 0; k < i; k++ {
			x[i] -= o.l.At(i, k) * x[k]
		}
	}
	for i := 0; i < o.n; i++ {
		x[i] /= o.d[i]
	}
	for i := o.n - 1; i >= 0; i-- {
		for k := i + 1; k < o.n; k++ {
			x[i] -= o.l.At(k, i) * x[k]
		}
	}
	return x
}
