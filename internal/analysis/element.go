package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Element is a two-node planar member that can be assembled by LinearStatic.
// Matrices follow the DOF order [Ux_i, Uz_i, ThetaY_i, Ux_j, Uz_j, ThetaY_j].
type Element interface {
	Nodes() (i, j int)
	LocalStiffness() *mat.Dense
	GlobalStiffness() *mat.Dense
	Transformation() *mat.Dense
}

// geometry holds the connectivity and orientation shared by line elements
type geometry struct {
	NodeI, NodeJ   int
	Xi, Zi, Xj, Zj float64

	// derived
	Length float64
	CosX   float64
	CosZ   float64
}

func newGeometry(nodeI, nodeJ int, xi, zi, xj, zj float64) (g geometry, err error) {
	if nodeI < 0 {
		return g, fmt.Errorf("node i = %d: %w", nodeI, ErrIndexOutOfRange)
	}
	if nodeJ < 0 {
		return g, fmt.Errorf("node j = %d: %w", nodeJ, ErrIndexOutOfRange)
	}
	dx, dz := xj-xi, zj-zi
	l := math.Sqrt(dx*dx + dz*dz)
	if !(l > 0) {
		return g, fmt.Errorf("element %d-%d has zero length: %w", nodeI, nodeJ, ErrDegenerateElement)
	}
	return geometry{
		NodeI: nodeI, NodeJ: nodeJ,
		Xi: xi, Zi: zi, Xj: xj, Zj: zj,
		Length: l,
		CosX:   dx / l,
		CosZ:   dz / l,
	}, nil
}

// Nodes returns the end node indices
func (o geometry) Nodes() (i, j int) { return o.NodeI, o.NodeJ }

// Transformation returns the local-to-global rotation T. The translations of
// each node are rotated by (CosX, CosZ); ThetaY is about the out-of-plane
// axis and passes through unchanged.
func (o geometry) Transformation() *mat.Dense {
	c, s := o.CosX, o.CosZ
	T := mat.NewDense(6, 6, nil)
	for _, m := range []int{0, 3} {
		T.Set(m, m, c)
		T.Set(m, m+1, -s)
		T.Set(m+1, m, s)
		T.Set(m+1, m+1, c)
		T.Set(m+2, m+2, 1)
	}
	return T
}

// rotate computes T·kl·Tᵗ
func (o geometry) rotate(kl *mat.Dense) *mat.Dense {
	T := o.Transformation()
	var K mat.Dense
	K.Product(T, kl, T.T())
	return &K
}

// FrameElement is an Euler-Bernoulli beam-column without shear deformation
type FrameElement struct {
	geometry
	EA float64 // axial rigidity
	EI float64 // bending rigidity
}

// NewFrameElement returns a frame element between nodeI at (xi,zi) and nodeJ at (xj,zj)
func NewFrameElement(nodeI, nodeJ int, xi, zi, xj, zj, ea, ei float64) (*FrameElement, error) {
	if !(ea > 0) {
		return nil, fmt.Errorf("EA must be positive, got %g: %w", ea, ErrInvalidProperty)
	}
	if !(ei > 0) {
		return nil, fmt.Errorf("EI must be positive, got %g: %w", ei, ErrInvalidProperty)
	}
	g, err := newGeometry(nodeI, nodeJ, xi, zi, xj, zj)
	if err != nil {
		return nil, err
	}
	return &FrameElement{geometry: g, EA: ea, EI: ei}, nil
}

// LocalStiffness returns the 6x6 stiffness in the element axes:
// [axial_i, transverse_i, rotation_i, axial_j, transverse_j, rotation_j]
func (o *FrameElement) LocalStiffness() *mat.Dense {
	l := o.Length
	ll := l * l
	m := o.EA / l
	a := 12 * o.EI / (ll * l)
	b := 6 * o.EI / ll
	c := 4 * o.EI / l
	d := 2 * o.EI / l
	return mat.NewDense(6, 6, []float64{
		m, 0, 0, -m, 0, 0,
		0, a, b, 0, -a, b,
		0, b, c, 0, -b, d,
		-m, 0, 0, m, 0, 0,
		0, -a, -b, 0, a, -b,
		0, b, d, 0, -b, c,
	})
}

// GlobalStiffness returns T·K_local·Tᵗ
func (o *FrameElement) GlobalStiffness() *mat.Dense {
	return o.rotate(o.LocalStiffness())
}

// TrussElement is a pin-ended axial bar. It has no rotational stiffness, so
// nodes connected only to trusses need ThetaY restrained.
type TrussElement struct {
	geometry
	EA float64
}

// NewTrussElement returns an axial bar between nodeI at (xi,zi) and nodeJ at (xj,zj)
func NewTrussElement(nodeI, nodeJ int, xi, zi, xj, zj, ea float64) (*TrussElement, error) {
	if !(ea > 0) {
		return nil, fmt.Errorf("EA must be positive, got %g: %w", ea, ErrInvalidProperty)
	}
	g, err := newGeometry(nodeI, nodeJ, xi, zi, xj, zj)
	if err != nil {
		return nil, err
	}
	return &TrussElement{geometry: g, EA: ea}, nil
}

// LocalStiffness returns the axial bar stiffness embedded in a 6x6 matrix
func (o *TrussElement) LocalStiffness() *mat.Dense {
	m := o.EA / o.Length
	K := mat.NewDense(6, 6, nil)
	K.Set(0, 0, m)
	K.Set(0, 3, -m)
	K.Set(3, 0, -m)
	K.Set(3, 3, m)
	return K
}

// GlobalStiffness returns T·K_local·Tᵗ
func (o *TrussElement) GlobalStiffness() *mat.Dense {
	return o.rotate(o.LocalStiffness())
}

// EndForces returns the local end forces [N_i, V_i, M_i, N_j, V_j, M_j] of e
// for the global end displacements u
func EndForces(e Element, u [6]float64) (f [6]float64) {
	ug := mat.NewVecDense(6, u[:])
	var ul, fl mat.VecDense
	ul.MulVec(e.Transformation().T(), ug)
	fl.MulVec(e.LocalStiffness(), &ul)
	for i := range f {
		f[i] = fl.AtVec(i)
	}
	return
}
