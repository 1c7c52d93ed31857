package analysis

import "fmt"

// Dof identifies one of the three planar degrees of freedom of a node
type Dof int

// DOF order per node. Force vectors, restraint triples and element location
// arrays all follow it.
const (
	Ux     Dof = 0 // translation along x
	Uz     Dof = 1 // translation along z
	ThetaY Dof = 2 // rotation about the out-of-plane y axis
)

// DofsPerNode is the number of degrees of freedom carried by every node
const DofsPerNode = 3

// Restrained marks a DOF without an equation number
const Restrained = -1

func (d Dof) String() string {
	switch d {
	case Ux:
		return "ux"
	case Uz:
		return "uz"
	case ThetaY:
		return "ry"
	}
	return fmt.Sprintf("dof(%d)", int(d))
}

// RestraintFunc returns the restraint flags [Ux, Uz, ThetaY] of a node.
// true means the DOF is fixed.
type RestraintFunc func(node int) []bool

// DofMapper numbers the free degrees of freedom of a model. Equation numbers
// are contiguous in [0, FreeDofCount) and assigned node-major, DOF-minor.
// A DofMapper is immutable once built.
type DofMapper struct {
	nodeCount int
	eqs       []int // [nodeCount*DofsPerNode] equation number or Restrained
	nfree     int
}

// NewDofMapper builds the equation numbering for nodeCount nodes
func NewDofMapper(nodeCount int, restraints RestraintFunc) (*DofMapper, error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("node count must be positive, got %d: %w", nodeCount, ErrInvalidModelSize)
	}
	if restraints == nil {
		return nil, fmt.Errorf("restraint source is nil: %w", ErrMalformedRestraint)
	}

	o := &DofMapper{
		nodeCount: nodeCount,
		eqs:       make([]int, nodeCount*DofsPerNode),
	}

	eq := 0
	for node := 0; node < nodeCount; node++ {
		flags := restraints(node)
		if len(flags) != DofsPerNode {
			return nil, fmt.Errorf("restraints of node %d must have %d entries, got %d: %w",
				node, DofsPerNode, len(flags), ErrMalformedRestraint)
		}
		for dof := 0; dof < DofsPerNode; dof++ {
			k := node*DofsPerNode + dof
			if flags[dof] {
				o.eqs[k] = Restrained
				continue
			}
			o.eqs[k] = eq
			eq++
		}
	}
	o.nfree = eq
	return o, nil
}

// FreeDofCount returns the number of equations of the reduced system
func (o *DofMapper) FreeDofCount() int { return o.nfree }

// NodeCount returns the number of nodes the mapper was built for
func (o *DofMapper) NodeCount() int { return o.nodeCount }

// RestrainedCount returns the number of fixed DOFs
func (o *DofMapper) RestrainedCount() int { return o.nodeCount*DofsPerNode - o.nfree }

// GlobalIndex returns the equation number of (node, dof), or Restrained
func (o *DofMapper) GlobalIndex(node int, dof Dof) (int, error) {
	if err := o.checkNode(node); err != nil {
		return 0, err
	}
	if dof < 0 || int(dof) >= DofsPerNode {
		return 0, fmt.Errorf("dof %d outside [0,%d): %w", int(dof), DofsPerNode, ErrIndexOutOfRange)
	}
	return o.eqs[node*DofsPerNode+int(dof)], nil
}

// ElementDofIndices returns the location array of an element connecting
// nodeI and nodeJ: [i.Ux, i.Uz, i.ThetaY, j.Ux, j.Uz, j.ThetaY]
func (o *DofMapper) ElementDofIndices(nodeI, nodeJ int) (umap [6]int, err error) {
	if err = o.checkNode(nodeI); err != nil {
		return
	}
	if err = o.checkNode(nodeJ); err != nil {
		return
	}
	copy(umap[:3], o.eqs[nodeI*DofsPerNode:(nodeI+1)*DofsPerNode])
	copy(umap[3:], o.eqs[nodeJ*DofsPerNode:(nodeJ+1)*DofsPerNode])
	return
}

// Scatter builds a free-DOF force vector from nodal loads [Fx, Fz, My].
// Components acting on restrained DOFs are dropped.
func (o *DofMapper) Scatter(nodal func(node int) [3]float64) []float64 {
	f := make([]float64, o.nfree)
	if nodal == nil {
		return f
	}
	for node := 0; node < o.nodeCount; node++ {
		load := nodal(node)
		for dof := 0; dof < DofsPerNode; dof++ {
			if eq := o.eqs[node*DofsPerNode+dof]; eq >= 0 {
				f[eq] += load[dof]
			}
		}
	}
	return f
}

// Gather extracts the displacements [Ux, Uz, ThetaY] of node from a solution
// vector. Restrained components are zero.
func (o *DofMapper) Gather(x []float64, node int) (u [3]float64, err error) {
	if err = o.checkNode(node); err != nil {
		return
	}
	if len(x) != o.nfree {
		err = fmt.Errorf("solution has %d entries, free DOF count is %d: %w", len(x), o.nfree, ErrSizeMismatch)
		return
	}
	for dof := 0; dof < DofsPerNode; dof++ {
		if eq := o.eqs[node*DofsPerNode+dof]; eq >= 0 {
			u[dof] = x[eq]
		}
	}
	return
}

func (o *DofMapper) checkNode(node int) error {
	if node < 0 || node >= o.nodeCount {
		return fmt.Errorf("node %d outside [0,%d): %w", node, o.nodeCount, ErrIndexOutOfRange)
	}
	return nil
}
