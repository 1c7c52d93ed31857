package analysis

import "fmt"

// NodeDisplacement holds the displacements of one node in global axes
type NodeDisplacement struct {
	Node   int     `json:"node"`
	Ux     float64 `json:"ux"`
	Uz     float64 `json:"uz"`
	ThetaY float64 `json:"theta_y"`
}

// Reaction holds the support reaction of a node with at least one restrained DOF.
// Components on free DOFs are zero.
type Reaction struct {
	Node int     `json:"node"`
	Fx   float64 `json:"fx"`
	Fz   float64 `json:"fz"`
	My   float64 `json:"my"`
}

// MemberForces holds the end forces of an element in its local axes
type MemberForces struct {
	Element int     `json:"element"`
	NodeI   int     `json:"node_i"`
	NodeJ   int     `json:"node_j"`
	Ni      float64 `json:"n_i"`
	Vi      float64 `json:"v_i"`
	Mi      float64 `json:"m_i"`
	Nj      float64 `json:"n_j"`
	Vj      float64 `json:"v_j"`
	Mj      float64 `json:"m_j"`
}

// Results collects the recovered quantities of one solve
type Results struct {
	Displacements []NodeDisplacement `json:"displacements"`
	Reactions     []Reaction         `json:"reactions"`
	MemberForces  []MemberForces     `json:"member_forces"`
}

// Recover expands the free-DOF solution x into node displacements, support
// reactions and member end forces. nodal gives the applied loads [Fx, Fz, My]
// of each node and may be nil.
func Recover(elements []Element, mapper *DofMapper, x []float64, nodal func(node int) [3]float64) (*Results, error) {
	if mapper == nil {
		return nil, fmt.Errorf("dof mapper: %w", ErrNilArgument)
	}
	if len(x) != mapper.FreeDofCount() {
		return nil, fmt.Errorf("solution has %d entries, free DOF count is %d: %w", len(x), mapper.FreeDofCount(), ErrSizeMismatch)
	}

	nn := mapper.NodeCount()
	res := &Results{
		Displacements: make([]NodeDisplacement, nn),
		MemberForces:  make([]MemberForces, len(elements)),
	}
	for node := 0; node < nn; node++ {
		u, err := mapper.Gather(x, node)
		if err != nil {
			return nil, err
		}
		res.Displacements[node] = NodeDisplacement{Node: node, Ux: u[0], Uz: u[1], ThetaY: u[2]}
	}

	// internal forces acting on the nodes, global axes
	internal := make([][3]float64, nn)
	for e, elem := range elements {
		i, j := elem.Nodes()
		ui, err := mapper.Gather(x, i)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", e, err)
		}
		uj, err := mapper.Gather(x, j)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", e, err)
		}
		var ue [6]float64
		copy(ue[:3], ui[:])
		copy(ue[3:], uj[:])

		K := elem.GlobalStiffness()
		for r := 0; r < 6; r++ {
			var s float64
			for c := 0; c < 6; c++ {
				s += K.At(r, c) * ue[c]
			}
			if r < 3 {
				internal[i][r] += s
			} else {
				internal[j][r-3] += s
			}
		}

		f := EndForces(elem, ue)
		res.MemberForces[e] = MemberForces{
			Element: e, NodeI: i, NodeJ: j,
			Ni: f[0], Vi: f[1], Mi: f[2],
			Nj: f[3], Vj: f[4], Mj: f[5],
		}
	}

	for node := 0; node < nn; node++ {
		var applied [3]float64
		if nodal != nil {
			applied = nodal(node)
		}
		var r [3]float64
		fixed := false
		for dof := 0; dof < DofsPerNode; dof++ {
			eq, _ := mapper.GlobalIndex(node, Dof(dof))
			if eq == Restrained {
				fixed = true
				r[dof] = internal[node][dof] - applied[dof]
			}
		}
		if fixed {
			res.Reactions = append(res.Reactions, Reaction{Node: node, Fx: r[0], Fz: r[1], My: r[2]})
		}
	}
	return res, nil
}
