package model

// Example returns a fixed-base steel portal frame with a gravity and a wind
// case, in N and mm
func Example() *Model {
	return &Model{
		Name:        "Portal frame",
		Description: "Single-bay fixed-base portal, 6 m span, 4 m height",
		Units:       Units{Force: "N", Length: "mm"},
		Materials: []Material{
			{Name: "A36", Type: Steel},
		},
		Sections: []Section{
			{Name: "W310x60", Area: 7590, Inertia: 128e6},
		},
		Nodes: []Node{
			{ID: "A", X: 0, Z: 0, Support: Fixed},
			{ID: "B", X: 0, Z: 4000},
			{ID: "C", X: 6000, Z: 4000},
			{ID: "D", X: 6000, Z: 0, Support: Fixed},
		},
		Members: []Member{
			{ID: "C1", I: "A", J: "B", Section: "W310x60", Material: "A36"},
			{ID: "B1", I: "B", J: "C", Section: "W310x60", Material: "A36"},
			{ID: "C2", I: "D", J: "C", Section: "W310x60", Material: "A36"},
		},
		LoadCases: []LoadCase{
			{Name: "Dead", Type: Dead, NodalLoads: []NodalLoad{
				{Node: "B", Fz: -50000},
				{Node: "C", Fz: -50000},
			}},
			{Name: "Wind", Type: Wind, NodalLoads: []NodalLoad{
				{Node: "B", Fx: 10000},
			}},
		},
	}
}
