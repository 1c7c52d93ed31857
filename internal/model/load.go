package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
)

// LoadFromFile loads a frame model from a JSON file
func LoadFromFile(filepath string) (*Model, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a JSON model from r and validates it. Unknown fields are
// rejected so that misspelled keys do not silently fall back to defaults.
func Decode(r io.Reader) (*Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks if the model definition is valid
func (m *Model) Validate() error {
	if len(m.Nodes) == 0 {
		return &ValidationError{"model must have at least one node"}
	}

	materials := make(map[string]bool, len(m.Materials))
	for _, mat := range m.Materials {
		if mat.Name == "" {
			return &ValidationError{"material name is required"}
		}
		if materials[mat.Name] {
			return &ValidationError{fmt.Sprintf("duplicate material %q", mat.Name)}
		}
		materials[mat.Name] = true
		if _, err := mat.Modulus(); err != nil {
			return err
		}
	}

	sections := make(map[string]bool, len(m.Sections))
	for _, sec := range m.Sections {
		if sec.Name == "" {
			return &ValidationError{"section name is required"}
		}
		if sections[sec.Name] {
			return &ValidationError{fmt.Sprintf("duplicate section %q", sec.Name)}
		}
		sections[sec.Name] = true
		if _, _, err := sec.Properties(); err != nil {
			return err
		}
	}

	nodes := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.ID == "" {
			return &ValidationError{"node id is required"}
		}
		if nodes[n.ID] {
			return &ValidationError{fmt.Sprintf("duplicate node %q", n.ID)}
		}
		nodes[n.ID] = true
		if _, err := n.restraints(); err != nil {
			return err
		}
	}

	members := make(map[string]bool, len(m.Members))
	for _, mem := range m.Members {
		if mem.ID == "" {
			return &ValidationError{"member id is required"}
		}
		if members[mem.ID] {
			return &ValidationError{fmt.Sprintf("duplicate member %q", mem.ID)}
		}
		members[mem.ID] = true

		if !nodes[mem.I] {
			return &ValidationError{fmt.Sprintf("member %q: unknown node %q", mem.ID, mem.I)}
		}
		if !nodes[mem.J] {
			return &ValidationError{fmt.Sprintf("member %q: unknown node %q", mem.ID, mem.J)}
		}
		if mem.I == mem.J {
			return &ValidationError{fmt.Sprintf("member %q connects node %q to itself", mem.ID, mem.I)}
		}
		if !materials[mem.Material] {
			return &ValidationError{fmt.Sprintf("member %q: unknown material %q", mem.ID, mem.Material)}
		}
		if !sections[mem.Section] {
			return &ValidationError{fmt.Sprintf("member %q: unknown section %q", mem.ID, mem.Section)}
		}
		switch mem.Kind {
		case "", FrameMember:
			_, inertia, _ := m.section(mem.Section).Properties()
			if inertia <= 0 {
				return &ValidationError{fmt.Sprintf("member %q: frame members need a section with positive inertia", mem.ID)}
			}
		case TrussMember:
		default:
			return &ValidationError{fmt.Sprintf("member %q: unknown kind %q (valid: frame, truss)", mem.ID, mem.Kind)}
		}
	}

	for _, lc := range m.LoadCases {
		switch lc.Type {
		case "", Dead, Live, Roof, Wind, Seismic, Snow, Other:
		default:
			return &ValidationError{fmt.Sprintf("load case %q: unknown type %q", lc.Name, lc.Type)}
		}
		for _, load := range lc.NodalLoads {
			if !nodes[load.Node] {
				return &ValidationError{fmt.Sprintf("load case %q: unknown node %q", lc.Name, load.Node)}
			}
		}
	}

	return nil
}

// Modulus returns the elastic modulus of the material
func (mat Material) Modulus() (float64, error) {
	switch mat.Type {
	case Steel:
		if mat.E == 0 {
			return nscp.Es, nil
		}
	case Concrete:
		if mat.E == 0 {
			ec, err := nscp.Ec(mat.Fc)
			if mat.Wc != 0 {
				ec, err = nscp.EcWeighted(mat.Wc, mat.Fc)
			}
			if err != nil {
				return 0, &ValidationError{fmt.Sprintf("material %q: %v", mat.Name, err)}
			}
			return ec, nil
		}
	case Custom:
	default:
		return 0, &ValidationError{fmt.Sprintf("material %q: unknown type %q (valid: steel, concrete, custom)", mat.Name, mat.Type)}
	}
	if mat.E <= 0 {
		return 0, &ValidationError{fmt.Sprintf("material %q: E must be positive, got %g", mat.Name, mat.E)}
	}
	return mat.E, nil
}

// Properties returns the area and the in-plane moment of inertia
func (sec Section) Properties() (area, inertia float64, err error) {
	switch {
	case len(sec.Vertices) > 0:
		poly := &section.Section{Name: sec.Name}
		for _, v := range sec.Vertices {
			poly.Vertices = append(poly.Vertices, section.Point{X: v.X, Y: v.Y})
		}
		if err := poly.Validate(); err != nil {
			return 0, 0, &ValidationError{fmt.Sprintf("section %q: %v", sec.Name, err)}
		}
		props := poly.CalculateProperties()
		area, inertia = props.Area, props.Ixx
	case sec.Width != 0 || sec.Height != 0:
		if sec.Width <= 0 || sec.Height <= 0 {
			return 0, 0, &ValidationError{fmt.Sprintf("section %q: width and height must be positive", sec.Name)}
		}
		props := section.Rectangle(sec.Name, sec.Width, sec.Height).CalculateProperties()
		area, inertia = props.Area, props.Ixx
	default:
		area, inertia = sec.Area, sec.Inertia
	}

	if area <= 0 {
		return 0, 0, &ValidationError{fmt.Sprintf("section %q: area must be positive, got %g", sec.Name, area)}
	}
	if inertia < 0 {
		return 0, 0, &ValidationError{fmt.Sprintf("section %q: inertia must not be negative, got %g", sec.Name, inertia)}
	}
	return area, inertia, nil
}

// restraints returns the node's restraint flags in [Ux, Uz, ThetaY] order
func (n Node) restraints() ([]bool, error) {
	if n.Restraints != nil {
		if len(n.Restraints) != 3 {
			return nil, &ValidationError{fmt.Sprintf("node %q: restraints must have 3 entries [ux, uz, ry], got %d", n.ID, len(n.Restraints))}
		}
		return n.Restraints, nil
	}
	flags, ok := n.Support.Restraints()
	if !ok {
		return nil, &ValidationError{fmt.Sprintf("node %q: unknown support %q (valid: fixed, pinned, roller, free)", n.ID, n.Support)}
	}
	return flags, nil
}

func (m *Model) section(name string) Section {
	for _, s := range m.Sections {
		if s.Name == name {
			return s
		}
	}
	return Section{}
}

func (m *Model) material(name string) Material {
	for _, mat := range m.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return Material{}
}
