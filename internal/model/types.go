package model

// Model is a planar frame loaded from a JSON file.
// Coordinates lie in the x-z plane with z pointing up.
type Model struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Units       Units  `json:"units"`

	Materials []Material `json:"materials"`
	Sections  []Section  `json:"sections"`
	Nodes     []Node     `json:"nodes"`
	Members   []Member   `json:"members"`
	LoadCases []LoadCase `json:"loadCases"`
}

// Units are labels only; the solver assumes a consistent set
type Units struct {
	Force  string `json:"force,omitempty"`
	Length string `json:"length,omitempty"`
}

// MaterialType selects how the elastic modulus is obtained
type MaterialType string

const (
	Steel    MaterialType = "steel"    // E defaults to nscp.Es
	Concrete MaterialType = "concrete" // E defaults to nscp.Ec(fc)
	Custom   MaterialType = "custom"   // E must be given
)

// Material carries the elastic modulus of a member
type Material struct {
	Name string       `json:"name"`
	Type MaterialType `json:"type"`
	E    float64      `json:"e,omitempty"`
	Fc   float64      `json:"fc,omitempty"` // concrete compressive strength f'c
	Wc   float64      `json:"wc,omitempty"` // concrete unit weight, kg/m³; normal weight when 0
}

// Section gives A and I either directly, as a polygon or as a rectangle.
// Vertices take precedence over Width/Height, which take precedence over
// Area/Inertia.
type Section struct {
	Name     string  `json:"name"`
	Area     float64 `json:"area,omitempty"`
	Inertia  float64 `json:"inertia,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Vertices []Point `json:"vertices,omitempty"`
}

// Point is a section vertex
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SupportType is a restraint preset
type SupportType string

const (
	Free   SupportType = "free"
	Fixed  SupportType = "fixed"
	Pinned SupportType = "pinned"
	Roller SupportType = "roller"
)

// Restraints returns the [Ux, Uz, ThetaY] flags of the preset
func (s SupportType) Restraints() ([]bool, bool) {
	switch s {
	case Free, "":
		return []bool{false, false, false}, true
	case Fixed:
		return []bool{true, true, true}, true
	case Pinned:
		return []bool{true, true, false}, true
	case Roller:
		return []bool{false, true, false}, true
	}
	return nil, false
}

// Node is a joint of the frame. Restraints, when present, override Support.
type Node struct {
	ID         string      `json:"id"`
	X          float64     `json:"x"`
	Z          float64     `json:"z"`
	Support    SupportType `json:"support,omitempty"`
	Restraints []bool      `json:"restraints,omitempty"`
}

// MemberKind selects the element formulation
type MemberKind string

const (
	FrameMember MemberKind = "frame"
	TrussMember MemberKind = "truss"
)

// Member connects nodes I and J
type Member struct {
	ID       string     `json:"id"`
	I        string     `json:"i"`
	J        string     `json:"j"`
	Section  string     `json:"section"`
	Material string     `json:"material"`
	Kind     MemberKind `json:"kind,omitempty"` // frame when empty
}

// LoadType classifies a load case
type LoadType string

const (
	Dead    LoadType = "dead"
	Live    LoadType = "live"
	Roof    LoadType = "roof"
	Wind    LoadType = "wind"
	Seismic LoadType = "seismic"
	Snow    LoadType = "snow"
	Other   LoadType = "other"
)

// LoadCase is one independent set of nodal loads
type LoadCase struct {
	Name       string      `json:"name"`
	Type       LoadType    `json:"type,omitempty"`
	NodalLoads []NodalLoad `json:"nodalLoads"`
}

// NodalLoad is a force and moment applied at a node, in global axes
type NodalLoad struct {
	Node string  `json:"node"`
	Fx   float64 `json:"fx,omitempty"`
	Fz   float64 `json:"fz,omitempty"`
	My   float64 `json:"my,omitempty"`
}

// ValidationError represents a model validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
