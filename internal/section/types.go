package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// Section represents a cross-section defined by the vertices of a polygon
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending in the frame plane is about the X-axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section geometry defined by vertices
	// Vertices may be listed in either direction; the section is assumed to
	// be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width
	Height float64 // Total height
	Area   float64 // Gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moments of area about the centroidal axes
	Ixx float64 // Σ y²·dA, governs in-plane bending of a frame member
	Iyy float64 // Σ x²·dA
	Ixy float64 // product of inertia

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Rectangle returns a solid b x h section with its corner at the origin
func Rectangle(name string, b, h float64) *Section {
	return &Section{
		Name: name,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area <= 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q has zero area", s.Name)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
