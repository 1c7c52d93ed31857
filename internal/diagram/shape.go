package diagram

import "math"

// Point represents a 2D coordinate in the frame plane (X horizontal, Y up)
type Point struct {
	X float64
	Y float64
}

// MemberLine connects nodes I and J of a ShapeData
type MemberLine struct {
	I, J  int
	Truss bool // drawn as a straight chord
}

// ShapeData holds what is needed to draw an undeformed and a deformed frame
type ShapeData struct {
	Title string

	Nodes         []Point   // undeformed positions
	Displacements []Point   // nodal translations, same order as Nodes
	Rotations     []float64 // nodal rotations, same order as Nodes
	Members       []MemberLine
	Supports      []int // indices of restrained nodes

	Scale float64 // exaggeration applied to displacements; 0 means AutoScale
}

// AutoScale returns a factor that makes the largest nodal translation one
// tenth of the frame's largest overall dimension
func AutoScale(data ShapeData) float64 {
	if len(data.Nodes) == 0 {
		return 1
	}

	minX, maxX := data.Nodes[0].X, data.Nodes[0].X
	minY, maxY := data.Nodes[0].Y, data.Nodes[0].Y
	for _, p := range data.Nodes {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)

	var dmax float64
	for _, d := range data.Displacements {
		dmax = math.Max(dmax, math.Hypot(d.X, d.Y))
	}

	if dmax == 0 || extent == 0 {
		return 1
	}
	return 0.1 * extent / dmax
}

// memberGeometry holds a member's end data resolved to local axes
type memberGeometry struct {
	xi, yi, l, c, s float64
	ui, vi, ri      float64
	uj, vj, rj      float64
}

func (data ShapeData) local(line MemberLine) memberGeometry {
	pi, pj := data.Nodes[line.I], data.Nodes[line.J]
	dx, dy := pj.X-pi.X, pj.Y-pi.Y
	l := math.Hypot(dx, dy)
	g := memberGeometry{xi: pi.X, yi: pi.Y, l: l}
	if l == 0 {
		return g
	}
	g.c, g.s = dx/l, dy/l

	var di, dj Point
	if line.I < len(data.Displacements) {
		di = data.Displacements[line.I]
	}
	if line.J < len(data.Displacements) {
		dj = data.Displacements[line.J]
	}
	g.ui, g.vi = g.c*di.X+g.s*di.Y, -g.s*di.X+g.c*di.Y
	g.uj, g.vj = g.c*dj.X+g.s*dj.Y, -g.s*dj.X+g.c*dj.Y
	if line.I < len(data.Rotations) {
		g.ri = data.Rotations[line.I]
	}
	if line.J < len(data.Rotations) {
		g.rj = data.Rotations[line.J]
	}
	return g
}

// at returns the local axial and transverse displacement at xi in [0,1]
func (g memberGeometry) at(xi float64, chord bool) (u, v float64) {
	u = (1-xi)*g.ui + xi*g.uj
	if chord {
		return u, (1-xi)*g.vi + xi*g.vj
	}
	xi2, xi3 := xi*xi, xi*xi*xi
	n1 := 1 - 3*xi2 + 2*xi3
	n2 := xi - 2*xi2 + xi3
	n3 := 3*xi2 - 2*xi3
	n4 := -xi2 + xi3
	v = n1*g.vi + n2*g.l*g.ri + n3*g.vj + n4*g.l*g.rj
	return u, v
}

// deformed returns the global position at xi with displacements scaled
func (g memberGeometry) deformed(xi, scale float64, chord bool) Point {
	u, v := g.at(xi, chord)
	return Point{
		X: g.xi + xi*g.l*g.c + scale*(u*g.c-v*g.s),
		Y: g.yi + xi*g.l*g.s + scale*(u*g.s+v*g.c),
	}
}
