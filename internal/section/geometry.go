package section

import (
	"math"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Transfer the origin moments to the centroid (parallel axis theorem)
	ixx, iyy, ixy := s.calculateSecondMoments()
	props.Ixx = ixx - props.Area*props.CentroidY*props.CentroidY
	props.Iyy = iyy - props.Area*props.CentroidX*props.CentroidX
	props.Ixy = ixy - props.Area*props.CentroidX*props.CentroidY

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateSecondMoments returns the second moments about the origin axes.
// Clockwise vertex order yields negative sums, so the sign is normalized.
func (s *Section) calculateSecondMoments() (ixx, iyy, ixy float64) {
	n := len(s.Vertices)
	var signedArea float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := s.Vertices[i].X, s.Vertices[i].Y
		xj, yj := s.Vertices[j].X, s.Vertices[j].Y
		cross := xi*yj - xj*yi
		signedArea += cross
		ixx += cross * (yi*yi + yi*yj + yj*yj)
		iyy += cross * (xi*xi + xi*xj + xj*xj)
		ixy += cross * (xi*yj + 2*xi*yi + 2*xj*yj + xj*yi)
	}

	ixx /= 12
	iyy /= 12
	ixy /= 24
	if signedArea < 0 {
		ixx, iyy, ixy = -ixx, -iyy, -ixy
	}
	return ixx, iyy, ixy
}
