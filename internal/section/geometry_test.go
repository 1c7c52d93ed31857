package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_props01(tst *testing.T) {

	chk.PrintTitle("props01. rectangle")

	p := Rectangle("R300x500", 300, 500).CalculateProperties()
	chk.Float64(tst, "A", 1e-9, p.Area, 300*500)
	chk.Float64(tst, "cx", 1e-9, p.CentroidX, 150)
	chk.Float64(tst, "cy", 1e-9, p.CentroidY, 250)
	chk.Float64(tst, "Ixx", 1e-3, p.Ixx, 300*500*500*500/12.0)
	chk.Float64(tst, "Iyy", 1e-3, p.Iyy, 500*300*300*300/12.0)
	chk.Float64(tst, "Ixy", 1e-3, p.Ixy, 0)
	chk.Float64(tst, "width", 1e-12, p.Width, 300)
	chk.Float64(tst, "height", 1e-12, p.Height, 500)
}

func Test_props02(tst *testing.T) {

	chk.PrintTitle("props02. T-section, clockwise input")

	// flange 600x100 on a 300x400 web, listed clockwise
	s := &Section{Name: "T", Vertices: []Point{
		{X: 0, Y: 500}, {X: 600, Y: 500}, {X: 600, Y: 400},
		{X: 450, Y: 400}, {X: 450, Y: 0}, {X: 150, Y: 0}, {X: 150, Y: 400}, {X: 0, Y: 400},
	}}
	p := s.CalculateProperties()

	aw, af := 300.0*400, 600.0*100
	yw, yf := 200.0, 450.0
	A := aw + af
	cy := (aw*yw + af*yf) / A
	I := 300*400*400*400/12.0 + aw*(yw-cy)*(yw-cy) + 600*100*100*100/12.0 + af*(yf-cy)*(yf-cy)

	chk.Float64(tst, "A", 1e-9, p.Area, A)
	chk.Float64(tst, "cx", 1e-9, p.CentroidX, 300)
	chk.Float64(tst, "cy", 1e-9, p.CentroidY, cy)
	chk.Float64(tst, "Ixx", 1e-2, p.Ixx, I)
	chk.Float64(tst, "Ixy", 1e-2, p.Ixy, 0)
}

func Test_load01(tst *testing.T) {

	chk.PrintTitle("load01. JSON file and validation")

	dir := tst.TempDir()
	good := filepath.Join(dir, "good.json")
	os.WriteFile(good, []byte(`{"name":"sq","vertices":[{"x":0,"y":0},{"x":2,"y":0},{"x":2,"y":2},{"x":0,"y":2}]}`), 0o644)
	s, err := LoadFromFile(good)
	if err != nil {
		tst.Errorf("LoadFromFile failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, s.CalculateProperties().Area, 4)

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"name":"line","vertices":[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":2}]}`), 0o644)
	if _, err := LoadFromFile(bad); err == nil {
		tst.Errorf("zero-area section should fail validation")
	} else if _, ok := err.(*ValidationError); !ok {
		tst.Errorf("expected *ValidationError, got %T", err)
	}

	if err := (&Section{Vertices: []Point{{0, 0}, {1, 0}}}).Validate(); err == nil {
		tst.Errorf("two vertices should fail validation")
	}
}
