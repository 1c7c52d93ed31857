package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/cpmech/gosl/chk"
)

// cantilever of length 2 bending down, tip rotation consistent with v = a·x²
func cantileverShape() ShapeData {
	return ShapeData{
		Title:         "cantilever",
		Nodes:         []Point{{0, 0}, {2, 0}},
		Displacements: []Point{{0, 0}, {0, -0.04}},
		Rotations:     []float64{0, -0.04},
		Members:       []MemberLine{{I: 0, J: 1}},
		Supports:      []int{0},
	}
}

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01. summary box alignment")

	box := DrawSummaryBox("Résumé", []string{"uz = -0.04 m", "θ = 0.001"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	chk.Int(tst, "lines", len(lines), 5)
	w := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		chk.Int(tst, "width", utf8.RuneCountInString(l), w)
	}
}

func Test_shape01(tst *testing.T) {

	chk.PrintTitle("shape01. member deflection and auto scale")

	data := cantileverShape()
	v := MemberDeflection(data, 0, 5)
	chk.Int(tst, "samples", len(v), 5)

	// v = -0.01·x² satisfies both end conditions exactly
	for k, x := range []float64{0, 0.5, 1, 1.5, 2} {
		chk.Float64(tst, "v", 1e-15, v[k], -0.01*x*x)
	}

	chk.Float64(tst, "scale", 1e-12, AutoScale(data), 0.1*2/0.04)
	chk.Float64(tst, "no motion", 0, AutoScale(ShapeData{Nodes: []Point{{0, 0}, {1, 0}}}), 1)

	truss := data
	truss.Members = []MemberLine{{I: 0, J: 1, Truss: true}}
	chk.Float64(tst, "chord", 1e-15, MemberDeflection(truss, 0, 3)[1], -0.02)

	if MemberDeflection(data, 3, 5) != nil {
		tst.Errorf("out of range member should give nil")
	}
}

func Test_graph01(tst *testing.T) {

	chk.PrintTitle("graph01. ascii deflection graph")

	g := DeflectionGraph(MemberDeflection(cantileverShape(), 0, 21), "member 1")
	if !strings.Contains(g, "member 1") {
		tst.Errorf("caption missing:\n%s", g)
	}
	if DeflectionGraph(nil, "x") != "" {
		tst.Errorf("empty series should render nothing")
	}
}

func Test_image01(tst *testing.T) {

	chk.PrintTitle("image01. export deflected shape")

	dir := tst.TempDir()
	for _, name := range []string{"shape.png", "shape.svg", "sub/shape.pdf"} {
		fn := filepath.Join(dir, name)
		if err := ExportDeflectedShape(cantileverShape(), fn); err != nil {
			tst.Errorf("%s: export failed:\n%v", name, err)
			continue
		}
		if st, err := os.Stat(fn); err != nil || st.Size() == 0 {
			tst.Errorf("%s: file not written", name)
		}
	}

	if err := ExportDeflectedShape(cantileverShape(), filepath.Join(dir, "noext")); err != nil {
		tst.Errorf("export failed:\n%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "noext.png")); err != nil {
		tst.Errorf("png suffix not appended")
	}

	if err := ExportDeflectedShape(ShapeData{}, filepath.Join(dir, "empty.png")); err == nil {
		tst.Errorf("empty shape should fail")
	}
}
