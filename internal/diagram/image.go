package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// segments per frame member on the deformed curve
const curveSegments = 20

// ExportDeflectedShape exports the undeformed and deformed frame to an image
// file. The format follows the extension: .png, .svg or .pdf.
func ExportDeflectedShape(data ShapeData, filename string) error {
	if len(data.Nodes) == 0 {
		return fmt.Errorf("nothing to draw: model has no nodes")
	}

	scale := data.Scale
	if scale == 0 {
		scale = AutoScale(data)
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Deflected Shape"
	}
	p.Title.Text += fmt.Sprintf(" (scale %.3g)", scale)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"

	for _, m := range data.Members {
		g := data.local(m)

		// Undeformed member
		undeformed, err := plotter.NewLine(plotter.XYs{
			{X: data.Nodes[m.I].X, Y: data.Nodes[m.I].Y},
			{X: data.Nodes[m.J].X, Y: data.Nodes[m.J].Y},
		})
		if err != nil {
			return err
		}
		undeformed.LineStyle.Width = vg.Points(1)
		undeformed.LineStyle.Color = color.Gray{Y: 128}
		undeformed.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(undeformed)

		// Deformed member
		n := curveSegments
		if m.Truss {
			n = 1
		}
		pts := make(plotter.XYs, n+1)
		for k := 0; k <= n; k++ {
			d := g.deformed(float64(k)/float64(n), scale, m.Truss)
			pts[k] = plotter.XY{X: d.X, Y: d.Y}
		}
		deformed, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		deformed.LineStyle.Width = vg.Points(2)
		deformed.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(deformed)
	}

	// Draw supports
	if len(data.Supports) > 0 {
		supports := make(plotter.XYs, 0, len(data.Supports))
		for _, k := range data.Supports {
			if k >= 0 && k < len(data.Nodes) {
				supports = append(supports, plotter.XY{X: data.Nodes[k].X, Y: data.Nodes[k].Y})
			}
		}
		glyphs, err := plotter.NewScatter(supports)
		if err != nil {
			return err
		}
		glyphs.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		glyphs.GlyphStyle.Radius = vg.Points(6)
		glyphs.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(glyphs)
	}

	// Mark nodes
	nodes := make(plotter.XYs, len(data.Nodes))
	for k, pt := range data.Nodes {
		nodes[k] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	marks, err := plotter.NewScatter(nodes)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot using the file extension to pick the format;
// unknown extensions get .png appended
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
