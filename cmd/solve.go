package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/analysis"
	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/report"
	"github.com/spf13/cobra"
)

var (
	solveFile      string
	solveCase      int
	solveShowGraph bool
	solvePlotFile  string
	solveScale     float64
	solveXLSXFile  string
	solvePDFFile   string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a frame model for its load cases",
	Long: `Run a linear static analysis of a frame model defined in a JSON file.

Every load case is solved against a single factorization of the
stiffness matrix unless --case selects one. Results are reported as
nodal displacements, support reactions and member end forces.

Sign convention:
  x to the right, z up, rotations and moments counterclockwise
  member end forces are in local axes (N along the member, i to j)

Examples:
  goframe solve --file portal.json
  goframe solve -f portal.json --case 1 --graph
  goframe solve -f portal.json --plot shape.png --xlsx results.xlsx --pdf report.pdf`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to model JSON file [required]")
	solveCmd.MarkFlagRequired("file")
	solveCmd.Flags().IntVarP(&solveCase, "case", "c", -1, "Load case index to solve (default: all)")

	// Output options
	solveCmd.Flags().BoolVar(&solveShowGraph, "graph", false, "Show ASCII deflection graph of each frame member")
	solveCmd.Flags().StringVar(&solvePlotFile, "plot", "", "Export deflected shape to file (png, svg, pdf)")
	solveCmd.Flags().Float64Var(&solveScale, "scale", 0, "Deflected shape exaggeration (default: automatic)")
	solveCmd.Flags().StringVar(&solveXLSXFile, "xlsx", "", "Export results to an XLSX workbook")
	solveCmd.Flags().StringVar(&solvePDFFile, "pdf", "", "Export results to a PDF report")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		return
	}

	m, err := model.LoadFromFile(solveFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		return
	}

	a, err := m.Build()
	if err != nil {
		fmt.Printf("Error building model: %v\n", err)
		return
	}

	var results []*model.CaseResult
	if solveCase >= 0 {
		res, err := a.Run(solveCase)
		if err != nil {
			printSolveError(err)
			return
		}
		results = []*model.CaseResult{res}
	} else if results, err = a.RunAll(); err != nil {
		printSolveError(err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PLANE FRAME LINEAR STATIC ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if m.Name != "" {
		fmt.Printf("  Model: %s\n", m.Name)
	}
	if m.Description != "" {
		fmt.Printf("  Description: %s\n", m.Description)
	}
	fmt.Println()

	fmt.Println("MODEL SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(m.Nodes))
	fmt.Fprintf(w, "  Members:\t%d\n", len(m.Members))
	fmt.Fprintf(w, "  Free DOFs:\t%d\n", a.Mapper.FreeDofCount())
	fmt.Fprintf(w, "  Restrained DOFs:\t%d\n", a.Mapper.RestrainedCount())
	fmt.Fprintf(w, "  Load cases:\t%d\n", len(m.LoadCases))
	if m.Units.Force != "" || m.Units.Length != "" {
		fmt.Fprintf(w, "  Units:\t%s, %s\n", m.Units.Force, m.Units.Length)
	}
	w.Flush()
	fmt.Println()

	for _, res := range results {
		printCase(m, res)
		if solveShowGraph {
			printGraphs(m, res)
		}
	}

	if solvePlotFile != "" && len(results) == 0 {
		fmt.Println("  Error: model has no load cases to plot")
	} else if solvePlotFile != "" {
		scale := solveScale
		if scale == 0 {
			scale = cfg.PlotScale
		}
		data := shapeData(m, results[0], scale)
		path := outputPath(cfg, solvePlotFile)
		if err := diagram.ExportDeflectedShape(data, path); err != nil {
			fmt.Printf("  Error exporting deflected shape: %v\n", err)
		} else {
			fmt.Printf("  Deflected shape (%s) exported to: %s\n", results[0].Case, path)
		}
	}

	if solveXLSXFile != "" {
		path := outputPath(cfg, solveXLSXFile)
		if err := report.WriteXLSX(path, m, results); err != nil {
			fmt.Printf("  Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("  Workbook exported to: %s\n", path)
		}
	}

	if solvePDFFile != "" {
		path := outputPath(cfg, solvePDFFile)
		if err := writePDFFile(path, m, results); err != nil {
			fmt.Printf("  Error exporting report: %v\n", err)
		} else {
			fmt.Printf("  Report exported to: %s\n", path)
		}
	}
	fmt.Println()
}

func printSolveError(err error) {
	if errors.Is(err, analysis.ErrSingularMatrix) {
		fmt.Printf("Error: structure is unstable or insufficiently supported: %v\n", err)
		return
	}
	fmt.Printf("Error solving model: %v\n", err)
}

func printCase(m *model.Model, res *model.CaseResult) {
	fmt.Printf("LOAD CASE: %s\n", res.Case)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("NODAL DISPLACEMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Node\tUx\tUz\tθy\t\n")
	fmt.Fprintf(w, "  ────\t──\t──\t──\t\n")
	for _, d := range res.Displacements {
		fmt.Fprintf(w, "  %s\t%.6g\t%.6g\t%.6g\t\n", m.Nodes[d.Node].ID, d.Ux, d.Uz, d.ThetaY)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Node\tFx\tFz\tMy\t\n")
	fmt.Fprintf(w, "  ────\t──\t──\t──\t\n")
	var sumX, sumZ float64
	for _, r := range res.Reactions {
		fmt.Fprintf(w, "  %s\t%.6g\t%.6g\t%.6g\t\n", m.Nodes[r.Node].ID, r.Fx, r.Fz, r.My)
		sumX += r.Fx
		sumZ += r.Fz
	}
	fmt.Fprintf(w, "  Σ\t%.6g\t%.6g\t\t\n", sumX, sumZ)
	w.Flush()
	fmt.Println()

	fmt.Println("MEMBER END FORCES (local axes):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Member\tEnd\tN\tV\tM\t\n")
	fmt.Fprintf(w, "  ──────\t───\t─\t─\t─\t\n")
	for _, f := range res.MemberForces {
		id := m.Members[f.Element].ID
		fmt.Fprintf(w, "  %s\t%s\t%.6g\t%.6g\t%.6g\t\n", id, m.Nodes[f.NodeI].ID, f.Ni, f.Vi, f.Mi)
		fmt.Fprintf(w, "  \t%s\t%.6g\t%.6g\t%.6g\t\n", m.Nodes[f.NodeJ].ID, f.Nj, f.Vj, f.Mj)
	}
	w.Flush()
	fmt.Println()
}

func printGraphs(m *model.Model, res *model.CaseResult) {
	data := shapeData(m, res, 0)
	fmt.Println("MEMBER DEFLECTIONS (local transverse):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for k, mem := range m.Members {
		if mem.Kind == model.TrussMember {
			continue
		}
		v := diagram.MemberDeflection(data, k, 41)
		fmt.Println(diagram.DeflectionGraph(v, fmt.Sprintf("member %s (%s → %s)", mem.ID, mem.I, mem.J)))
		fmt.Println()
	}
}

// shapeData collects the geometry and displacements of one case for drawing
func shapeData(m *model.Model, res *model.CaseResult, scale float64) diagram.ShapeData {
	data := diagram.ShapeData{
		Title: fmt.Sprintf("%s: %s", m.Name, res.Case),
		Scale: scale,
	}
	for _, n := range m.Nodes {
		data.Nodes = append(data.Nodes, diagram.Point{X: n.X, Y: n.Z})
	}
	for _, d := range res.Displacements {
		data.Displacements = append(data.Displacements, diagram.Point{X: d.Ux, Y: d.Uz})
		data.Rotations = append(data.Rotations, d.ThetaY)
	}
	for _, f := range res.MemberForces {
		data.Members = append(data.Members, diagram.MemberLine{
			I:     f.NodeI,
			J:     f.NodeJ,
			Truss: m.Members[f.Element].Kind == model.TrussMember,
		})
	}
	for _, r := range res.Reactions {
		data.Supports = append(data.Supports, r.Node)
	}
	return data
}

func writePDFFile(path string, m *model.Model, results []*model.CaseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WritePDF(f, m, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
