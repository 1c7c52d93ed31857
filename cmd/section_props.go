package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var sectionPropsFile string

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate geometric properties of a polygonal section",
	Long: `Calculate the area, centroid and second moments of area of a
section defined in a JSON file. Ixx is the value used for in-plane
bending of frame members.

Examples:
  goframe section props --file t-beam.json
  goframe section props -f my-section.json`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPropsCmd.MarkFlagRequired("file")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	// Load section from file
	sec, err := section.LoadFromFile(sectionPropsFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.4g\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.4g\n", props.Height)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.4g, %.4g)\n", props.CentroidX, props.CentroidY)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("CENTROIDAL PROPERTIES", []string{
		fmt.Sprintf("Area  A   = %.6g", props.Area),
		fmt.Sprintf("Ixx       = %.6g", props.Ixx),
		fmt.Sprintf("Iyy       = %.6g", props.Iyy),
		fmt.Sprintf("Ixy       = %.6g", props.Ixy),
	}))
	fmt.Println()
}
