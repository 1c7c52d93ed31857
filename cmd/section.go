package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal section properties",
	Long: `Compute geometric properties of sections defined in JSON files.

This allows the use of complex shapes like T-beams, L-sections,
or any arbitrary polygonal section as frame member sections.

Subcommands:
  props  - Calculate area, centroid and moments of inertia

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": 0, "y": 500}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
