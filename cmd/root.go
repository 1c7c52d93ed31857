package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Plane Frame Linear Static Analysis Tool",
	Long: `goframe - Go Plane Frame Analyzer

A CLI tool for the linear static analysis of plane frames and trusses
using the direct stiffness method.

This tool helps structural engineers perform:
  - Nodal displacement and rotation computation
  - Support reaction recovery
  - Member end force recovery in local axes
  - Section property calculation for polygonal shapes
  - Spreadsheet, PDF and deflected shape output

Settings may be given in a .env file (GOFRAME_ADDR, GOFRAME_RATE,
GOFRAME_BURST, GOFRAME_PLOT_SCALE, GOFRAME_OUTPUT_DIR).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goframe v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Plane Frame Analyzer                                 ║")
		fmt.Printf("  ║   %s © %-37s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the linear static analysis of plane frames")
		fmt.Println("  using the direct stiffness method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Frame (beam-column) and truss members")
		fmt.Println("    • Fixed, pinned, roller or custom supports")
		fmt.Println("    • Multiple load cases against one factorization")
		fmt.Println("    • XLSX and PDF reports, deflected shape plots")
		fmt.Println("    • HTTP API server")
		fmt.Println()
		fmt.Println("  Use 'goframe --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to settings file")
}

// loadConfig reads the settings used as flag defaults
func loadConfig() (*config.Config, error) {
	return config.Load(envFile)
}

// outputPath places bare file names in the configured output directory
func outputPath(cfg *config.Config, name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}
