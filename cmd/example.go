package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/spf13/cobra"
)

var exampleOutputFile string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a sample frame model",
	Long: `Print a sample model in the JSON format read by 'goframe solve'.

The sample is a fixed-base steel portal frame with a gravity and a
wind load case, in N and mm.

Examples:
  goframe example
  goframe example -o portal.json && goframe solve -f portal.json`,
	Run: runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVarP(&exampleOutputFile, "output", "o", "", "Write the model to a file instead of stdout")
}

func runExample(cmd *cobra.Command, args []string) {
	data, err := json.MarshalIndent(model.Example(), "", "  ")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	data = append(data, '\n')

	if exampleOutputFile == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(exampleOutputFile, data, 0644); err != nil {
		fmt.Printf("Error writing model: %v\n", err)
		return
	}
	fmt.Printf("Sample model written to: %s\n", exampleOutputFile)
}
