package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Plane Frame Linear Static Analysis Tool")
		fmt.Println("Direct stiffness method, Euler-Bernoulli frame and truss members")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
