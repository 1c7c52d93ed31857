package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/goframe/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis API",
	Long: `Serve the analysis over HTTP until interrupted.

Endpoints:
  GET  /api/health       service status and version
  POST /api/solve        solve a posted model (optional ?case=N)
  POST /api/report/pdf   PDF report of a posted model
  POST /api/report/xlsx  XLSX workbook of a posted model

Requests are rate limited per client address (GOFRAME_RATE,
GOFRAME_BURST).

Examples:
  goframe serve
  goframe serve --addr :9000`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: GOFRAME_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		return
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
