package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvAddr      = "GOFRAME_ADDR"
	EnvRate      = "GOFRAME_RATE"
	EnvBurst     = "GOFRAME_BURST"
	EnvPlotScale = "GOFRAME_PLOT_SCALE"
	EnvOutputDir = "GOFRAME_OUTPUT_DIR"
)

// Config holds the settings that command-line flags fall back to
type Config struct {
	Addr      string  // HTTP listen address
	Rate      float64 // requests per second allowed per client
	Burst     int     // request burst per client
	PlotScale float64 // deflected shape exaggeration, 0 picks one automatically
	OutputDir string  // directory for generated files given without a path
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		Rate:      5,
		Burst:     10,
		PlotScale: 0,
		OutputDir: ".",
	}
}

// Load reads settings from the given .env files (default ".env") and the
// process environment. Variables already set in the environment win over
// the files unless empty. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	vars := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		for k, v := range values {
			vars[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := lookup(EnvRate); ok && v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return nil, fmt.Errorf("%s must be a positive number, got %q", EnvRate, v)
		}
		cfg.Rate = r
	}
	if v, ok := lookup(EnvBurst); ok && v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", EnvBurst, v)
		}
		cfg.Burst = b
	}
	if v, ok := lookup(EnvPlotScale); ok && v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil || s < 0 {
			return nil, fmt.Errorf("%s must be a non-negative number, got %q", EnvPlotScale, v)
		}
		cfg.PlotScale = s
	}

	return cfg, nil
}
