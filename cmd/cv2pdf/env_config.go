package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // CV2PDF_CONFIG: config file path
	Style      string        // CV2PDF_STYLE: style name or path
	Timeout    time.Duration // CV2PDF_TIMEOUT: PDF generation timeout

	// Tier 2 - I/O
	OutputDir string // CV2PDF_OUTPUT_DIR: default output directory

	// Tier 3 - Extended
	PageSize     string // CV2PDF_PAGE_SIZE: a4, letter, legal
	AccentColor  string // CV2PDF_ACCENT_COLOR: accent color (hex)
	PresentLabel string // CV2PDF_PRESENT_LABEL: text for ongoing ranges
}

// knownEnvVars lists valid CV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"CV2PDF_CONFIG":  true,
	"CV2PDF_STYLE":   true,
	"CV2PDF_TIMEOUT": true,
	// Tier 2 - I/O
	"CV2PDF_OUTPUT_DIR": true,
	// Tier 3 - Extended
	"CV2PDF_PAGE_SIZE":     true,
	"CV2PDF_ACCENT_COLOR":  true,
	"CV2PDF_PRESENT_LABEL": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized CV2PDF_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("CV2PDF_CONFIG"),
		Style:      os.Getenv("CV2PDF_STYLE"),
		// Tier 2
		OutputDir: os.Getenv("CV2PDF_OUTPUT_DIR"),
		// Tier 3
		PageSize:     os.Getenv("CV2PDF_PAGE_SIZE"),
		AccentColor:  os.Getenv("CV2PDF_ACCENT_COLOR"),
		PresentLabel: os.Getenv("CV2PDF_PRESENT_LABEL"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("CV2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CV2PDF_* variables.
// Helps catch typos like CV2PDF_STLYE instead of CV2PDF_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CV2PDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - Style (timeout handled separately in resolveTimeout)
	if env.Style != "" && cfg.Theme.Style == "" {
		cfg.Theme.Style = env.Style
	}

	// Tier 2 - I/O
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	// Tier 3 - Page
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}

	// Tier 3 - Theme
	if env.AccentColor != "" && cfg.Theme.AccentColor == "" {
		cfg.Theme.AccentColor = env.AccentColor
	}

	// Tier 3 - Dates
	if env.PresentLabel != "" && cfg.Dates.PresentLabel == "" {
		cfg.Dates.PresentLabel = env.PresentLabel
	}
}
