// Package config loads and validates CLI configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxStyleLength       = 100  // Style name or path
	MaxFontFamilyLength  = 200  // CSS font stack
	MaxFontSizeLength    = 10   // "11pt", "13px"
	MaxColorLength       = 20   // "#888888"
	MaxLineHeightLength  = 10   // "1.4"
	MaxTextLength        = 500  // Footer/free-form text
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxLabelLength       = 100  // Present label
	MaxDirLength         = 2048 // Directory path
)

// Config holds all CLI configuration for CV rendering.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Theme   ThemeConfig   `yaml:"theme"`
	Page    PageConfig    `yaml:"page"`
	Footer  FooterConfig  `yaml:"footer"`
	TopNote TopNoteConfig `yaml:"topNote"`
	Dates   DatesConfig   `yaml:"dates"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ThemeConfig defines visual styling options.
type ThemeConfig struct {
	Style       string `yaml:"style"`       // Name in internal/assets/styles/, path, or raw CSS
	FontFamily  string `yaml:"fontFamily"`  // CSS font stack
	FontSize    string `yaml:"fontSize"`    // e.g. "11pt"
	TextColor   string `yaml:"textColor"`   // hex color
	AccentColor string `yaml:"accentColor"` // hex color
	LineHeight  string `yaml:"lineHeight"`  // e.g. "1.4"
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "center")
	ShowName       bool   `yaml:"showName"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Text           string `yaml:"text"` // Optional free-form text
}

// TopNoteConfig defines the "Last updated in ..." note options.
type TopNoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Text    string `yaml:"text"` // Empty = generated from the current date
}

// DatesConfig defines date display options.
type DatesConfig struct {
	PresentLabel string `yaml:"presentLabel"` // Text for ongoing ranges (default: "present")
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}

	// Validate theme fields
	if err := validateFieldLength("theme.style", c.Theme.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.fontFamily", c.Theme.FontFamily, MaxFontFamilyLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.fontSize", c.Theme.FontSize, MaxFontSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.textColor", c.Theme.TextColor, MaxColorLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.accentColor", c.Theme.AccentColor, MaxColorLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.lineHeight", c.Theme.LineHeight, MaxLineHeightLength); err != nil {
		return err
	}

	// Validate page fields
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	// Validate footer fields
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
		}
	}

	// Validate top note fields
	if err := validateFieldLength("topNote.text", c.TopNote.Text, MaxTextLength); err != nil {
		return err
	}

	// Validate date fields
	if err := validateFieldLength("dates.presentLabel", c.Dates.PresentLabel, MaxLabelLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{DefaultDir: ""},
		Theme:   ThemeConfig{Style: ""},
		Footer:  FooterConfig{Enabled: false},
		TopNote: TopNoteConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-cv2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-cv2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
