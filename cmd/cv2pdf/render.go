package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadCV           = errors.New("failed to read cv file")
	ErrWritePDF         = errors.New("failed to write PDF file")
	ErrWriteRendition   = errors.New("failed to write rendition file")
	ErrInvalidExtension = errors.New("file must have .yaml or .yml extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(ctx context.Context, input cv2pdf.Input) (*cv2pdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Renderer = (*cv2pdf.Renderer)(nil)

// rendererFactory creates a Renderer with the given timeout.
// Injectable so tests can supply a fake without a browser.
type rendererFactory func(timeout time.Duration) (Renderer, error)

// defaultRendererFactory creates the production renderer.
func defaultRendererFactory(timeout time.Duration) (Renderer, error) {
	return cv2pdf.NewRenderer(cv2pdf.WithTimeout(timeout))
}

// runRender orchestrates the render command: load config, merge env
// vars and flags, parse the CV, render, and write the output files.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment, newRenderer rendererFactory) error {
	start := env.Now()

	// Load environment config and warn on typos
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration: flag > env var > defaults
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply env vars (only where config is silent), then CLI flags (CLI wins)
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}
	if err := validateCVExtension(inputPath); err != nil {
		return err
	}

	// Read and parse the CV
	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadCV, err)
	}
	cv, err := cv2pdf.ParseCV(data)
	if err != nil {
		return err
	}

	// Build render input from the merged config
	input := buildInput(cv, cfg, flags)

	// Resolve timeout: flag > env var > default
	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(timeout)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer func() { _ = renderer.Close() }()

	result, err := renderer.Render(ctx, input)
	if err != nil {
		return err
	}

	// Write outputs
	outputPath := resolveOutputPath(inputPath, flags.output, cfg)
	written, err := writeOutputs(outputPath, result, flags.outputMode)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		for _, path := range written {
			if flags.common.verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", inputPath, path, env.Now().Sub(start).Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", path)
			}
		}
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	// Theme flags
	if flags.theme.style != "" {
		cfg.Theme.Style = flags.theme.style
	}
	if flags.theme.fontFamily != "" {
		cfg.Theme.FontFamily = flags.theme.fontFamily
	}
	if flags.theme.fontSize != "" {
		cfg.Theme.FontSize = flags.theme.fontSize
	}
	if flags.theme.textColor != "" {
		cfg.Theme.TextColor = flags.theme.textColor
	}
	if flags.theme.accentColor != "" {
		cfg.Theme.AccentColor = flags.theme.accentColor
	}
	if flags.theme.lineHeight != "" {
		cfg.Theme.LineHeight = flags.theme.lineHeight
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Footer flags
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
	}
	if flags.footer.showName {
		cfg.Footer.ShowName = true
		cfg.Footer.Enabled = true
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}

	// Top note flags
	if flags.topNote.text != "" {
		cfg.TopNote.Text = flags.topNote.text
		cfg.TopNote.Enabled = true
	}
	if flags.topNote.enabled {
		cfg.TopNote.Enabled = true
	}

	// Date flags
	if flags.presentLabel != "" {
		cfg.Dates.PresentLabel = flags.presentLabel
	}

	// Disable flags
	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	}
	if flags.topNote.disabled {
		cfg.TopNote.Enabled = false
	}
}

// buildInput assembles the library Input from the merged config.
func buildInput(cv *cv2pdf.CV, cfg *config.Config, flags *renderFlags) cv2pdf.Input {
	input := cv2pdf.Input{
		CV:           cv,
		PresentLabel: cfg.Dates.PresentLabel,
		MarkdownOnly: flags.outputMode.markdownOnly,
		HTMLOnly:     flags.outputMode.htmlOnly,
	}

	if theme := buildTheme(cfg); theme != nil {
		input.Theme = theme
	}
	if page := buildPageSettings(cfg); page != nil {
		input.Page = page
	}
	if cfg.Footer.Enabled {
		input.Footer = &cv2pdf.Footer{
			Position:       cfg.Footer.Position,
			ShowName:       cfg.Footer.ShowName,
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			Text:           cfg.Footer.Text,
		}
	}
	if cfg.TopNote.Enabled {
		input.TopNote = &cv2pdf.TopNote{Text: cfg.TopNote.Text}
	}

	return input
}

// buildTheme creates cv2pdf.Theme from config, or nil if nothing is set.
func buildTheme(cfg *config.Config) *cv2pdf.Theme {
	t := &cv2pdf.Theme{
		Style:       cfg.Theme.Style,
		FontFamily:  cfg.Theme.FontFamily,
		FontSize:    cfg.Theme.FontSize,
		TextColor:   cfg.Theme.TextColor,
		AccentColor: cfg.Theme.AccentColor,
		LineHeight:  cfg.Theme.LineHeight,
	}
	if *t == (cv2pdf.Theme{}) {
		return nil
	}
	return t
}

// buildPageSettings creates cv2pdf.PageSettings from config, or nil for defaults.
func buildPageSettings(cfg *config.Config) *cv2pdf.PageSettings {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil
	}

	ps := &cv2pdf.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	// Apply defaults for unset fields
	if ps.Size == "" {
		ps.Size = cv2pdf.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = cv2pdf.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = cv2pdf.DefaultMargin
	}

	return ps
}

// resolveTimeout resolves the PDF timeout: flag > env var > library default.
func resolveTimeout(flagTimeout string, envTimeout time.Duration) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q (use formats like 30s or 2m)", ErrInvalidTimeout, flagTimeout)
		}
		return d, nil
	}
	if envTimeout > 0 {
		return envTimeout, nil
	}
	return 30 * time.Second, nil
}

// resolveInputPath determines the input path from positional args.
func resolveInputPath(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoInput
	}
	return args[0], nil
}

// validateCVExtension checks that the file has a .yaml or .yml extension.
func validateCVExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputPath determines the PDF output path for a CV file.
// Priority: explicit .pdf path > output directory > config default dir >
// alongside the input.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	outputDir := flagOutput
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".pdf")
	}

	if strings.HasSuffix(outputDir, ".pdf") {
		return outputDir
	}

	return filepath.Join(outputDir, base+".pdf")
}

// writeOutputs writes the requested renditions next to the PDF path and
// returns the paths written. The markdown and HTML renditions reuse the
// PDF path with swapped extensions.
func writeOutputs(pdfPath string, result *cv2pdf.Result, mode outputFlags) ([]string, error) {
	outDir := filepath.Dir(pdfPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))
	var written []string

	writeMarkdown := mode.markdown || mode.markdownOnly || mode.htmlOnly
	if writeMarkdown && len(result.Markdown) > 0 {
		mdPath := base + ".md"
		// #nosec G306 -- renditions are meant to be readable
		if err := os.WriteFile(mdPath, result.Markdown, filePermissions); err != nil {
			return written, fmt.Errorf("%w: %v", ErrWriteRendition, err)
		}
		written = append(written, mdPath)
	}

	writeHTML := mode.html || mode.htmlOnly
	if writeHTML && len(result.HTML) > 0 {
		htmlPath := base + ".html"
		// #nosec G306 -- renditions are meant to be readable
		if err := os.WriteFile(htmlPath, result.HTML, filePermissions); err != nil {
			return written, fmt.Errorf("%w: %v", ErrWriteRendition, err)
		}
		written = append(written, htmlPath)
	}

	if mode.markdownOnly || mode.htmlOnly {
		return written, nil
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(pdfPath, result.PDF, filePermissions); err != nil {
		return written, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	written = append(written, pdfPath)

	return written, nil
}
