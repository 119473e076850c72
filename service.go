package cv2pdf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/dateutil"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ htmlConverter   = (*goldmarkConverter)(nil)
	_ cssInjector     = (*cssInjection)(nil)
	_ topNoteInjector = (*topNoteInjection)(nil)
	_ pdfConverter    = (*rodConverter)(nil)
)

// Renderer orchestrates the CV-to-PDF pipeline: assemble markdown
// sections, convert to HTML, style, and print to PDF.
// Create with NewRenderer, use Render for each document, and Close when done.
type Renderer struct {
	cfg             rendererConfig
	assetLoader     assets.AssetLoader
	htmlConverter   htmlConverter
	cssInjector     cssInjector
	topNoteInjector topNoteInjector
	pdfConverter    pdfConverter
	now             func() time.Time
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:             rendererConfig{timeout: defaultTimeout},
		assetLoader:     assets.NewEmbeddedLoader(),
		htmlConverter:   newGoldmarkConverter(),
		cssInjector:     &cssInjection{},
		topNoteInjector: newTopNoteInjection(),
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(r.cfg.timeout)
	}

	return r, nil
}

// Render runs the full pipeline and returns the markdown, HTML, and PDF
// renditions. The context is used for cancellation and timeout.
// If input.MarkdownOnly is true, the pipeline stops after assembly.
// If input.HTMLOnly is true, PDF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := r.validateInput(input); err != nil {
		return nil, err
	}

	presentLabel := input.PresentLabel
	if presentLabel == "" {
		presentLabel = DefaultPresentLabel
	}

	// Assemble document sections
	sections := Assemble(input.CV, presentLabel)
	markdown := sections.Markdown()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		Markdown: []byte(markdown),
	}

	if input.MarkdownOnly {
		return res, nil
	}

	// Convert to HTML
	htmlContent, err := r.htmlConverter.ToHTML(ctx, input.CV.Contact.Name, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Build combined CSS. Order matters: page breaks and base style
	// first, theme overrides and user CSS last so they win.
	baseCSS, err := r.resolveStyle(input.Theme)
	if err != nil {
		return nil, err
	}
	cssContent := buildPageBreaksCSS() + baseCSS + buildThemeCSS(input.Theme)
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent = r.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Inject top note (if configured). An empty text gets the default
	// "Last updated in ..." wording from the renderer's clock.
	if input.TopNote != nil {
		text := input.TopNote.Text
		if text == "" {
			text = "Last updated in " + dateutil.FormatMonthYear(r.now())
		}
		htmlContent, err = r.topNoteInjector.InjectTopNote(ctx, htmlContent, &topNoteData{Text: text})
		if err != nil {
			return nil, fmt.Errorf("injecting top note: %w", err)
		}
	}

	res.HTML = []byte(htmlContent)

	// Skip PDF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	// Build PDF options with footer and page settings
	var footData *footerData
	if input.Footer != nil {
		footData = &footerData{
			Position:       input.Footer.Position,
			Name:           input.CV.Contact.Name,
			ShowName:       input.Footer.ShowName,
			ShowPageNumber: input.Footer.ShowPageNumber,
			Text:           input.Footer.Text,
		}
	}
	pdfOpts := &pdfOptions{
		Footer: footData,
		Page:   input.Page,
	}

	// Convert to PDF
	pdfBytes, err := r.pdfConverter.ToPDF(ctx, htmlContent, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the theme's style (name, path, or raw CSS) to
// CSS content. A nil theme or empty style means the default built-in.
func (r *Renderer) resolveStyle(t *Theme) (string, error) {
	style := DefaultStyle
	if t != nil && t.Style != "" {
		style = t.Style
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", style, err)
		}
		return string(content), nil
	}

	// Raw CSS content? (contains {)
	if fileutil.IsCSS(style) {
		return style, nil
	}

	// Style name -> use asset loader
	css, err := r.assetLoader.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", style, err)
	}
	return css, nil
}

// validateInput checks that required fields are present and valid.
// Both the CLI path and direct library callers converge here before
// any rendering happens.
func (r *Renderer) validateInput(input Input) error {
	if input.CV == nil {
		return ErrNilCV
	}
	if err := input.CV.Validate(); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Theme.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return nil
}
