package cv2pdf

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// cssInjector defines the contract for CSS injection into HTML.
type cssInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// cssInjection injects CSS as a <style> block into HTML content.
type cssInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *cssInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}

// htmlEscapeTitle escapes a string for use inside the <title> element.
func htmlEscapeTitle(s string) string {
	return html.EscapeString(s)
}

// topNoteData holds the rendered top note text for template injection.
type topNoteData struct {
	Text string
}

// topNoteInjector defines the contract for top note injection into HTML.
type topNoteInjector interface {
	InjectTopNote(ctx context.Context, htmlContent string, data *topNoteData) (string, error)
}

// topNoteInjection renders and injects the "Last updated in ..." note
// right after the opening <body> tag.
type topNoteInjection struct {
	tmpl *template.Template
}

// newTopNoteInjection creates a topNoteInjection with the embedded template.
// Panics if the template cannot be loaded or parsed (programmer error).
func newTopNoteInjection() *topNoteInjection {
	tmplContent, err := assets.TopNoteTemplate()
	if err != nil {
		panic("failed to load topnote template: " + err.Error())
	}

	tmpl, err := template.New("topnote").Parse(tmplContent)
	if err != nil {
		panic("failed to parse topnote template: " + err.Error())
	}

	return &topNoteInjection{tmpl: tmpl}
}

// InjectTopNote renders the top note template and injects it after <body>.
// If data is nil or the text is empty, returns htmlContent unchanged.
// Returns error if template rendering fails.
func (t *topNoteInjection) InjectTopNote(ctx context.Context, htmlContent string, data *topNoteData) (string, error) {
	if data == nil || data.Text == "" {
		return htmlContent, nil
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTopNoteRender, err)
	}

	noteHTML := buf.String()
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + noteHTML + htmlContent[insertPos:], nil
		}
	}

	// Fallback: prepend
	return noteHTML + htmlContent, nil
}
