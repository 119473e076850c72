package cv2pdf

import (
	"fmt"
	"strings"
)

// Orphan and widow defaults for printed paragraphs and list items.
const (
	DefaultOrphans = 2
	DefaultWidows  = 2
)

// buildThemeCSS generates CSS custom property overrides for a theme.
// The built-in styles read these variables from :root, so overriding
// them restyles the document without touching the base stylesheet.
// Returns "" when the theme is nil or sets nothing.
func buildThemeCSS(t *Theme) string {
	if t == nil {
		return ""
	}

	var vars []string
	if t.FontFamily != "" {
		vars = append(vars, fmt.Sprintf("  --cv-font-family: %s;", escapeCSSValue(t.FontFamily)))
	}
	if t.FontSize != "" {
		vars = append(vars, fmt.Sprintf("  --cv-font-size: %s;", escapeCSSValue(t.FontSize)))
	}
	if t.TextColor != "" {
		vars = append(vars, fmt.Sprintf("  --cv-text-color: %s;", t.TextColor))
	}
	if t.AccentColor != "" {
		vars = append(vars, fmt.Sprintf("  --cv-accent-color: %s;", t.AccentColor))
	}
	if t.LineHeight != "" {
		vars = append(vars, fmt.Sprintf("  --cv-line-height: %s;", escapeCSSValue(t.LineHeight)))
	}

	if len(vars) == 0 {
		return ""
	}

	return "\n/* Theme overrides */\n:root {\n" + strings.Join(vars, "\n") + "\n}\n"
}

// escapeCSSValue strips characters that could terminate a declaration
// or break out of the rule block. Theme values come from user config.
func escapeCSSValue(s string) string {
	s = strings.ReplaceAll(s, ";", "")
	s = strings.ReplaceAll(s, "}", "")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// buildPageBreaksCSS generates CSS for page break control.
// Headings never sit alone at a page bottom, and experience or
// education entries avoid splitting mid-entry where possible.
func buildPageBreaksCSS() string {
	var buf strings.Builder

	buf.WriteString(`
/* Page breaks: prevent heading alone at page bottom */
h1, h2, h3 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}
`)

	buf.WriteString(fmt.Sprintf(`
/* Page breaks: orphan/widow control */
p, li, blockquote {
  orphans: %d;
  widows: %d;
}
`, DefaultOrphans, DefaultWidows))

	buf.WriteString(`
/* Page breaks: keep entry heading with its meta line */
h3 + p {
  break-before: avoid;
  page-break-before: avoid;
}

/* Page breaks: avoid splitting bullet lists mid-item */
li {
  break-inside: avoid;
  page-break-inside: avoid;
}
`)

	return buf.String()
}
