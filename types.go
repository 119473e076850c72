package cv2pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// DefaultPresentLabel is the text rendered for an ongoing date range.
const DefaultPresentLabel = "present"

// DefaultStyle is the built-in style used when none is specified.
const DefaultStyle = "classic"

// Contact holds the personal header information of a CV.
// Constructed once per render and never mutated.
type Contact struct {
	Name     string       `yaml:"name"`
	Location string       `yaml:"location"`
	Email    string       `yaml:"email"`
	Phone    string       `yaml:"phone"`
	Links    []SocialLink `yaml:"links"`
}

// SocialLink represents a labeled profile link (GitHub, LinkedIn, ...).
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// ExperienceEntry is one employment period.
// Entries are expected newest-first; rendering preserves input order.
type ExperienceEntry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Location     string   `yaml:"location"`
	Start        string   `yaml:"start"` // YYYY, YYYY-MM, YYYY-MM-DD, or free text
	End          string   `yaml:"end"`   // same formats, "present", or empty (= ongoing)
	Summary      string   `yaml:"summary"`
	Highlights   []string `yaml:"highlights"`
}

// EducationEntry is one degree, rendered like an experience entry
// without highlights.
type EducationEntry struct {
	Institution string `yaml:"institution"`
	Area        string `yaml:"area"`
	Degree      string `yaml:"degree"`
	Location    string `yaml:"location"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
}

// SkillGroup maps a category label to an ordered list of skills.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Skills   []string `yaml:"skills"`
}

// CV is the full source document. All fields are read-only for the
// lifetime of a render.
type CV struct {
	Contact    Contact           `yaml:"contact"`
	Summary    string            `yaml:"summary"`
	Experience []ExperienceEntry `yaml:"experience"`
	Skills     []SkillGroup      `yaml:"skills"`
	Education  []EducationEntry  `yaml:"education"`
}

// Headline returns the short role title shown under the name:
// the title of the most recent experience entry, or "" if there is none.
func (c *CV) Headline() string {
	if len(c.Experience) == 0 {
		return ""
	}
	return c.Experience[0].Title
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// hexColorPattern matches #rgb and #rrggbb colors.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme holds visual options passed through to the renderer.
// Every field is presentation only; none affects document content.
type Theme struct {
	Style       string // built-in style name (default: "classic")
	FontFamily  string // CSS font stack
	FontSize    string // base font size, e.g. "11pt"
	TextColor   string // hex color
	AccentColor string // hex color for name and section headings
	LineHeight  string // CSS line-height, e.g. "1.4"
}

// Validate checks that theme colors are valid hex values.
// Returns nil if t is nil (nil means use the style's defaults).
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}
	if t.TextColor != "" && !hexColorPattern.MatchString(t.TextColor) {
		return fmt.Errorf("%w: text color %q", ErrInvalidThemeColor, t.TextColor)
	}
	if t.AccentColor != "" && !hexColorPattern.MatchString(t.AccentColor) {
		return fmt.Errorf("%w: accent color %q", ErrInvalidThemeColor, t.AccentColor)
	}
	return nil
}

// Footer configures the PDF page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "center")
	ShowName       bool   // include the CV name in the footer
	ShowPageNumber bool   // include "N of M"
	Text           string // free-form text
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// TopNote configures the "Last updated in ..." note rendered at the
// top of the styled document.
type TopNote struct {
	Text string
}

// Input contains render parameters for a single CV.
type Input struct {
	CV           *CV           // source document (required)
	PresentLabel string        // text for ongoing date ranges (default: "present")
	Theme        *Theme        // visual options (optional, nil = style defaults)
	CSS          string        // extra CSS appended after the theme (optional)
	Page         *PageSettings // page settings (optional, nil = defaults)
	Footer       *Footer       // footer config (optional)
	TopNote      *TopNote      // top note config (optional)
	MarkdownOnly bool          // stop after the markdown rendition
	HTMLOnly     bool          // skip PDF generation (for debugging)
}

// Result holds the renditions produced by a render.
// Markdown is always set; HTML is set unless MarkdownOnly; PDF is set
// unless MarkdownOnly or HTMLOnly.
type Result struct {
	Markdown []byte
	HTML     []byte
	PDF      []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}
