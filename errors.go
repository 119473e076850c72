package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilCV          = errors.New("cv cannot be nil")
	ErrMissingName    = errors.New("cv is missing a name")
	ErrNoExperience   = errors.New("cv has no experience entries")
	ErrDateOrder      = errors.New("start date is after end date")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrTopNoteRender  = errors.New("top note template rendering failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Theme validation errors.
	ErrInvalidThemeColor = errors.New("invalid theme color")

	// CV document parsing errors.
	ErrCVParse = errors.New("failed to parse cv document")
)
