// Package yamlutil decodes the YAML documents cv2pdf consumes: CV data
// files and CLI configuration. It wraps goccy/go-yaml so callers never
// import the library directly, and it only decodes strictly, so a
// mistyped section or field name fails loudly instead of being dropped.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps YAML input. A CV spanning decades of entries
// stays in the tens of kilobytes, so anything near the cap is not a CV.
const MaxDocumentSize = 256 << 10

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilDestination   = errors.New("yamlutil: nil destination pointer")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds maximum size")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
