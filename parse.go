package cv2pdf

import (
	"fmt"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/dateutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// ParseCV parses a YAML CV document into a CV struct.
// Unknown fields are rejected so typos in section names surface as
// errors instead of silently dropping content.
func ParseCV(data []byte) (*CV, error) {
	var cv CV
	if err := yamlutil.UnmarshalStrict(data, &cv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCVParse, err)
	}
	return &cv, nil
}

// Validate checks that the CV satisfies the structural requirements for
// rendering: a contact name, at least one experience entry, and every
// dated entry in chronological order.
//
// This is a TRUST BOUNDARY for direct library users who build a CV
// manually. CLI users go through ParseCV first, but both paths converge
// here before any rendering happens.
func (c *CV) Validate() error {
	if c == nil {
		return ErrNilCV
	}

	if strings.TrimSpace(c.Contact.Name) == "" {
		return ErrMissingName
	}

	if len(c.Experience) == 0 {
		return ErrNoExperience
	}

	for i, e := range c.Experience {
		if err := validateDateRange(e.Start, e.End); err != nil {
			return fmt.Errorf("experience[%d] %q: %w", i, e.Title, err)
		}
	}

	for i, e := range c.Education {
		if err := validateDateRange(e.Start, e.End); err != nil {
			return fmt.Errorf("education[%d] %q: %w", i, e.Institution, err)
		}
	}

	return nil
}

// validateDateRange checks chronological order when both endpoints are
// machine-readable dates. Free-text dates ("Fall 2023") and ongoing end
// dates are never an ordering error.
func validateDateRange(start, end string) error {
	if start == "" || dateutil.IsPresent(end) {
		return nil
	}

	startDate, err := dateutil.Parse(start)
	if err != nil {
		return nil // free text, nothing to compare
	}
	endDate, err := dateutil.Parse(end)
	if err != nil {
		return nil
	}

	if startDate.After(endDate) {
		return fmt.Errorf("%w: %s > %s", ErrDateOrder, start, end)
	}
	return nil
}
