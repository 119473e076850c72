// Package dateutil parses and formats the partial dates used by CV entries.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date string that is not in a supported format.
var ErrInvalidDate = errors.New("invalid date")

// PresentKeyword marks an ongoing end date. An empty end date means the same.
const PresentKeyword = "present"

// MonthAbbreviations follows the Yale library style, which spells out
// June, July and Sept in full.
var MonthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "June",
	"July", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// datePattern matches YYYY, YYYY-MM, and YYYY-MM-DD.
var datePattern = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// Date is a partially specified calendar date.
// Month and Day are zero when not provided.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse parses a date in YYYY, YYYY-MM, or YYYY-MM-DD format.
// Returns ErrInvalidDate for anything else, including "present".
func Parse(s string) (Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q (use YYYY, YYYY-MM, or YYYY-MM-DD)", ErrInvalidDate, s)
	}

	var d Date
	d.Year, _ = strconv.Atoi(m[1])

	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		if d.Month < 1 || d.Month > 12 {
			return Date{}, fmt.Errorf("%w: %q (month out of range)", ErrInvalidDate, s)
		}
	}

	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		if d.Day < 1 || d.Day > 31 {
			return Date{}, fmt.Errorf("%w: %q (day out of range)", ErrInvalidDate, s)
		}
	}

	return d, nil
}

// Time converts the date to a time.Time for comparison.
// Missing month and day default to January 1.
func (d Date) Time() time.Time {
	month := d.Month
	if month == 0 {
		month = 1
	}
	day := d.Day
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// String renders the date at the precision it was given:
// "2020" for a bare year, "Sept 2020" when a month is known.
// The day is not shown; CV date displays use month precision.
func (d Date) String() string {
	if d.Month == 0 {
		return strconv.Itoa(d.Year)
	}
	return MonthAbbreviations[d.Month-1] + " " + strconv.Itoa(d.Year)
}

// IsPresent reports whether s marks an ongoing date: empty or the
// "present" keyword (case-insensitive).
func IsPresent(s string) bool {
	return s == "" || strings.EqualFold(s, PresentKeyword)
}

// Format renders a date string for display. Parseable dates are
// formatted at their precision; anything else (e.g. "Fall 2023")
// passes through verbatim.
func Format(s string) string {
	d, err := Parse(s)
	if err != nil {
		return s
	}
	return d.String()
}

// FormatRange renders "start – end" with an en dash. An ongoing end
// date renders as presentLabel. An empty start renders just the end.
func FormatRange(start, end, presentLabel string) string {
	endStr := presentLabel
	if !IsPresent(end) {
		endStr = Format(end)
	}
	if start == "" {
		return endStr
	}
	return Format(start) + " – " + endStr
}

// FormatMonthYear renders a point in time as "Sept 2026", used for
// the "Last updated in" note.
func FormatMonthYear(t time.Time) string {
	return MonthAbbreviations[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
