package schedule

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Layout is the persisted timestamp format: wall-clock time without a zone
const Layout = "2006-01-02 15:04:05"

// DayLayout is the format of a calendar day
const DayLayout = "2006-01-02"

// ErrInvalidTimestamp is returned when a timestamp string does not match an accepted layout
var ErrInvalidTimestamp = goerr.New("invalid timestamp")

// isoLayouts are tried in order by ParseISO
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	Layout,
	"2006-01-02 15:04",
	DayLayout,
}

// Parse reads a persisted timestamp as local wall-clock time. Empty input is "no date" and yields the zero time.
func Parse(s string) (time.Time, error) {
	return ParseIn(s, time.Local)
}

// ParseIn reads a persisted timestamp as wall-clock time in loc
func ParseIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidTimestamp, "timestamp does not match layout",
			goerr.V("input", s), goerr.V("layout", Layout))
	}
	return t, nil
}

// ParseISO reads an ISO-8601 timestamp. Inputs without a zone are taken as wall-clock time in loc.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, goerr.Wrap(ErrInvalidTimestamp, "empty timestamp")
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.Wrap(ErrInvalidTimestamp, "timestamp is not ISO-8601", goerr.V("input", s))
}

// Format writes a timestamp in the persisted layout. The zero time is written as an empty string.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}
