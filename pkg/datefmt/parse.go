package datefmt

import (
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var longPattern = regexp.MustCompile(`^(\S+), (\d{1,2}) de (\p{L}+)(?: de (\d{4}))?(?: às (\d{1,2})h(\d{2})?)?$`)

// ParseLong reads a string produced by the long date format, with or without time, back into an
// instant in now's location. The year defaults to now's year. Seconds are not rendered and so are
// always zero.
func ParseLong(s string, now time.Time) (time.Time, error) {
	m := longPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, goerr.Wrap(ErrInvalidFormat, "not a long date", goerr.V("input", s))
	}

	month := slices.Index(months[:], m[3])
	if month < 0 {
		return time.Time{}, goerr.Wrap(ErrInvalidFormat, "unknown month", goerr.V("input", s), goerr.V("month", m[3]))
	}
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[4] != "" {
		year, _ = strconv.Atoi(m[4])
	}
	var hour, minute int
	if m[5] != "" {
		hour, _ = strconv.Atoi(m[5])
	}
	if m[6] != "" {
		minute, _ = strconv.Atoi(m[6])
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, goerr.Wrap(ErrInvalidFormat, "time out of range", goerr.V("input", s))
	}

	t := time.Date(year, time.Month(month+1), day, hour, minute, 0, 0, now.Location())
	if t.Day() != day {
		return time.Time{}, goerr.Wrap(ErrInvalidFormat, "day out of range", goerr.V("input", s))
	}
	if weekdays[t.Weekday()] != m[1] {
		return time.Time{}, goerr.Wrap(ErrInvalidFormat, "weekday does not match date",
			goerr.V("input", s), goerr.V("weekday", m[1]))
	}
	return t, nil
}
