// Package datefmt renders action dates as pt-BR display strings.
package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/schedule"
)

// DateFormat is the date granularity of a rendered datetime
type DateFormat int

const (
	DateNone DateFormat = iota
	DateRelative
	DateShort
	DateMedium
	DateLong
)

// IsValid checks if the date format is known
func (f DateFormat) IsValid() bool {
	return f >= DateNone && f <= DateLong
}

var dateFormatNames = map[string]DateFormat{
	"none":     DateNone,
	"relative": DateRelative,
	"short":    DateShort,
	"medium":   DateMedium,
	"long":     DateLong,
}

// ParseDateFormat reads a date granularity by name (none, relative, short, medium, long)
// or by its numeric code 0 to 4
func ParseDateFormat(s string) (DateFormat, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if f := DateFormat(n); f.IsValid() {
			return f, nil
		}
		return 0, goerr.Wrap(ErrInvalidFormat, "date format code out of range", goerr.V("date_format", s))
	}
	f, ok := dateFormatNames[s]
	if !ok {
		return 0, goerr.Wrap(ErrInvalidFormat, "unknown date format name", goerr.V("date_format", s))
	}
	return f, nil
}

// TimeFormat is the time granularity of a rendered datetime
type TimeFormat int

const (
	TimeNone TimeFormat = iota
	TimeHour
)

// IsValid checks if the time format is known
func (f TimeFormat) IsValid() bool {
	return f == TimeNone || f == TimeHour
}

// ParseTimeFormat reads a time granularity by name (none, hour) or by its numeric code 0 or 1
func ParseTimeFormat(s string) (TimeFormat, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if f := TimeFormat(n); f.IsValid() {
			return f, nil
		}
		return 0, goerr.Wrap(ErrInvalidFormat, "time format code out of range", goerr.V("time_format", s))
	}
	switch s {
	case "none":
		return TimeNone, nil
	case "hour":
		return TimeHour, nil
	}
	return 0, goerr.Wrap(ErrInvalidFormat, "unknown time format name", goerr.V("time_format", s))
}

// ErrInvalidFormat is returned for an unknown granularity or an unparseable display string
var ErrInvalidFormat = goerr.New("invalid datetime format")

type config struct {
	date   *DateFormat
	time   *TimeFormat
	prefix string
	suffix string
}

// Option configures Format
type Option func(*config)

// WithDateFormat sets the date granularity
func WithDateFormat(f DateFormat) Option {
	return func(c *config) {
		c.date = &f
	}
}

// WithTimeFormat sets the time granularity
func WithTimeFormat(f TimeFormat) Option {
	return func(c *config) {
		c.time = &f
	}
}

// WithPrefix prepends s verbatim
func WithPrefix(s string) Option {
	return func(c *config) {
		c.prefix = s
	}
}

// WithSuffix appends s verbatim
func WithSuffix(s string) Option {
	return func(c *config) {
		c.suffix = s
	}
}

// Format renders t relative to now, read in now's location.
//
// Without granularity options it renders the long date with time. When only one granularity is
// given the other is omitted. The relative form ignores the time granularity.
func Format(t, now time.Time, opts ...Option) (string, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	dateFmt, timeFmt := DateLong, TimeHour
	if cfg.date != nil || cfg.time != nil {
		dateFmt, timeFmt = DateNone, TimeNone
		if cfg.date != nil {
			dateFmt = *cfg.date
		}
		if cfg.time != nil {
			timeFmt = *cfg.time
		}
	}
	if !dateFmt.IsValid() {
		return "", goerr.Wrap(ErrInvalidFormat, "unknown date format", goerr.V("date_format", int(dateFmt)))
	}
	if !timeFmt.IsValid() {
		return "", goerr.Wrap(ErrInvalidFormat, "unknown time format", goerr.V("time_format", int(timeFmt)))
	}

	t = t.In(now.Location())

	var body string
	switch dateFmt {
	case DateRelative:
		body = relative(t, now)
	case DateNone:
		if timeFmt == TimeHour {
			body = clock(t)
		}
	default:
		body = calendar(t, now, dateFmt)
		if timeFmt == TimeHour {
			body += " às " + clock(t)
		}
	}

	return cfg.prefix + body + cfg.suffix, nil
}

// FormatString parses an ISO-8601 string in now's location and renders it
func FormatString(s string, now time.Time, opts ...Option) (string, error) {
	t, err := schedule.ParseISO(s, now.Location())
	if err != nil {
		return "", err
	}
	return Format(t, now, opts...)
}

func calendar(t, now time.Time, f DateFormat) string {
	sameYear := t.Year() == now.Year()

	switch f {
	case DateShort:
		s := fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
		if !sameYear {
			s += fmt.Sprintf("/%02d", t.Year()%100)
		}
		return s

	case DateMedium:
		s := fmt.Sprintf("%d de %s", t.Day(), monthsShort[t.Month()-1])
		if !sameYear {
			s += " de " + strconv.Itoa(t.Year())
		}
		return s

	default:
		s := fmt.Sprintf("%s, %d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
		if !sameYear {
			s += " de " + strconv.Itoa(t.Year())
		}
		return s
	}
}

// clock writes 14h, or 14h30 when minutes are set
func clock(t time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.Hour()))
	b.WriteString("h")
	if t.Minute() != 0 {
		fmt.Fprintf(&b, "%02d", t.Minute())
	}
	return b.String()
}
