package schedule

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// DefaultOffsetMinutes is the shift applied when a request does not name one
const DefaultOffsetMinutes = 30

type resolveConfig struct {
	useInstagramDate bool
	minutes          int
	relativeToNow    bool
	target           *time.Time
}

// ResolveOption configures ResolveNewDate
type ResolveOption func(*resolveConfig)

// WithInstagramDate anchors the request on the publish date when the category has one
func WithInstagramDate(use bool) ResolveOption {
	return func(c *resolveConfig) {
		c.useInstagramDate = use
	}
}

// WithOffset sets the shift in minutes
func WithOffset(minutes int) ResolveOption {
	return func(c *resolveConfig) {
		c.minutes = minutes
	}
}

// RelativeToNow shifts from the anchor's current value, or from now when the anchor is already in the past
func RelativeToNow(relative bool) ResolveOption {
	return func(c *resolveConfig) {
		c.relativeToNow = relative
	}
}

// WithTarget sets the new anchor value verbatim, as a drag-and-drop does
func WithTarget(t time.Time) ResolveOption {
	return func(c *resolveConfig) {
		c.target = &t
	}
}

// AnchorField returns the date a request operates on
func AnchorField(a *model.Action, useInstagramDate bool) Field {
	if useInstagramDate && a.UsesInstagramDate() {
		return FieldInstagramDate
	}
	return FieldDate
}

// ResolveNewDate turns a symbolic shift into concrete date values and restores the dual-date
// ordering around the new value. Only changed fields are returned.
//
// Without options the work date is set to now + DefaultOffsetMinutes.
func ResolveNewDate(a *model.Action, cat model.Category, now time.Time, opts ...ResolveOption) Update {
	cfg := resolveConfig{minutes: DefaultOffsetMinutes}
	for _, opt := range opts {
		opt(&cfg)
	}

	field := AnchorField(a, cfg.useInstagramDate)
	current := a.RelevantDate(field == FieldInstagramDate)

	var next time.Time
	switch {
	case cfg.target != nil:
		next = *cfg.target
	case cfg.relativeToNow:
		base := current
		if base.Before(now) {
			base = now
		}
		next = base.Add(time.Duration(cfg.minutes) * time.Minute)
	default:
		next = now.Add(time.Duration(cfg.minutes) * time.Minute)
	}

	in := AdjustInput{
		Category:             cat,
		CurrentDate:          a.Date,
		CurrentInstagramDate: a.InstagramDate,
		CurrentDuration:      a.Time,
	}
	if field == FieldInstagramDate {
		in.InstagramDate = &next
	} else {
		in.Date = &next
	}

	out := AdjustDates(in)
	out.Time = nil
	return out
}

// MoveToDay moves the anchor date to another calendar day keeping its time of day
func MoveToDay(a *model.Action, cat model.Category, day time.Time, useInstagramDate bool) Update {
	field := AnchorField(a, useInstagramDate)
	current := a.RelevantDate(field == FieldInstagramDate)

	target := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	if !current.IsZero() {
		target = time.Date(day.Year(), day.Month(), day.Day(),
			current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())
	}

	return ResolveNewDate(a, cat, target, WithInstagramDate(useInstagramDate), WithTarget(target))
}
