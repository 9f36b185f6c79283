package schedule

import (
	"strconv"
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// PublishBuffer is the minimum lead of the work date over the Instagram publish date
const PublishBuffer = time.Hour

// Field names one of the two dates of an action
type Field int

const (
	FieldDate Field = iota
	FieldInstagramDate
)

// AdjustInput describes the current dates of an action and the overrides a user edit supplies
type AdjustInput struct {
	// Category is the action's category after the edit. Its Duration is the required duration.
	Category        model.Category
	CategoryChanged bool

	CurrentDate          time.Time
	CurrentInstagramDate time.Time
	CurrentDuration      int

	Date          *time.Time
	InstagramDate *time.Time
	Time          *int
}

// Update holds only the fields an adjustment changed
type Update struct {
	Date          *time.Time
	InstagramDate *time.Time
	Time          *int
}

// IsEmpty reports whether nothing changed
func (u Update) IsEmpty() bool {
	return u.Date == nil && u.InstagramDate == nil && u.Time == nil
}

// Patch converts the update into an action patch for the persistence boundary
func (u Update) Patch() model.ActionPatch {
	return model.ActionPatch{
		Date:          u.Date,
		InstagramDate: u.InstagramDate,
		Time:          u.Time,
	}
}

// Strings renders the changed fields with their persisted names and formats
func (u Update) Strings() map[string]string {
	out := make(map[string]string, 3)
	if u.Date != nil {
		out["date"] = Format(*u.Date)
	}
	if u.InstagramDate != nil {
		out["instagram_date"] = Format(*u.InstagramDate)
	}
	if u.Time != nil {
		out["time"] = strconv.Itoa(*u.Time)
	}
	return out
}

// AdjustDates applies user overrides and restores the ordering of the work and publish dates.
//
// For dual-date categories the work date must stay at least PublishBuffer before the publish date.
// The field being edited wins: editing the work date pushes the publish date forward, editing the
// publish date pulls the work date back. When both or neither are edited the work date wins.
// The duration is reset to the category's required duration only when the category changed and
// the caller did not supply a duration explicitly.
func AdjustDates(in AdjustInput) Update {
	var out Update

	date := in.CurrentDate
	if in.Date != nil {
		date = *in.Date
	}

	switch {
	case in.Category.DualDate && in.Category.ID.IsInstagramFeed():
		ig := in.CurrentInstagramDate
		if in.InstagramDate != nil {
			ig = *in.InstagramDate
		}
		edited := FieldDate
		if in.InstagramDate != nil && in.Date == nil {
			edited = FieldInstagramDate
		}
		date, ig = reconcile(date, ig, edited)
		if !ig.Equal(in.CurrentInstagramDate) {
			out.InstagramDate = &ig
		}

	case in.InstagramDate != nil && in.Category.ID.IsInstagramFeed():
		// publish date is togglable for this category but not tied to the work date
		if ig := *in.InstagramDate; !ig.Equal(in.CurrentInstagramDate) {
			out.InstagramDate = &ig
		}
	}

	if !date.Equal(in.CurrentDate) {
		out.Date = &date
	}

	duration := in.CurrentDuration
	if in.Time != nil {
		duration = *in.Time
	} else if in.CategoryChanged {
		duration = in.Category.Duration
	}
	if duration != in.CurrentDuration {
		out.Time = &duration
	}

	return out
}

// reconcile returns (date, instagramDate) satisfying date <= instagramDate - PublishBuffer.
// An unset publish date is filled from the work date.
func reconcile(date, ig time.Time, edited Field) (time.Time, time.Time) {
	if date.IsZero() {
		return date, ig
	}
	if ig.IsZero() {
		return date, date.Add(PublishBuffer)
	}
	if !date.After(ig.Add(-PublishBuffer)) {
		return date, ig
	}
	if edited == FieldInstagramDate {
		return ig.Add(-PublishBuffer), ig
	}
	return date, date.Add(PublishBuffer)
}

// HoldsPublishOrder reports whether the action's dates satisfy the dual-date ordering.
// Actions outside dual-date categories always hold.
func HoldsPublishOrder(a *model.Action, cat model.Category) bool {
	if !cat.DualDate || !a.Category.IsInstagramFeed() || a.Date.IsZero() || a.InstagramDate.IsZero() {
		return true
	}
	return !a.Date.After(a.InstagramDate.Add(-PublishBuffer))
}
