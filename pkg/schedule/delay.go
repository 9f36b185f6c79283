package schedule

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// IsDelayed reports whether the relevant date of the action is strictly before now.
//
// A terminal state is never late. A nil state means the action's state slug is missing from the
// catalog; such an action is not exempt and its date is evaluated. Actions without a date are
// never late. The result depends on now and must not be cached across calls.
func IsDelayed(a *model.Action, state *model.State, useInstagramDate bool, now time.Time) bool {
	if state != nil && state.ID.IsTerminal() {
		return false
	}
	d := a.RelevantDate(useInstagramDate)
	if d.IsZero() {
		return false
	}
	return d.Before(now)
}

// IsActionDelayed reports whether the action is late by its work date or, for Instagram feed
// categories, by its publish date.
func IsActionDelayed(a *model.Action, state *model.State, now time.Time) bool {
	if IsDelayed(a, state, false, now) {
		return true
	}
	return a.UsesInstagramDate() && IsDelayed(a, state, true, now)
}

// StateOf resolves the action's state in the catalog. It returns nil when the slug is unknown.
func StateOf(catalog *model.Catalog, a *model.Action) *model.State {
	s, ok := catalog.State(a.State)
	if !ok {
		return nil
	}
	return &s
}
