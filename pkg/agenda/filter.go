package agenda

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// filter returns the non-archived actions matching keep, in input order
func filter(actions []*model.Action, keep func(a *model.Action) bool) []*model.Action {
	out := make([]*model.Action, 0, len(actions))
	for _, a := range actions {
		if a == nil || a.Archived {
			continue
		}
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// TodayActions returns actions whose date falls on now's calendar day
func TodayActions(actions []*model.Action, now time.Time) []*model.Action {
	return filter(actions, func(a *model.Action) bool {
		return !a.Date.IsZero() && schedule.SameDay(a.Date, now)
	})
}

// TomorrowActions returns actions whose date falls on the calendar day after now
func TomorrowActions(actions []*model.Action, now time.Time) []*model.Action {
	tomorrow := schedule.StartOfDay(now).AddDate(0, 0, 1)
	return filter(actions, func(a *model.Action) bool {
		return !a.Date.IsZero() && schedule.SameDay(a.Date, tomorrow)
	})
}

// ThisWeekActions returns actions whose date falls in the week containing now. weekStart must be
// the same value the calendar uses.
func ThisWeekActions(actions []*model.Action, now time.Time, weekStart time.Weekday) []*model.Action {
	start, end := schedule.WeekBounds(now, weekStart)
	return filter(actions, func(a *model.Action) bool {
		return !a.Date.IsZero() && schedule.Within(a.Date.In(now.Location()), start, end)
	})
}

// MonthActions returns actions in the calendar month and year of ref
func MonthActions(actions []*model.Action, ref time.Time) []*model.Action {
	start, end := schedule.MonthBounds(ref)
	return filter(actions, func(a *model.Action) bool {
		return !a.Date.IsZero() && schedule.Within(a.Date.In(ref.Location()), start, end)
	})
}

// DelayedActions returns actions late by either of their dates
func DelayedActions(actions []*model.Action, catalog *model.Catalog, now time.Time) []*model.Action {
	return filter(actions, func(a *model.Action) bool {
		return schedule.IsActionDelayed(a, schedule.StateOf(catalog, a), now)
	})
}

// NotFinishedActions drops actions in the terminal state
func NotFinishedActions(actions []*model.Action) []*model.Action {
	return filter(actions, func(a *model.Action) bool {
		return !a.State.IsTerminal()
	})
}

// UrgentActions returns open actions with high priority
func UrgentActions(actions []*model.Action) []*model.Action {
	return filter(actions, func(a *model.Action) bool {
		return a.Priority.IsUrgent() && !a.State.IsTerminal()
	})
}

// InstagramFeed returns actions of Instagram feed categories. In strict mode the category must
// also keep both dates in the catalog.
func InstagramFeed(actions []*model.Action, catalog *model.Catalog, strict bool) []*model.Action {
	return filter(actions, func(a *model.Action) bool {
		if !a.Category.IsInstagramFeed() {
			return false
		}
		return !strict || catalog.UsesDualDate(a.Category)
	})
}
