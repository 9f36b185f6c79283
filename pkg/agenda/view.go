package agenda

import (
	"cmp"
	"slices"
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// Day is one cell of a month calendar
type Day struct {
	Date      time.Time
	InMonth   bool
	IsToday   bool
	Actions   []*model.Action
	Delayed   int
	TotalTime int // minutes
}

// GroupByDay lays the actions of ref's month out on whole calendar weeks. Each day is sorted by
// the relevant date. Actions outside the visible range are dropped.
func GroupByDay(actions []*model.Action, ref, now time.Time, opts SortOptions) []Day {
	weekStart := time.Sunday
	if opts.Catalog != nil {
		weekStart = opts.Catalog.WeekStart
	}
	days := schedule.CalendarDays(ref, weekStart)
	index := make(map[string]int, len(days))
	out := make([]Day, len(days))
	for i, d := range days {
		index[d.Format(schedule.DayLayout)] = i
		out[i] = Day{
			Date:    d,
			InMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday: schedule.SameDay(d, now),
		}
	}

	sorted := SortActions(actions, types.OrderByDate, types.DirectionAsc, opts)
	for _, a := range active(sorted) {
		d := a.RelevantDate(opts.UseInstagramDate)
		if d.IsZero() {
			continue
		}
		i, ok := index[d.In(ref.Location()).Format(schedule.DayLayout)]
		if !ok {
			continue
		}
		out[i].Actions = append(out[i].Actions, a)
		out[i].TotalTime += a.Time
		if schedule.IsActionDelayed(a, schedule.StateOf(opts.Catalog, a), now) {
			out[i].Delayed++
		}
	}
	return out
}

// Column is one kanban column
type Column struct {
	State   model.State
	Actions []*model.Action
}

// GroupByState splits the actions into one column per catalog state in rank order, each sorted
// by priority. Actions with a state missing from the catalog land in a trailing column.
func GroupByState(actions []*model.Action, opts SortOptions) []Column {
	var states []model.State
	if opts.Catalog != nil {
		states = append(states, opts.Catalog.States...)
	}
	sortStates(states)

	index := make(map[types.StateID]int, len(states))
	cols := make([]Column, len(states))
	for i, s := range states {
		index[s.ID] = i
		cols[i] = Column{State: s}
	}

	var unknown []*model.Action
	sorted := SortActions(actions, types.OrderByPriority, types.DirectionAsc, opts)
	for _, a := range active(sorted) {
		if i, ok := index[a.State]; ok {
			cols[i].Actions = append(cols[i].Actions, a)
			continue
		}
		unknown = append(unknown, a)
	}
	if len(unknown) > 0 {
		cols = append(cols, Column{State: model.State{Title: "Sem status"}, Actions: unknown})
	}
	return cols
}

func active(actions []*model.Action) []*model.Action {
	return filter(actions, func(*model.Action) bool { return true })
}

func sortStates(states []model.State) {
	slices.SortStableFunc(states, func(a, b model.State) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
}
