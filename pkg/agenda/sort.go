package agenda

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

// SortOptions carries the reference data a sort may need
type SortOptions struct {
	Catalog          *model.Catalog
	UseInstagramDate bool
}

// newCollator returns a pt-BR collator ignoring case and diacritics.
// A collator is not safe for concurrent use, so every sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.IgnoreDiacritics)
}

// SortActions returns a new slice ordered by the given key.
//
// Direction reverses only the primary key. Tie-breaks always resolve the same way: state and
// priority ties fall back to the relevant date ascending, date ties fall back to the title.
// Remaining ties keep their input order. The input slice is not modified.
//
// Undated actions rank as the latest possible date, so they sort last under DirectionAsc and
// first under DirectionDesc when ordering by date or time.
func SortActions(actions []*model.Action, by types.OrderBy, dir types.Direction, opts SortOptions) []*model.Action {
	out := slices.Clone(actions)
	col := newCollator()

	date := func(a *model.Action) int64 {
		d := a.RelevantDate(opts.UseInstagramDate)
		if d.IsZero() {
			// undated ranks after every dated action, before direction is applied
			return 1<<63 - 1
		}
		return d.UnixNano()
	}
	byTitle := func(a, b *model.Action) int {
		return col.CompareString(a.Title, b.Title)
	}
	byDate := func(a, b *model.Action) int {
		return cmp.Compare(date(a), date(b))
	}

	var primary, tieBreak func(a, b *model.Action) int
	switch by {
	case types.OrderByState:
		primary = func(a, b *model.Action) int {
			return cmp.Compare(opts.Catalog.StateRank(a.State), opts.Catalog.StateRank(b.State))
		}
		tieBreak = byDate
	case types.OrderByPriority:
		primary = func(a, b *model.Action) int {
			return cmp.Compare(opts.Catalog.PriorityRank(a.Priority), opts.Catalog.PriorityRank(b.Priority))
		}
		tieBreak = byDate
	case types.OrderByTitle:
		primary = byTitle
		tieBreak = byDate
	default:
		primary = byDate
		tieBreak = byTitle
	}

	sign := 1
	if dir == types.DirectionDesc {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b *model.Action) int {
		if c := primary(a, b); c != 0 {
			return sign * c
		}
		return tieBreak(a, b)
	})
	return out
}
