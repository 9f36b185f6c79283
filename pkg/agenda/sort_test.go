package agenda_test

import (
	"slices"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/agenda"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

var (
	catalog = model.DefaultCatalog()
	base    = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)
)

func titles(actions []*model.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Title
	}
	return out
}

func TestSortActions_Priority(t *testing.T) {
	actions := []*model.Action{
		{Title: "A", Priority: types.PriorityHigh, Date: base},
		{Title: "B", Priority: types.PriorityLow, Date: base},
		{Title: "C", Priority: types.PriorityMedium, Date: base},
	}

	sorted := agenda.SortActions(actions, types.OrderByPriority, types.DirectionAsc, agenda.SortOptions{Catalog: catalog})
	gt.Value(t, titles(sorted)).Equal([]string{"A", "C", "B"})
	gt.Value(t, titles(actions)).Equal([]string{"A", "B", "C"})
}

func TestSortActions_StateTieBreaksByDate(t *testing.T) {
	actions := []*model.Action{
		{Title: "late doing", State: types.StateDoing, Date: base.Add(2 * time.Hour)},
		{Title: "finished", State: types.StateFinished, Date: base},
		{Title: "early doing", State: types.StateDoing, Date: base.Add(time.Hour)},
		{Title: "idea", State: types.StateIdea, Date: base.Add(5 * time.Hour)},
		{Title: "unknown", State: "blocked", Date: base},
	}
	opts := agenda.SortOptions{Catalog: catalog}

	asc := agenda.SortActions(actions, types.OrderByState, types.DirectionAsc, opts)
	gt.Value(t, titles(asc)).Equal([]string{"idea", "early doing", "late doing", "finished", "unknown"})

	desc := agenda.SortActions(actions, types.OrderByState, types.DirectionDesc, opts)
	gt.Value(t, titles(desc)).Equal([]string{"unknown", "finished", "early doing", "late doing", "idea"})
}

func TestSortActions_DirectionKeepsTieBreaks(t *testing.T) {
	var actions []*model.Action
	states := []types.StateID{types.StateDo, types.StateReview, types.StateIdea}
	for i := range 12 {
		actions = append(actions, &model.Action{
			Title: string(rune('a' + i)),
			State: states[i%len(states)],
			Date:  base.Add(time.Duration(11-i) * time.Hour),
		})
	}
	opts := agenda.SortOptions{Catalog: catalog}

	asc := agenda.SortActions(actions, types.OrderByState, types.DirectionAsc, opts)
	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	desc := agenda.SortActions(reversed, types.OrderByState, types.DirectionDesc, opts)

	group := func(list []*model.Action) map[types.StateID][]string {
		out := map[types.StateID][]string{}
		for _, a := range list {
			out[a.State] = append(out[a.State], a.Title)
		}
		return out
	}
	primary := func(list []*model.Action) []types.StateID {
		var out []types.StateID
		for _, a := range list {
			if len(out) == 0 || out[len(out)-1] != a.State {
				out = append(out, a.State)
			}
		}
		return out
	}

	ascOrder := primary(asc)
	slices.Reverse(ascOrder)
	gt.Value(t, primary(desc)).Equal(ascOrder)
	gt.Value(t, group(desc)).Equal(group(asc))

	again := agenda.SortActions(actions, types.OrderByState, types.DirectionAsc, opts)
	gt.Value(t, titles(again)).Equal(titles(asc))
}

func TestSortActions_Date(t *testing.T) {
	actions := []*model.Action{
		{Title: "Ônibus", Category: types.CategoryTodo, Date: base},
		{Title: "later", Category: types.CategoryTodo, Date: base.Add(time.Hour)},
		{Title: "undated", Category: types.CategoryTodo},
		{Title: "abacate", Category: types.CategoryTodo, Date: base},
		{Title: "feed", Category: types.CategoryPost, Date: base.Add(3 * time.Hour), InstagramDate: base.Add(-time.Hour)},
	}

	t.Run("work date", func(t *testing.T) {
		sorted := agenda.SortActions(actions, types.OrderByDate, types.DirectionAsc, agenda.SortOptions{Catalog: catalog})
		gt.Value(t, titles(sorted)).Equal([]string{"abacate", "Ônibus", "later", "feed", "undated"})
	})

	t.Run("publish date", func(t *testing.T) {
		sorted := agenda.SortActions(actions, types.OrderByTime, types.DirectionAsc, agenda.SortOptions{Catalog: catalog, UseInstagramDate: true})
		gt.Value(t, titles(sorted)).Equal([]string{"feed", "abacate", "Ônibus", "later", "undated"})
	})

	t.Run("descending keeps title tie-break", func(t *testing.T) {
		sorted := agenda.SortActions(actions, types.OrderByDate, types.DirectionDesc, agenda.SortOptions{Catalog: catalog})
		gt.Value(t, titles(sorted)).Equal([]string{"undated", "feed", "later", "abacate", "Ônibus"})
	})
}

func TestSortActions_TitleCollation(t *testing.T) {
	actions := []*model.Action{
		{Title: "ônibus"},
		{Title: "Zebra"},
		{Title: "avião"},
		{Title: "Árvore"},
		{Title: "caderno"},
		{Title: "Óculos"},
	}

	sorted := agenda.SortActions(actions, types.OrderByTitle, types.DirectionAsc, agenda.SortOptions{})
	gt.Value(t, titles(sorted)).Equal([]string{"Árvore", "avião", "caderno", "Óculos", "ônibus", "Zebra"})
}

func TestSortActions_Empty(t *testing.T) {
	gt.Array(t, agenda.SortActions(nil, types.OrderByDate, types.DirectionAsc, agenda.SortOptions{})).Length(0)
}

func TestSortActions_UndatedFollowsDirection(t *testing.T) {
	actions := []*model.Action{
		{Title: "sem data", Category: types.CategoryTodo},
		{Title: "cedo", Category: types.CategoryTodo, Date: base},
		{Title: "rascunho", Category: types.CategoryTodo},
		{Title: "tarde", Category: types.CategoryTodo, Date: base.Add(2 * time.Hour)},
	}
	opts := agenda.SortOptions{Catalog: catalog}

	asc := agenda.SortActions(actions, types.OrderByDate, types.DirectionAsc, opts)
	gt.Value(t, titles(asc)).Equal([]string{"cedo", "tarde", "rascunho", "sem data"})

	desc := agenda.SortActions(actions, types.OrderByDate, types.DirectionDesc, opts)
	gt.Value(t, titles(desc)).Equal([]string{"rascunho", "sem data", "tarde", "cedo"})
}
