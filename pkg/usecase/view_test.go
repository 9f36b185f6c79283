package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/agenda"
	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
	"github.com/bussola-app/bussola/pkg/utils/logging"
)

type viewFixture struct {
	uc       *usecase.UseCases
	early    *model.Action
	tomorrow *model.Action
	finished *model.Action
	april    *model.Action
}

func newViewFixture(t *testing.T) viewFixture {
	t.Helper()
	uc, _ := newUseCases(t)

	early := draft("hoje cedo", types.CategoryTodo, at(13, 9, 0))
	early.State = types.StateDo
	early.Priority = types.PriorityHigh

	tomorrow := draft("amanhã", types.CategoryReels, at(14, 10, 0))
	tomorrow.State = types.StateDoing

	finished := draft("finalizado", types.CategoryTodo, at(11, 10, 0))
	finished.State = types.StateFinished

	april := draft("abril", types.CategoryMeeting, at(13, 0, 0).AddDate(0, 0, 20))
	april.Partners = []string{"academia"}
	april.Responsibles = []string{"U2"}

	f := viewFixture{
		uc:       uc,
		early:    create(t, uc, early),
		tomorrow: create(t, uc, tomorrow),
		finished: create(t, uc, finished),
		april:    create(t, uc, april),
	}
	_, err := uc.Action.SetSprint(context.Background(), f.tomorrow.ID, "U1")
	gt.NoError(t, err).Required()
	return f
}

func ids(actions []*model.Action) []types.ActionID {
	out := make([]types.ActionID, len(actions))
	for i, a := range actions {
		out[i] = a.ID
	}
	return out
}

func TestViewUseCase_List(t *testing.T) {
	ctx := context.Background()
	f := newViewFixture(t)

	got, err := f.uc.View.List(ctx, usecase.ListInput{
		ListActionOptions: interfaces.ListActionOptions{Partner: "padaria"},
		OrderBy:           types.OrderByTitle,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, ids(got)).Equal([]types.ActionID{f.tomorrow.ID, f.finished.ID, f.early.ID})

	got, err = f.uc.View.List(ctx, usecase.ListInput{
		ListActionOptions: interfaces.ListActionOptions{Partner: "padaria"},
		Direction:         types.DirectionDesc,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, ids(got)).Equal([]types.ActionID{f.tomorrow.ID, f.early.ID, f.finished.ID})

	got, err = f.uc.View.List(ctx, usecase.ListInput{
		ListActionOptions: interfaces.ListActionOptions{Responsible: "U2"},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, ids(got)).Equal([]types.ActionID{f.april.ID})
}

func TestViewUseCase_List_WarnsUnknownState(t *testing.T) {
	uc, _ := newUseCases(t)
	d := draft("estado perdido", types.CategoryTodo, at(14, 10, 0))
	d.State = types.StateID("limbo")
	a := create(t, uc, d)

	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	got, err := uc.View.List(ctx, usecase.ListInput{})
	gt.NoError(t, err).Required()
	gt.Value(t, ids(got)).Equal([]types.ActionID{a.ID})
	gt.String(t, buf.String()).Contains("action has unknown state")
	gt.String(t, buf.String()).Contains("limbo")
}

func TestViewUseCase_Dashboard(t *testing.T) {
	f := newViewFixture(t)

	d, err := f.uc.View.Dashboard(context.Background(), "U1")
	gt.NoError(t, err).Required()

	gt.Value(t, ids(d.Today)).Equal([]types.ActionID{f.early.ID})
	gt.Value(t, ids(d.Tomorrow)).Equal([]types.ActionID{f.tomorrow.ID})
	gt.Value(t, ids(d.ThisWeek)).Equal([]types.ActionID{f.finished.ID, f.early.ID, f.tomorrow.ID})
	gt.Value(t, ids(d.Month)).Equal([]types.ActionID{f.finished.ID, f.early.ID, f.tomorrow.ID})
	gt.Value(t, ids(d.Delayed)).Equal([]types.ActionID{f.early.ID})
	gt.Value(t, ids(d.NotFinished)).Equal([]types.ActionID{f.early.ID, f.tomorrow.ID})
	gt.Value(t, ids(d.Urgent)).Equal([]types.ActionID{f.early.ID})
	gt.Value(t, ids(d.InstagramFeed)).Equal([]types.ActionID{f.tomorrow.ID})
	gt.Value(t, ids(d.Sprint)).Equal([]types.ActionID{f.tomorrow.ID})

	everyone, err := f.uc.View.Dashboard(context.Background(), "")
	gt.NoError(t, err).Required()
	gt.Array(t, everyone.Sprint).Length(0)
	gt.Array(t, everyone.Month).Length(3)
}

func TestViewUseCase_Calendar(t *testing.T) {
	f := newViewFixture(t)

	days, err := f.uc.View.Calendar(context.Background(), at(1, 0, 0), "", false)
	gt.NoError(t, err).Required()

	byDay := map[string]agenda.Day{}
	for _, d := range days {
		byDay[d.Date.Format(schedule.DayLayout)] = d
	}

	gt.Value(t, ids(byDay["2024-03-13"].Actions)).Equal([]types.ActionID{f.early.ID})
	gt.Bool(t, byDay["2024-03-13"].IsToday).True()
	gt.Number(t, byDay["2024-03-13"].Delayed).Equal(1)
	gt.Value(t, ids(byDay["2024-03-14"].Actions)).Equal([]types.ActionID{f.tomorrow.ID})

	// 2024-04-02 trails the March grid
	apr := byDay["2024-04-02"]
	gt.Bool(t, apr.InMonth).False()
	gt.Value(t, ids(apr.Actions)).Equal([]types.ActionID{f.april.ID})

	padaria, err := f.uc.View.Calendar(context.Background(), at(1, 0, 0), "padaria", false)
	gt.NoError(t, err).Required()
	total := 0
	for _, d := range padaria {
		total += len(d.Actions)
	}
	gt.Number(t, total).Equal(3)
}

func TestViewUseCase_Kanban(t *testing.T) {
	f := newViewFixture(t)
	catalog := f.uc.Catalog()

	cols, err := f.uc.View.Kanban(context.Background(), "padaria")
	gt.NoError(t, err).Required()
	gt.Array(t, cols).Length(len(catalog.States)).Required()

	byState := map[types.StateID][]types.ActionID{}
	for _, c := range cols {
		byState[c.State.ID] = ids(c.Actions)
	}
	gt.Value(t, byState[types.StateDo]).Equal([]types.ActionID{f.early.ID})
	gt.Value(t, byState[types.StateDoing]).Equal([]types.ActionID{f.tomorrow.ID})
	gt.Value(t, byState[types.StateFinished]).Equal([]types.ActionID{f.finished.ID})
}

func TestViewUseCase_FormatDatetime(t *testing.T) {
	ctx := context.Background()
	f := newViewFixture(t)

	got, err := f.uc.View.FormatDatetime(ctx, f.early.ID, false,
		datefmt.WithDateFormat(datefmt.DateShort), datefmt.WithTimeFormat(datefmt.TimeHour))
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal("13/3 às 9h")

	got, err = f.uc.View.FormatDatetime(ctx, f.tomorrow.ID, true, datefmt.WithTimeFormat(datefmt.TimeHour))
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal("11h")

	got, err = f.uc.View.FormatDatetime(ctx, f.tomorrow.ID, false)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal("quinta-feira, 14 de março às 10h")

	undated := create(t, f.uc, draft("sem data", types.CategoryTodo, time.Time{}))
	got, err = f.uc.View.FormatDatetime(ctx, undated.ID, false)
	gt.NoError(t, err).Required()
	gt.Value(t, got).Equal("")

	_, err = f.uc.View.FormatDatetime(ctx, f.early.ID, false, datefmt.WithDateFormat(9))
	gt.Error(t, err).Is(datefmt.ErrInvalidFormat)
}
