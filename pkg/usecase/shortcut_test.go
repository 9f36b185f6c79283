package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/usecase"
)

func TestActionUseCase_ApplyShortcut_Date(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		date time.Time
		key  string
		want time.Time
	}{
		{"push an hour from a past date", at(12, 10, 0), "h", at(13, 13, 0)},
		{"push three hours from a future date", at(20, 10, 0), "H", at(20, 13, 0)},
		{"push a day", at(20, 10, 0), "d", at(21, 10, 0)},
		{"push a week", at(20, 10, 0), "w", at(27, 10, 0)},
		{"now", at(20, 10, 0), "n", at(13, 12, 30)},
		{"tomorrow", at(2, 10, 0), "T", at(14, 12, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCases(t)
			a := create(t, uc, draft("Tarefa", types.CategoryTodo, tt.date))

			got, err := uc.Action.ApplyShortcut(ctx, a.ID, tt.key, false)
			gt.NoError(t, err).Required()
			gt.Value(t, got.Date).Equal(tt.want)
			gt.Number(t, got.Time).Equal(a.Time)
		})
	}
}

func TestActionUseCase_ApplyShortcut_PublishDate(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (*usecase.UseCases, *model.Action) {
		uc, _ := newUseCases(t)
		d := draft("Reels", types.CategoryReels, at(14, 10, 0))
		d.InstagramDate = at(14, 11, 0)
		return uc, create(t, uc, d)
	}

	t.Run("publish date anchor", func(t *testing.T) {
		uc, a := setup(t)
		got, err := uc.Action.ApplyShortcut(ctx, a.ID, "h", true)
		gt.NoError(t, err).Required()
		gt.Value(t, got.InstagramDate).Equal(at(14, 12, 0))
		gt.Value(t, got.Date).Equal(at(14, 10, 0))
	})

	t.Run("work date anchor pushes the publish date", func(t *testing.T) {
		uc, a := setup(t)
		got, err := uc.Action.ApplyShortcut(ctx, a.ID, "h", false)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Date).Equal(at(14, 11, 0))
		gt.Value(t, got.InstagramDate).Equal(at(14, 12, 0))
	})
}

func TestActionUseCase_ApplyShortcut_Catalog(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCases(t)
	a := create(t, uc, draft("Tarefa", types.CategoryTodo, at(14, 10, 0)))

	got, err := uc.Action.ApplyShortcut(ctx, a.ID, "m", false)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Category).Equal(types.CategoryMeeting)
	gt.Number(t, got.Time).Equal(60)

	got, err = uc.Action.ApplyShortcut(ctx, a.ID, "3", false)
	gt.NoError(t, err).Required()
	gt.Value(t, got.State).Equal(types.StateDoing)

	got, err = uc.Action.ApplyShortcut(ctx, a.ID, "!", false)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Priority).Equal(types.PriorityHigh)

	_, err = uc.Action.ApplyShortcut(ctx, a.ID, "z", false)
	gt.Error(t, err).Is(usecase.ErrUnknownShortcut)

	_, err = uc.Action.ApplyShortcut(ctx, types.NewActionID(), "h", false)
	gt.Error(t, err).Is(usecase.ErrActionNotFound)
}

func TestActionUseCase_MoveToDay(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T) (*usecase.UseCases, *model.Action) {
		uc, _ := newUseCases(t)
		d := draft("Reels", types.CategoryReels, at(14, 10, 0))
		d.InstagramDate = at(14, 11, 0)
		return uc, create(t, uc, d)
	}

	t.Run("work date keeps its time of day", func(t *testing.T) {
		uc, a := setup(t)
		got, err := uc.Action.MoveToDay(ctx, a.ID, at(20, 0, 0), false)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Date).Equal(at(20, 10, 0))
		gt.Value(t, got.InstagramDate).Equal(at(20, 11, 0))
	})

	t.Run("publish date moves alone while the order holds", func(t *testing.T) {
		uc, a := setup(t)
		got, err := uc.Action.MoveToDay(ctx, a.ID, at(20, 0, 0), true)
		gt.NoError(t, err).Required()
		gt.Value(t, got.InstagramDate).Equal(at(20, 11, 0))
		gt.Value(t, got.Date).Equal(at(14, 10, 0))
	})

	t.Run("publish date moved earlier pulls the work date", func(t *testing.T) {
		uc, a := setup(t)
		got, err := uc.Action.MoveToDay(ctx, a.ID, at(13, 0, 0), true)
		gt.NoError(t, err).Required()
		gt.Value(t, got.InstagramDate).Equal(at(13, 11, 0))
		gt.Value(t, got.Date).Equal(at(13, 10, 0))
	})
}
