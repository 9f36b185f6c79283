package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// ApplyShortcut resolves a keyboard shortcut into an update of the action. Date shortcuts are
// looked up first, then the category, state and priority keys of the catalog.
func (uc *ActionUseCase) ApplyShortcut(ctx context.Context, id types.ActionID, key string, useInstagramDate bool) (*model.Action, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s, ok := schedule.LookupShortcut(key); ok {
		cat := uc.catalog.CategoryOrDefault(current.Category)
		upd := schedule.ResolveNewDate(current, cat, uc.clock(), s.Options(useInstagramDate)...)
		return uc.apply(ctx, current, upd.Patch())
	}

	if c, ok := uc.catalog.CategoryByShortcut(key); ok {
		return uc.apply(ctx, current, model.ActionPatch{Category: &c.ID})
	}
	if s, ok := uc.catalog.StateByShortcut(key); ok {
		return uc.apply(ctx, current, model.ActionPatch{State: &s.ID})
	}
	if p, ok := uc.catalog.PriorityByShortcut(key); ok {
		return uc.apply(ctx, current, model.ActionPatch{Priority: &p.ID})
	}

	return nil, goerr.Wrap(ErrUnknownShortcut, "no binding for key",
		goerr.V(ShortcutKey, key), goerr.V(ActionIDKey, id))
}

// MoveToDay moves the action to another day of the calendar keeping its time of day
func (uc *ActionUseCase) MoveToDay(ctx context.Context, id types.ActionID, day time.Time, useInstagramDate bool) (*model.Action, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cat := uc.catalog.CategoryOrDefault(current.Category)
	upd := schedule.MoveToDay(current, cat, day, useInstagramDate)
	return uc.apply(ctx, current, upd.Patch())
}
