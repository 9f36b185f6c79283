package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/utils/async"
	"github.com/bussola-app/bussola/pkg/utils/logging"
)

// ActionUseCase owns every mutation of actions and topics
type ActionUseCase struct {
	repo        interfaces.Repository
	catalog     *model.Catalog
	clock       func() time.Time
	batchLimit  int
	captions    *CaptionUseCase
	autoCaption bool
}

type actionOption func(*ActionUseCase)

func withBatchLimit(n int) actionOption {
	return func(uc *ActionUseCase) {
		uc.batchLimit = n
	}
}

func withCaptions(captions *CaptionUseCase, auto bool) actionOption {
	return func(uc *ActionUseCase) {
		uc.captions = captions
		uc.autoCaption = auto
	}
}

func NewActionUseCase(repo interfaces.Repository, catalog *model.Catalog, clock func() time.Time, opts ...actionOption) *ActionUseCase {
	uc := &ActionUseCase{
		repo:       repo,
		catalog:    catalog,
		clock:      clock,
		batchLimit: defaultBatchLimit,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// NewDraft returns an unsaved action prefilled for the category, partner and user
func (uc *ActionUseCase) NewDraft(category types.CategoryID, partner, userID string) model.ActionDraft {
	return model.NewDraft(uc.catalog, category, partner, userID, uc.clock())
}

// Create persists a draft under a new ID. Missing state, priority and duration take the catalog
// defaults and the dual-date ordering is restored before saving.
func (uc *ActionUseCase) Create(ctx context.Context, draft model.ActionDraft) (*model.Action, error) {
	if draft.State == "" {
		draft.State = uc.catalog.DefaultState()
	}
	if draft.Priority == "" {
		draft.Priority = types.PriorityMedium
	}
	if draft.Time <= 0 {
		draft.Time = uc.catalog.DurationFor(draft.Category)
	}

	action := draft.Persist(types.NewActionID(), uc.clock())
	if !action.Date.IsZero() {
		upd := schedule.AdjustDates(schedule.AdjustInput{
			Category:             uc.catalog.CategoryOrDefault(action.Category),
			CurrentDate:          action.Date,
			CurrentInstagramDate: action.InstagramDate,
			CurrentDuration:      action.Time,
			Date:                 &action.Date,
		})
		action = upd.Patch().ApplyTo(action)
	}

	if err := action.Validate(); err != nil {
		return nil, err
	}
	uc.checkIntegrity(ctx, action)

	created, err := uc.repo.Action().Create(ctx, action)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create action", goerr.V(ActionIDKey, action.ID))
	}

	if uc.autoCaption && uc.captions != nil && uc.captions.Enabled() && created.UsesInstagramDate() && created.Description == "" {
		id := created.ID
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.fillDescription(ctx, id)
		})
	}

	return created, nil
}

// Get returns an action by ID
func (uc *ActionUseCase) Get(ctx context.Context, id types.ActionID) (*model.Action, error) {
	return getAction(ctx, uc.repo, id)
}

// Update merges the patch into the action. Date, publish date, duration and category edits go
// through the dual-date rule, so the saved dates may differ from the requested ones.
func (uc *ActionUseCase) Update(ctx context.Context, id types.ActionID, patch model.ActionPatch) (*model.Action, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, current, patch)
}

// UpdateMany applies the same patch to several actions in parallel. It stops at the first failure;
// actions already written stay written.
func (uc *ActionUseCase) UpdateMany(ctx context.Context, ids []types.ActionID, patch model.ActionPatch) ([]*model.Action, error) {
	if len(ids) == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "no action to update")
	}

	out := make([]*model.Action, len(ids))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(uc.batchLimit)

	for i, id := range ids {
		eg.Go(func() error {
			updated, err := uc.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			out[i] = updated
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Archive hides the action from every listing. It can be recovered.
func (uc *ActionUseCase) Archive(ctx context.Context, id types.ActionID) (*model.Action, error) {
	archived := true
	return uc.Update(ctx, id, model.ActionPatch{Archived: &archived})
}

// Recover brings an archived action back
func (uc *ActionUseCase) Recover(ctx context.Context, id types.ActionID) (*model.Action, error) {
	archived := false
	return uc.Update(ctx, id, model.ActionPatch{Archived: &archived})
}

// Destroy permanently removes the action
func (uc *ActionUseCase) Destroy(ctx context.Context, id types.ActionID) error {
	if err := uc.repo.Action().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete action", goerr.V(ActionIDKey, id))
	}
	return nil
}

// Duplicate copies the action under a new ID with fresh timestamps. The copy is active and
// pinned to nobody's sprint.
func (uc *ActionUseCase) Duplicate(ctx context.Context, id types.ActionID) (*model.Action, error) {
	src, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := model.DraftOf(src).Persist(types.NewActionID(), uc.clock())
	created, err := uc.repo.Action().Create(ctx, dup)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to duplicate action", goerr.V(ActionIDKey, id))
	}
	return created, nil
}

// SetSprint pins the action to the user's sprint
func (uc *ActionUseCase) SetSprint(ctx context.Context, id types.ActionID, userID string) (*model.Action, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user is required", goerr.V(ActionIDKey, id))
	}
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.InSprint(userID) {
		return current, nil
	}
	return uc.apply(ctx, current, model.SprintAdded(current, userID))
}

// UnsetSprint unpins the action from the user's sprint
func (uc *ActionUseCase) UnsetSprint(ctx context.Context, id types.ActionID, userID string) (*model.Action, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user is required", goerr.V(ActionIDKey, id))
	}
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.InSprint(userID) {
		return current, nil
	}
	return uc.apply(ctx, current, model.SprintRemoved(current, userID))
}

// RemovePartner detaches a partner. The last partner cannot be removed.
func (uc *ActionUseCase) RemovePartner(ctx context.Context, id types.ActionID, slug string) (*model.Action, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	partners, err := current.RemovePartner(slug)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, current, model.ActionPatch{Partners: partners})
}

// RemoveResponsible detaches a user. The last responsible cannot be removed.
func (uc *ActionUseCase) RemoveResponsible(ctx context.Context, id types.ActionID, userID string) (*model.Action, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	responsibles, err := current.RemoveResponsible(userID)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, current, model.ActionPatch{Responsibles: responsibles})
}

// CreateTopic records a discussion topic for the partner's next meeting
func (uc *ActionUseCase) CreateTopic(ctx context.Context, partner, title, userID string) (*model.Topic, error) {
	if partner == "" || title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "topic needs a partner and a title",
			goerr.V(PartnerKey, partner))
	}

	topic := &model.Topic{
		ID:        types.NewTopicID(),
		Partner:   partner,
		Title:     title,
		UserID:    userID,
		CreatedAt: uc.clock(),
	}
	created, err := uc.repo.Topic().Create(ctx, topic)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create topic", goerr.V(PartnerKey, partner))
	}
	return created, nil
}

// ListTopics returns the partner's topics, newest first
func (uc *ActionUseCase) ListTopics(ctx context.Context, partner string) ([]*model.Topic, error) {
	topics, err := uc.repo.Topic().ListByPartner(ctx, partner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list topics", goerr.V(PartnerKey, partner))
	}
	return topics, nil
}

// apply merges patch into current, restores the date rules, validates and saves
func (uc *ActionUseCase) apply(ctx context.Context, current *model.Action, patch model.ActionPatch) (*model.Action, error) {
	if patch.IsEmpty() {
		return current, nil
	}

	next := patch.ApplyTo(current)
	categoryChanged := patch.CategoryChanged(current)
	if patch.Date != nil || patch.InstagramDate != nil || patch.Time != nil || categoryChanged {
		next.Date, next.InstagramDate, next.Time = current.Date, current.InstagramDate, current.Time
		upd := schedule.AdjustDates(schedule.AdjustInput{
			Category:             uc.catalog.CategoryOrDefault(next.Category),
			CategoryChanged:      categoryChanged,
			CurrentDate:          current.Date,
			CurrentInstagramDate: current.InstagramDate,
			CurrentDuration:      current.Time,
			Date:                 patch.Date,
			InstagramDate:        patch.InstagramDate,
			Time:                 patch.Time,
		})
		next = upd.Patch().ApplyTo(next)
	}

	if err := next.Validate(); err != nil {
		return nil, err
	}
	next.UpdatedAt = uc.clock()
	uc.checkIntegrity(ctx, next)

	updated, err := uc.repo.Action().Update(ctx, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, next.ID))
		}
		return nil, goerr.Wrap(err, "failed to update action", goerr.V(ActionIDKey, next.ID))
	}
	return updated, nil
}

// fillDescription stores a generated caption unless someone wrote a description meanwhile
func (uc *ActionUseCase) fillDescription(ctx context.Context, id types.ActionID) error {
	caption, err := uc.captions.Generate(ctx, id)
	if err != nil {
		return err
	}

	current, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.Description != "" {
		return nil
	}

	text := caption.Render()
	if _, err := uc.apply(ctx, current, model.ActionPatch{Description: &text}); err != nil {
		return err
	}
	logging.From(ctx).Info("caption drafted", slog.String(ActionIDKey, id.String()))
	return nil
}

// checkIntegrity logs references the catalog does not know. The action is still saved.
func (uc *ActionUseCase) checkIntegrity(ctx context.Context, a *model.Action) {
	warnUnknownRefs(ctx, uc.catalog, a)
}

func warnUnknownRefs(ctx context.Context, catalog *model.Catalog, a *model.Action) {
	logger := logging.From(ctx)
	if _, ok := catalog.Category(a.Category); !ok {
		logger.Warn("action has unknown category",
			slog.String(ActionIDKey, a.ID.String()),
			slog.String("category", string(a.Category)),
		)
	}
	if _, ok := catalog.State(a.State); !ok {
		logger.Warn("action has unknown state",
			slog.String(ActionIDKey, a.ID.String()),
			slog.String("state", string(a.State)),
		)
	}
}

func getAction(ctx context.Context, repo interfaces.Repository, id types.ActionID) (*model.Action, error) {
	if id == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "action id is required")
	}
	a, err := repo.Action().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get action", goerr.V(ActionIDKey, id))
	}
	return a, nil
}
