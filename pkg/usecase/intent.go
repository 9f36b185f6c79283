package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

// Submission is a mutation tagged with its intent. Only the fields the intent reads are used.
type Submission struct {
	Intent types.Intent

	// ID targets single-action intents, IDs targets updateActions
	ID  types.ActionID
	IDs []types.ActionID

	// Draft is the new action of createAction
	Draft model.ActionDraft
	// Patch is the change of updateAction and updateActions
	Patch model.ActionPatch

	// UserID is the caller for setSprint, unsetSprint and createTopic
	UserID  string
	Partner string
	Title   string
}

// SubmitResult carries whatever the intent produced and the time it was written
type SubmitResult struct {
	Intent    types.Intent
	Action    *model.Action
	Actions   []*model.Action
	Topic     *model.Topic
	UpdatedAt time.Time
}

// Submit dispatches a submission to the operation of its intent
func (uc *ActionUseCase) Submit(ctx context.Context, s Submission) (*SubmitResult, error) {
	res := &SubmitResult{Intent: s.Intent}
	var err error

	switch s.Intent {
	case types.IntentCreateAction:
		res.Action, err = uc.Create(ctx, s.Draft)
	case types.IntentUpdateAction:
		res.Action, err = uc.Update(ctx, s.ID, s.Patch)
	case types.IntentUpdateActions:
		res.Actions, err = uc.UpdateMany(ctx, s.IDs, s.Patch)
	case types.IntentDeleteAction:
		res.Action, err = uc.Archive(ctx, s.ID)
	case types.IntentRecoverAction:
		res.Action, err = uc.Recover(ctx, s.ID)
	case types.IntentDestroyAction:
		err = uc.Destroy(ctx, s.ID)
	case types.IntentDuplicateAction:
		res.Action, err = uc.Duplicate(ctx, s.ID)
	case types.IntentSetSprint:
		res.Action, err = uc.SetSprint(ctx, s.ID, s.UserID)
	case types.IntentUnsetSprint:
		res.Action, err = uc.UnsetSprint(ctx, s.ID, s.UserID)
	case types.IntentCreateTopic:
		res.Topic, err = uc.CreateTopic(ctx, s.Partner, s.Title, s.UserID)
	default:
		return nil, goerr.Wrap(ErrInvalidIntent, "unknown intent", goerr.V(IntentKey, string(s.Intent)))
	}
	if err != nil {
		return nil, err
	}

	switch {
	case res.Action != nil:
		res.UpdatedAt = res.Action.UpdatedAt
	case res.Topic != nil:
		res.UpdatedAt = res.Topic.CreatedAt
	default:
		res.UpdatedAt = uc.clock()
	}
	return res, nil
}
