package interfaces

import (
	"context"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

// ListActionOptions are the server-side filters of an action listing.
// Empty Partner or Responsible matches every action.
type ListActionOptions struct {
	Archived    bool
	Partner     string
	Responsible string
}

// Match reports whether the action passes the filters
func (o ListActionOptions) Match(a *model.Action) bool {
	if a.Archived != o.Archived {
		return false
	}
	if o.Partner != "" && !a.HasPartner(o.Partner) {
		return false
	}
	if o.Responsible != "" && !a.HasResponsible(o.Responsible) {
		return false
	}
	return true
}

// ActionRepository defines the interface for Action data access
type ActionRepository interface {
	// Create stores a new action under its ID
	Create(ctx context.Context, action *model.Action) (*model.Action, error)

	// Get retrieves an action by ID
	Get(ctx context.Context, id types.ActionID) (*model.Action, error)

	// List retrieves the actions matching opts, ordered by date
	List(ctx context.Context, opts ListActionOptions) ([]*model.Action, error)

	// Update replaces an existing action. Last write wins.
	Update(ctx context.Context, action *model.Action) (*model.Action, error)

	// Delete permanently removes an action by ID
	Delete(ctx context.Context, id types.ActionID) error
}
