package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/types"
)

// Action is a persisted schedulable unit of work: a post, a reel, a meeting, a task.
type Action struct {
	ID          types.ActionID
	Title       string
	Description string
	Category    types.CategoryID
	State       types.StateID
	Priority    types.PriorityID

	// Date is when the work happens or is due
	Date time.Time
	// InstagramDate is the intended publish time. Meaningful only for Instagram feed categories.
	InstagramDate time.Time
	// Time is the expected effort in minutes
	Time int

	Partners     []string // partner slugs, never empty
	Responsibles []string // user IDs, never empty
	Sprints      []string // user IDs that pinned the action to their sprint
	Archived     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Copy returns a deep copy of the action
func (a *Action) Copy() *Action {
	if a == nil {
		return nil
	}
	c := *a
	c.Partners = slices.Clone(a.Partners)
	c.Responsibles = slices.Clone(a.Responsibles)
	c.Sprints = slices.Clone(a.Sprints)
	return &c
}

// HasPartner reports whether the action belongs to the partner
func (a *Action) HasPartner(slug string) bool {
	return slices.Contains(a.Partners, slug)
}

// HasResponsible reports whether the user is responsible for the action
func (a *Action) HasResponsible(userID string) bool {
	return slices.Contains(a.Responsibles, userID)
}

// InSprint reports whether the user pinned the action to their sprint
func (a *Action) InSprint(userID string) bool {
	return slices.Contains(a.Sprints, userID)
}

// UsesInstagramDate reports whether the Instagram date applies to this action
func (a *Action) UsesInstagramDate() bool {
	return a.Category.IsInstagramFeed()
}

// RelevantDate returns the instagram date when requested and applicable, the work date otherwise.
// An unset instagram date falls back to the work date.
func (a *Action) RelevantDate(useInstagramDate bool) time.Time {
	if useInstagramDate && a.UsesInstagramDate() && !a.InstagramDate.IsZero() {
		return a.InstagramDate
	}
	return a.Date
}

// Validate checks the invariants every persisted action must hold
func (a *Action) Validate() error {
	if a.Title == "" {
		return goerr.Wrap(ErrMissingTitle, "action title is required", goerr.V(ActionIDKey, a.ID))
	}
	if len(a.Partners) == 0 {
		return goerr.Wrap(ErrLastPartner, "action has no partner", goerr.V(ActionIDKey, a.ID))
	}
	if len(a.Responsibles) == 0 {
		return goerr.Wrap(ErrLastResponsible, "action has no responsible", goerr.V(ActionIDKey, a.ID))
	}
	return nil
}
