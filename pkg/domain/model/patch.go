package model

import (
	"slices"
	"time"

	"github.com/bussola-app/bussola/pkg/domain/types"
)

// ActionPatch is a partial update. Nil fields are left untouched.
type ActionPatch struct {
	Title         *string
	Description   *string
	Category      *types.CategoryID
	State         *types.StateID
	Priority      *types.PriorityID
	Date          *time.Time
	InstagramDate *time.Time
	Time          *int
	Partners      []string
	Responsibles  []string
	Sprints       []string
	Archived      *bool
}

// IsEmpty reports whether the patch changes nothing
func (p ActionPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Category == nil &&
		p.State == nil &&
		p.Priority == nil &&
		p.Date == nil &&
		p.InstagramDate == nil &&
		p.Time == nil &&
		p.Partners == nil &&
		p.Responsibles == nil &&
		p.Sprints == nil &&
		p.Archived == nil
}

// CategoryChanged reports whether the patch moves the action to another category
func (p ActionPatch) CategoryChanged(a *Action) bool {
	return p.Category != nil && *p.Category != a.Category
}

// ApplyTo returns a copy of the action with the patch merged in. The input is not modified.
func (p ActionPatch) ApplyTo(a *Action) *Action {
	out := a.Copy()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.State != nil {
		out.State = *p.State
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.InstagramDate != nil {
		out.InstagramDate = *p.InstagramDate
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Partners != nil {
		out.Partners = slices.Clone(p.Partners)
	}
	if p.Responsibles != nil {
		out.Responsibles = slices.Clone(p.Responsibles)
	}
	if p.Sprints != nil {
		out.Sprints = slices.Clone(p.Sprints)
	}
	if p.Archived != nil {
		out.Archived = *p.Archived
	}
	return out
}

// SprintAdded returns a patch adding userID to the action's sprint
func SprintAdded(a *Action, userID string) ActionPatch {
	return ActionPatch{Sprints: addMember(a.Sprints, userID)}
}

// SprintRemoved returns a patch removing userID from the action's sprint
func SprintRemoved(a *Action, userID string) ActionPatch {
	return ActionPatch{Sprints: removeMember(a.Sprints, userID)}
}
