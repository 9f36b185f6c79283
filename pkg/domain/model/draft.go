package model

import (
	"slices"
	"time"

	"github.com/bussola-app/bussola/pkg/domain/types"
)

// draftLeadTime is how far ahead of now a new action is scheduled by default
const draftLeadTime = 30 * time.Minute

// ActionDraft is an action that has not been persisted yet. It has no ID and no timestamps.
type ActionDraft struct {
	Title         string
	Description   string
	Category      types.CategoryID
	State         types.StateID
	Priority      types.PriorityID
	Date          time.Time
	InstagramDate time.Time
	Time          int
	Partners      []string
	Responsibles  []string
}

// NewDraft populates a draft with the defaults of the category, partner and user
func NewDraft(catalog *Catalog, category types.CategoryID, partner, userID string, now time.Time) ActionDraft {
	date := now.Truncate(time.Minute).Add(draftLeadTime)

	d := ActionDraft{
		Category: category,
		State:    catalog.DefaultState(),
		Priority: types.PriorityMedium,
		Date:     date,
		Time:     catalog.DurationFor(category),
	}
	if catalog.UsesDualDate(category) {
		d.InstagramDate = date.Add(time.Hour)
	}
	if partner != "" {
		d.Partners = []string{partner}
	}
	if userID != "" {
		d.Responsibles = []string{userID}
	}
	return d
}

// Persist converts the draft into a persisted action with the given identity and creation time
func (d ActionDraft) Persist(id types.ActionID, now time.Time) *Action {
	return &Action{
		ID:            id,
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		State:         d.State,
		Priority:      d.Priority,
		Date:          d.Date,
		InstagramDate: d.InstagramDate,
		Time:          d.Time,
		Partners:      slices.Clone(d.Partners),
		Responsibles:  slices.Clone(d.Responsibles),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DraftOf returns a draft carrying every field of the action, used to duplicate it
func DraftOf(a *Action) ActionDraft {
	return ActionDraft{
		Title:         a.Title,
		Description:   a.Description,
		Category:      a.Category,
		State:         a.State,
		Priority:      a.Priority,
		Date:          a.Date,
		InstagramDate: a.InstagramDate,
		Time:          a.Time,
		Partners:      slices.Clone(a.Partners),
		Responsibles:  slices.Clone(a.Responsibles),
	}
}
