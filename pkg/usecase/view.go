package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/agenda"
	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

// ViewUseCase serves the read side: sorted lists, the dashboard, the calendar and the kanban
type ViewUseCase struct {
	repo    interfaces.Repository
	catalog *model.Catalog
	clock   func() time.Time
}

func NewViewUseCase(repo interfaces.Repository, catalog *model.Catalog, clock func() time.Time) *ViewUseCase {
	return &ViewUseCase{
		repo:    repo,
		catalog: catalog,
		clock:   clock,
	}
}

// ListInput selects and orders an action listing
type ListInput struct {
	interfaces.ListActionOptions
	OrderBy          types.OrderBy
	Direction        types.Direction
	UseInstagramDate bool
}

// Dashboard is the home screen of a user: every named subset of their open actions
type Dashboard struct {
	Today         []*model.Action
	Tomorrow      []*model.Action
	ThisWeek      []*model.Action
	Month         []*model.Action
	Delayed       []*model.Action
	NotFinished   []*model.Action
	Urgent        []*model.Action
	InstagramFeed []*model.Action
	Sprint        []*model.Action
}

// List returns the matching actions sorted by the requested key
func (uc *ViewUseCase) List(ctx context.Context, in ListInput) ([]*model.Action, error) {
	if in.OrderBy == "" {
		in.OrderBy = types.OrderByDate
	}
	if in.Direction == "" {
		in.Direction = types.DirectionAsc
	}

	actions, err := uc.fetch(ctx, in.ListActionOptions)
	if err != nil {
		return nil, err
	}
	return agenda.SortActions(actions, in.OrderBy, in.Direction, uc.sortOptions(in.UseInstagramDate)), nil
}

// Dashboard returns the subsets shown to the user. An empty responsible covers everyone and leaves
// the sprint empty.
func (uc *ViewUseCase) Dashboard(ctx context.Context, responsible string) (*Dashboard, error) {
	actions, err := uc.fetch(ctx, interfaces.ListActionOptions{Responsible: responsible})
	if err != nil {
		return nil, err
	}
	actions = agenda.SortActions(actions, types.OrderByDate, types.DirectionAsc, uc.sortOptions(false))

	now := uc.clock()
	d := &Dashboard{
		Today:         agenda.TodayActions(actions, now),
		Tomorrow:      agenda.TomorrowActions(actions, now),
		ThisWeek:      agenda.ThisWeekActions(actions, now, uc.catalog.WeekStart),
		Month:         agenda.MonthActions(actions, now),
		Delayed:       agenda.DelayedActions(actions, uc.catalog, now),
		NotFinished:   agenda.NotFinishedActions(actions),
		Urgent:        agenda.UrgentActions(actions),
		InstagramFeed: agenda.InstagramFeed(actions, uc.catalog, true),
	}
	if responsible != "" {
		for _, a := range actions {
			if a.InSprint(responsible) {
				d.Sprint = append(d.Sprint, a)
			}
		}
	}
	return d, nil
}

// Calendar lays the month containing ref out on whole weeks
func (uc *ViewUseCase) Calendar(ctx context.Context, ref time.Time, partner string, useInstagramDate bool) ([]agenda.Day, error) {
	actions, err := uc.fetch(ctx, interfaces.ListActionOptions{Partner: partner})
	if err != nil {
		return nil, err
	}
	return agenda.GroupByDay(actions, ref, uc.clock(), uc.sortOptions(useInstagramDate)), nil
}

// Kanban returns one column per state
func (uc *ViewUseCase) Kanban(ctx context.Context, partner string) ([]agenda.Column, error) {
	actions, err := uc.fetch(ctx, interfaces.ListActionOptions{Partner: partner})
	if err != nil {
		return nil, err
	}
	return agenda.GroupByState(actions, uc.sortOptions(false)), nil
}

// FormatDatetime renders the relevant date of the action. An undated action renders as "".
func (uc *ViewUseCase) FormatDatetime(ctx context.Context, id types.ActionID, useInstagramDate bool, opts ...datefmt.Option) (string, error) {
	a, err := getAction(ctx, uc.repo, id)
	if err != nil {
		return "", err
	}
	date := a.RelevantDate(useInstagramDate)
	if date.IsZero() {
		return "", nil
	}
	return datefmt.Format(date, uc.clock(), opts...)
}

func (uc *ViewUseCase) fetch(ctx context.Context, opts interfaces.ListActionOptions) ([]*model.Action, error) {
	actions, err := uc.repo.Action().List(ctx, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list actions",
			goerr.V(PartnerKey, opts.Partner), goerr.V(UserIDKey, opts.Responsible))
	}
	for _, a := range actions {
		warnUnknownRefs(ctx, uc.catalog, a)
	}
	return actions, nil
}

func (uc *ViewUseCase) sortOptions(useInstagramDate bool) agenda.SortOptions {
	return agenda.SortOptions{Catalog: uc.catalog, UseInstagramDate: useInstagramDate}
}
