package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

func TestAudit(t *testing.T) {
	uc, repo := newUseCases(t)
	ctx := t.Context()

	create(t, uc, draft("Post de páscoa", types.CategoryPost, at(15, 10, 0)))
	archived := create(t, uc, draft("Reunião", types.CategoryMeeting, at(14, 9, 0)))
	_, err := uc.Action.Archive(ctx, archived.ID)
	gt.NoError(t, err).Required()

	result, err := uc.View.Audit(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Checked).Equal(2)
	gt.False(t, result.HasIssues())

	// written behind the usecase, like a document edited by hand
	_, err = repo.Action().Create(ctx, &model.Action{
		ID:            types.NewActionID(),
		Title:         "Legado",
		Category:      types.CategoryReels,
		State:         types.StateID("limbo"),
		Priority:      types.PriorityMedium,
		Date:          at(20, 10, 0),
		InstagramDate: at(19, 10, 0),
		Partners:      []string{"padaria"},
		Responsibles:  []string{"U1"},
	})
	gt.NoError(t, err).Required()

	result, err = uc.View.Audit(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Checked).Equal(3)
	gt.Array(t, result.Issues).Length(2).Required()
	gt.Value(t, result.Issues[0].Field).Equal("state")
	gt.Value(t, result.Issues[1].Field).Equal("instagram_date")
}
