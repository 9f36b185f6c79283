package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// Issue is one stored action that disagrees with the catalog or the scheduling rules
type Issue struct {
	ActionID types.ActionID
	Field    string
	Value    string
	Message  string
}

// AuditResult holds the outcome of a repository consistency check
type AuditResult struct {
	Checked int
	Issues  []Issue
}

// HasIssues reports whether the audit found anything
func (r *AuditResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// Audit checks every stored action, archived ones included, against the catalog.
// Nothing is modified.
func (uc *ViewUseCase) Audit(ctx context.Context) (*AuditResult, error) {
	result := &AuditResult{}

	for _, archived := range []bool{false, true} {
		actions, err := uc.repo.Action().List(ctx, interfaces.ListActionOptions{Archived: archived})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list actions", goerr.V("archived", archived))
		}

		for _, a := range actions {
			result.Checked++
			add := func(field, value, msg string) {
				result.Issues = append(result.Issues, Issue{ActionID: a.ID, Field: field, Value: value, Message: msg})
			}

			if err := a.Validate(); err != nil {
				add("action", "", err.Error())
			}
			cat, ok := uc.catalog.Category(a.Category)
			if !ok {
				add("category", string(a.Category), "category is not in the catalog")
			}
			if _, ok := uc.catalog.State(a.State); !ok {
				add("state", string(a.State), "state is not in the catalog")
			}
			if _, ok := uc.catalog.Priority(a.Priority); !ok {
				add("priority", string(a.Priority), "priority is not in the catalog")
			}
			if ok && !schedule.HoldsPublishOrder(a, cat) {
				add("instagram_date", schedule.Format(a.InstagramDate), "publish date does not follow the work date")
			}
		}
	}

	return result, nil
}
