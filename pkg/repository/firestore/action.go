package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// ActionsCollection is the collection name of actions without prefix
const ActionsCollection = "actions"

// actionDoc is the stored shape of an action. Timestamps are wall-clock strings in schedule.Layout.
type actionDoc struct {
	ID            string   `firestore:"id"`
	Title         string   `firestore:"title"`
	Description   string   `firestore:"description"`
	Category      string   `firestore:"category"`
	State         string   `firestore:"state"`
	Priority      string   `firestore:"priority"`
	Date          string   `firestore:"date"`
	InstagramDate string   `firestore:"instagram_date"`
	Time          int      `firestore:"time"`
	Partners      []string `firestore:"partners"`
	Responsibles  []string `firestore:"responsibles"`
	Sprints       []string `firestore:"sprints"`
	Archived      bool     `firestore:"archived"`
	CreatedAt     string   `firestore:"created_at"`
	UpdatedAt     string   `firestore:"updated_at"`
}

func toActionDoc(a *model.Action, loc *time.Location) *actionDoc {
	return &actionDoc{
		ID:            a.ID.String(),
		Title:         a.Title,
		Description:   a.Description,
		Category:      a.Category.String(),
		State:         a.State.String(),
		Priority:      a.Priority.String(),
		Date:          formatIn(a.Date, loc),
		InstagramDate: formatIn(a.InstagramDate, loc),
		Time:          a.Time,
		Partners:      a.Partners,
		Responsibles:  a.Responsibles,
		Sprints:       a.Sprints,
		Archived:      a.Archived,
		CreatedAt:     formatIn(a.CreatedAt, loc),
		UpdatedAt:     formatIn(a.UpdatedAt, loc),
	}
}

func (d *actionDoc) toModel(loc *time.Location) (*model.Action, error) {
	a := &model.Action{
		ID:           types.ActionID(d.ID),
		Title:        d.Title,
		Description:  d.Description,
		Category:     types.CategoryID(d.Category),
		State:        types.StateID(d.State),
		Priority:     types.PriorityID(d.Priority),
		Time:         d.Time,
		Partners:     d.Partners,
		Responsibles: d.Responsibles,
		Sprints:      d.Sprints,
		Archived:     d.Archived,
	}

	fields := []struct {
		name string
		src  string
		dst  *time.Time
	}{
		{"date", d.Date, &a.Date},
		{"instagram_date", d.InstagramDate, &a.InstagramDate},
		{"created_at", d.CreatedAt, &a.CreatedAt},
		{"updated_at", d.UpdatedAt, &a.UpdatedAt},
	}
	for _, f := range fields {
		t, err := schedule.ParseIn(f.src, loc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode action timestamp",
				goerr.V("id", d.ID), goerr.V("field", f.name))
		}
		*f.dst = t
	}

	return a, nil
}

// formatIn writes t as wall-clock time in loc, the zone toModel reads it back in
func formatIn(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return schedule.Format(t.In(loc))
}

type actionRepository struct {
	client           *firestore.Client
	collectionPrefix string
	loc              *time.Location
}

func newActionRepository(client *firestore.Client) *actionRepository {
	return &actionRepository{
		client: client,
		loc:    time.Local,
	}
}

func (r *actionRepository) actionsCollection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, ActionsCollection))
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	_, err := r.actionsCollection().Doc(action.ID.String()).Create(ctx, toActionDoc(action, r.loc))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "action already exists", goerr.V("id", action.ID))
		}
		return nil, goerr.Wrap(err, "failed to create action", goerr.V("id", action.ID))
	}

	return action.Copy(), nil
}

func (r *actionRepository) Get(ctx context.Context, id types.ActionID) (*model.Action, error) {
	docSnap, err := r.actionsCollection().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get action", goerr.V("id", id))
	}

	var doc actionDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode action", goerr.V("id", id))
	}

	return doc.toModel(r.loc)
}

func (r *actionRepository) List(ctx context.Context, opts interfaces.ListActionOptions) ([]*model.Action, error) {
	q := r.actionsCollection().Where("archived", "==", opts.Archived)
	// a query holds a single array-contains filter; the partner filter runs on the results
	if opts.Responsible != "" {
		q = q.Where("responsibles", "array-contains", opts.Responsible)
	} else if opts.Partner != "" {
		q = q.Where("partners", "array-contains", opts.Partner)
	}

	iter := q.OrderBy("date", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	actions := make([]*model.Action, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate actions")
		}

		var doc actionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode action", goerr.V("doc_id", docSnap.Ref.ID))
		}
		a, err := doc.toModel(r.loc)
		if err != nil {
			return nil, err
		}
		if opts.Match(a) {
			actions = append(actions, a)
		}
	}

	return actions, nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) (*model.Action, error) {
	ref := r.actionsCollection().Doc(action.ID.String())
	updated := toActionDoc(action, r.loc)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", action.ID))
			}
			return goerr.Wrap(err, "failed to get action", goerr.V("id", action.ID))
		}

		var existing actionDoc
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode action", goerr.V("id", action.ID))
		}
		updated.CreatedAt = existing.CreatedAt

		return tx.Set(ref, updated)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update action", goerr.V("id", action.ID))
	}

	return updated.toModel(r.loc)
}

func (r *actionRepository) Delete(ctx context.Context, id types.ActionID) error {
	ref := r.actionsCollection().Doc(id.String())
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get action", goerr.V("id", id))
	}

	if _, err := ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete action", goerr.V("id", id))
	}
	return nil
}
