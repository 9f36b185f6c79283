package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/schedule"
)

// TopicsCollection is the collection name of topics without prefix
const TopicsCollection = "topics"

type topicDoc struct {
	ID        string `firestore:"id"`
	Partner   string `firestore:"partner"`
	Title     string `firestore:"title"`
	UserID    string `firestore:"user_id"`
	CreatedAt string `firestore:"created_at"`
}

type topicRepository struct {
	client           *firestore.Client
	collectionPrefix string
	loc              *time.Location
}

func newTopicRepository(client *firestore.Client) *topicRepository {
	return &topicRepository{
		client: client,
		loc:    time.Local,
	}
}

func (r *topicRepository) topicsCollection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, TopicsCollection))
}

func (r *topicRepository) Create(ctx context.Context, topic *model.Topic) (*model.Topic, error) {
	doc := &topicDoc{
		ID:        topic.ID.String(),
		Partner:   topic.Partner,
		Title:     topic.Title,
		UserID:    topic.UserID,
		CreatedAt: formatIn(topic.CreatedAt, r.loc),
	}

	if _, err := r.topicsCollection().Doc(doc.ID).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "topic already exists", goerr.V("id", topic.ID))
		}
		return nil, goerr.Wrap(err, "failed to create topic", goerr.V("id", topic.ID))
	}

	created := *topic
	return &created, nil
}

func (r *topicRepository) ListByPartner(ctx context.Context, partner string) ([]*model.Topic, error) {
	iter := r.topicsCollection().
		Where("partner", "==", partner).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	topics := make([]*model.Topic, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate topics", goerr.V("partner", partner))
		}

		var doc topicDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode topic", goerr.V("doc_id", docSnap.Ref.ID))
		}
		createdAt, err := schedule.ParseIn(doc.CreatedAt, r.loc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode topic timestamp", goerr.V("id", doc.ID))
		}

		topics = append(topics, &model.Topic{
			ID:        types.TopicID(doc.ID),
			Partner:   doc.Partner,
			Title:     doc.Title,
			UserID:    doc.UserID,
			CreatedAt: createdAt,
		})
	}

	return topics, nil
}
