package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

type topicRepository struct {
	mu     sync.RWMutex
	topics []*model.Topic
}

func newTopicRepository() *topicRepository {
	return &topicRepository{}
}

func copyTopic(t *model.Topic) *model.Topic {
	c := *t
	return &c
}

func (r *topicRepository) Create(ctx context.Context, topic *model.Topic) (*model.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.topics {
		if t.ID == topic.ID {
			return nil, goerr.Wrap(ErrAlreadyExists, "topic already exists", goerr.V("id", topic.ID))
		}
	}

	r.topics = append(r.topics, copyTopic(topic))
	return copyTopic(topic), nil
}

func (r *topicRepository) ListByPartner(ctx context.Context, partner string) ([]*model.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topics := make([]*model.Topic, 0)
	for _, t := range r.topics {
		if t.Partner == partner {
			topics = append(topics, copyTopic(t))
		}
	}

	slices.SortStableFunc(topics, func(a, b *model.Topic) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return topics, nil
}
