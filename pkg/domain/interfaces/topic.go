package interfaces

import (
	"context"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// TopicRepository defines the interface for partner discussion topics
type TopicRepository interface {
	Create(ctx context.Context, topic *model.Topic) (*model.Topic, error)

	// ListByPartner returns the partner's topics, newest first
	ListByPartner(ctx context.Context, partner string) ([]*model.Topic, error)
}
