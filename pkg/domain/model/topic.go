package model

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/types"
)

// Topic is a short discussion note attached to a partner, collected for the next meeting
type Topic struct {
	ID        types.TopicID
	Partner   string
	Title     string
	UserID    string
	CreatedAt time.Time
}
