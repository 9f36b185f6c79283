package interfaces

import (
	"context"
	"io"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// Copywriter drafts Instagram copy for an action
type Copywriter interface {
	Caption(ctx context.Context, action *model.Action, category model.Category) (*model.Caption, error)
}

// FileStorage stores uploaded files and returns their public URL
type FileStorage interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
