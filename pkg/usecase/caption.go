package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
)

type CaptionUseCase struct {
	repo       interfaces.Repository
	catalog    *model.Catalog
	copywriter interfaces.Copywriter
}

func NewCaptionUseCase(repo interfaces.Repository, catalog *model.Catalog, copywriter interfaces.Copywriter) *CaptionUseCase {
	return &CaptionUseCase{
		repo:       repo,
		catalog:    catalog,
		copywriter: copywriter,
	}
}

// Enabled reports whether a copywriter is configured
func (uc *CaptionUseCase) Enabled() bool {
	return uc.copywriter != nil
}

// Generate asks the copywriter for Instagram copy of the action. Nothing is saved.
func (uc *CaptionUseCase) Generate(ctx context.Context, id types.ActionID) (*model.Caption, error) {
	if !uc.Enabled() {
		return nil, goerr.Wrap(ErrCopywriterNotConfigured, "cannot generate caption", goerr.V(ActionIDKey, id))
	}

	a, err := getAction(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}

	caption, err := uc.copywriter.Caption(ctx, a, uc.catalog.CategoryOrDefault(a.Category))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate caption", goerr.V(ActionIDKey, id))
	}
	return caption, nil
}
