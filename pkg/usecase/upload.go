package usecase

import (
	"context"
	"io"
	"path"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
)

type UploadUseCase struct {
	storage interfaces.FileStorage
}

func NewUploadUseCase(storage interfaces.FileStorage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

// Upload stores the file and returns its public URL
func (uc *UploadUseCase) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if uc.storage == nil {
		return "", goerr.Wrap(ErrStorageNotConfigured, "cannot upload file", goerr.V(FileNameKey, name))
	}

	base := path.Base(name)
	if name == "" || base == "." || base == "/" {
		return "", goerr.Wrap(ErrInvalidInput, "file name is required", goerr.V(FileNameKey, name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := uc.storage.Upload(ctx, base, contentType, r)
	if err != nil {
		return "", goerr.Wrap(err, "failed to upload file", goerr.V(FileNameKey, name))
	}
	return url, nil
}
