package usecase

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
)

// defaultBatchLimit bounds the parallel writes of a batch update
const defaultBatchLimit = 8

type UseCases struct {
	repo        interfaces.Repository
	catalog     *model.Catalog
	clock       func() time.Time
	copywriter  interfaces.Copywriter
	storage     interfaces.FileStorage
	batchLimit  int
	autoCaption bool

	Action  *ActionUseCase
	View    *ViewUseCase
	Caption *CaptionUseCase
	Upload  *UploadUseCase
}

type Option func(*UseCases)

// WithCatalog sets the reference collections. The default catalog is used otherwise.
func WithCatalog(catalog *model.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

// WithClock replaces time.Now. Every "now" of the application is read from it.
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func WithCopywriter(copywriter interfaces.Copywriter) Option {
	return func(uc *UseCases) {
		uc.copywriter = copywriter
	}
}

func WithFileStorage(storage interfaces.FileStorage) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

// WithBatchLimit sets how many actions a batch update writes in parallel
func WithBatchLimit(n int) Option {
	return func(uc *UseCases) {
		if n > 0 {
			uc.batchLimit = n
		}
	}
}

// WithAutoCaption drafts a caption in the background for new feed actions created without a
// description. It needs a copywriter.
func WithAutoCaption(enabled bool) Option {
	return func(uc *UseCases) {
		uc.autoCaption = enabled
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		catalog:    model.DefaultCatalog(),
		clock:      time.Now,
		batchLimit: defaultBatchLimit,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Caption = NewCaptionUseCase(repo, uc.catalog, uc.copywriter)
	uc.Action = NewActionUseCase(repo, uc.catalog, uc.clock,
		withBatchLimit(uc.batchLimit),
		withCaptions(uc.Caption, uc.autoCaption),
	)
	uc.View = NewViewUseCase(repo, uc.catalog, uc.clock)
	uc.Upload = NewUploadUseCase(uc.storage)

	return uc
}

// Catalog returns the reference collections in use
func (uc *UseCases) Catalog() *model.Catalog {
	return uc.catalog
}

// Now reads the application clock
func (uc *UseCases) Now() time.Time {
	return uc.clock()
}
