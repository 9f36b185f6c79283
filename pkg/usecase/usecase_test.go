package usecase_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/domain/types"
	"github.com/bussola-app/bussola/pkg/repository/memory"
	"github.com/bussola-app/bussola/pkg/usecase"
)

// fixed "now": Wednesday 2024-03-13 12:00 UTC
var now = time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func newUseCases(t *testing.T, opts ...usecase.Option) (*usecase.UseCases, *memory.Memory) {
	t.Helper()
	repo := memory.New()
	opts = append([]usecase.Option{usecase.WithClock(clock)}, opts...)
	return usecase.New(repo, opts...), repo
}

func draft(title string, category types.CategoryID, date time.Time) model.ActionDraft {
	return model.ActionDraft{
		Title:        title,
		Category:     category,
		Date:         date,
		Partners:     []string{"padaria"},
		Responsibles: []string{"U1"},
	}
}

func create(t *testing.T, uc *usecase.UseCases, d model.ActionDraft) *model.Action {
	t.Helper()
	a, err := uc.Action.Create(context.Background(), d)
	gt.NoError(t, err).Required()
	return a
}

type mockCopywriter struct {
	mu      sync.Mutex
	calls   int
	caption *model.Caption
	err     error
}

func (m *mockCopywriter) Caption(_ context.Context, _ *model.Action, _ model.Category) (*model.Caption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.caption, nil
}

type mockStorage struct {
	name        string
	contentType string
	body        string
}

func (m *mockStorage) Upload(_ context.Context, name, contentType string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.name, m.contentType, m.body = name, contentType, string(b)
	return "https://cdn.example.com/uploads/" + name, nil
}
