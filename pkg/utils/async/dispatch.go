package async

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine on a background context that keeps the caller's
// logger. Errors and panics are logged, never propagated. The returned channel is closed when
// the handler returns.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", slog.Any("panic", r))
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", slog.Any("error", goerr.Unwrap(err)))
		}
	}()

	return done
}
