package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine and returns a channel closed when it finishes.
//
// The handler gets a background context that keeps the logger of ctx but is
// not cancelled with it. A panic or returned error is logged with the task
// name and sent to Sentry; without an initialized Sentry client that is a no-op.
func Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) <-chan struct{} {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("task", name)

	newCtx := newBackgroundContext(ctx)
	newCtx = sentry.SetHubOnContext(newCtx, hub)
	logger := logging.From(newCtx).With("task", name)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
				hub.CaptureException(fmt.Errorf("panic in async handler %s: %v", name, r))
			}
		}()

		if err := handler(newCtx); err != nil {
			logger.Error("error in async handler", "error", err)
			hub.CaptureException(err)
		}
	}()

	return done
}

// newBackgroundContext detaches ctx from its cancellation, keeping the logger
func newBackgroundContext(ctx context.Context) context.Context {
	return logging.With(context.Background(), logging.From(ctx))
}
