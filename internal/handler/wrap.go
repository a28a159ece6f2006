package handler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/masking"
)

// Func is a fully wrapped operation: it always returns an envelope, never an
// error and never a panic.
type Func func(ctx context.Context, event Event) Envelope

// Operation is the business-logic signature the wrapper adapts. It returns a
// payload or an error; typed *errors.Error values keep their own status.
type Operation func(ctx context.Context, event Event) (any, error)

// Wrap adapts an operation into a Func. Normal return values become a success
// envelope. A typed error becomes an error envelope with its own status. Any
// other error, and any panic, is logged with a stack trace and converted to an
// internal error envelope carrying the original text as details. In every
// failure path the masked request context is logged before the envelope is
// returned.
func Wrap(name string, logger *slog.Logger, op Operation) Func {
	return func(ctx context.Context, event Event) (envelope Envelope) {
		fromAPI := event.FromAPI()

		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic",
					slog.String("handler", name),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				logRequestContext(logger, name, event)
				internal := apperrors.New(
					apperrors.KindInternal, fmt.Sprintf("%v", r), name, "Wrap",
				).WithDetails(map[string]any{"cause": "panic"})
				envelope = Failure(internal, fromAPI)
			}
		}()

		result, err := op(ctx, event)
		if err == nil {
			return Success(result, fromAPI)
		}

		typed, ok := apperrors.AsError(err)
		if !ok {
			typed = apperrors.New(
				apperrors.KindInternal, err.Error(), name, "Wrap",
			).WithDetails(map[string]any{"cause": err.Error()})
		}

		logger.Error("handler error",
			slog.String("handler", name),
			slog.String("kind", string(typed.Kind)),
			slog.Int("status", typed.Status),
			slog.String("error", err.Error()),
		)
		logRequestContext(logger, name, event)

		return Failure(typed, fromAPI)
	}
}

// logRequestContext emits the masked request attributes for debugging a failed
// call. It must never disturb the error path: its own faults reduce to a single
// best-effort log line.
func logRequestContext(logger *slog.Logger, name string, event Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("failed to capture request context", slog.String("handler", name))
		}
	}()

	captured := map[string]any{
		"method":  event.HTTPMethod,
		"path":    event.Path,
		"query":   masking.Mask(event.QueryStringParameters),
		"headers": masking.Mask(event.Headers),
		"body":    masking.Mask(event.Body),
	}

	logger.Info("request context", slog.String("handler", name), slog.Any("context", captured))
}
