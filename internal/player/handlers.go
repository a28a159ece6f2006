package player

import (
	"context"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/validation"
)

const (
	getHandler    = "get_player_data"
	updateHandler = "update_player_data"
)

// Handlers exposes the player operations over a UseCase.
type Handlers struct {
	usecase *UseCase
	logger  *slog.Logger
}

// NewHandlers returns player Handlers.
func NewHandlers(usecase *UseCase, logger *slog.Logger) *Handlers {
	return &Handlers{usecase: usecase, logger: logger}
}

// Get returns the stored record for the playerId query parameter.
func (h *Handlers) Get(ctx context.Context, event handler.Event) (any, error) {
	params := event.QueryStringParameters
	if err := validation.RequireQueryParams(params, getHandler, "playerId"); err != nil {
		return nil, err
	}
	return h.usecase.Get(ctx, params["playerId"])
}

// UpdateAll replaces every player record with the current Sleeper data. It is
// meant for the scheduled refresh and takes no payload.
func (h *Handlers) UpdateAll(ctx context.Context, event handler.Event) (any, error) {
	message, err := h.usecase.UpdateAll(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"message": message}, nil
}
