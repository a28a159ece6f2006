package league

import (
	"context"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/validation"
)

const (
	getHandler    = "get_league_data"
	updateHandler = "update_league_data"
)

// Handlers exposes the league operations over a UseCase.
type Handlers struct {
	usecase *UseCase
	logger  *slog.Logger
}

// NewHandlers returns league Handlers.
func NewHandlers(usecase *UseCase, logger *slog.Logger) *Handlers {
	return &Handlers{usecase: usecase, logger: logger}
}

// Get returns the league, its users, and its rosters for the leagueId query
// parameter.
func (h *Handlers) Get(ctx context.Context, event handler.Event) (any, error) {
	params := event.QueryStringParameters
	if err := validation.RequireQueryParams(params, getHandler, "leagueId"); err != nil {
		return nil, err
	}
	return h.usecase.Get(ctx, params["leagueId"])
}

// Update refreshes the stored league record from Sleeper.
func (h *Handlers) Update(ctx context.Context, event handler.Event) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	if err := validation.RequireFields(body, updateHandler, []string{"leagueId"}); err != nil {
		return nil, err
	}

	leagueID, _ := body["leagueId"].(string)
	return h.usecase.Update(ctx, leagueID)
}
