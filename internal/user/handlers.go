package user

import (
	"context"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/validation"
)

const (
	loginHandler  = "user_login"
	getHandler    = "get_user_data"
	updateHandler = "update_user_data"
)

// Handlers exposes the user operations over a UseCase.
type Handlers struct {
	usecase *UseCase
	logger  *slog.Logger
}

// NewHandlers returns user Handlers.
func NewHandlers(usecase *UseCase, logger *slog.Logger) *Handlers {
	return &Handlers{usecase: usecase, logger: logger}
}

// Login authenticates a user against the stored password and league
// membership, returning the Sleeper profile with a session token.
func (h *Handlers) Login(ctx context.Context, event handler.Event) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	if err := validation.RequireFields(body, loginHandler, []string{"userId", "leagueId", "password"}); err != nil {
		return nil, err
	}

	userID, _ := body["userId"].(string)
	leagueID, _ := body["leagueId"].(string)
	password, _ := body["password"].(string)

	return h.usecase.Login(ctx, userID, leagueID, password)
}

// Get returns the Sleeper profile for the userId query parameter.
func (h *Handlers) Get(ctx context.Context, event handler.Event) (any, error) {
	params := event.QueryStringParameters
	if err := validation.RequireQueryParams(params, getHandler, "userId"); err != nil {
		return nil, err
	}
	return h.usecase.Get(ctx, params["userId"])
}

// Update refreshes the stored user record from the Sleeper profile.
func (h *Handlers) Update(ctx context.Context, event handler.Event) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	if err := validation.RequireFields(body, updateHandler, []string{"userId"}); err != nil {
		return nil, err
	}

	userID, _ := body["userId"].(string)
	return h.usecase.Update(ctx, userID)
}
