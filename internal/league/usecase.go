// Package league implements Sleeper league retrieval and synchronization.
package league

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/domgiordano/xomper-back-end/internal/store"
)

// SleeperAPI is the slice of the Sleeper client used by league operations.
type SleeperAPI interface {
	GetLeague(ctx context.Context, leagueID string) (map[string]any, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]map[string]any, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]map[string]any, error)
}

// UseCase handles league reads and table synchronization.
type UseCase struct {
	store       store.Store
	sleeper     SleeperAPI
	leagueTable string
	logger      *slog.Logger
}

// NewUseCase creates a league UseCase.
func NewUseCase(st store.Store, sleeperClient SleeperAPI, leagueTable string, logger *slog.Logger) *UseCase {
	return &UseCase{store: st, sleeper: sleeperClient, leagueTable: leagueTable, logger: logger}
}

// Get fetches the league, its users, and its rosters concurrently. Any single
// fetch failure fails the whole read.
func (uc *UseCase) Get(ctx context.Context, leagueID string) (map[string]any, error) {
	var (
		league  map[string]any
		users   []map[string]any
		rosters []map[string]any
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = uc.sleeper.GetLeague(ctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = uc.sleeper.GetLeagueUsers(ctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = uc.sleeper.GetLeagueRosters(ctx, leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]any{
		"league":        league,
		"leagueUsers":   users,
		"leagueRosters": rosters,
	}, nil
}

// Update refreshes the stored league record from Sleeper. The member list is
// folded into the record so login checks can run against the table alone.
func (uc *UseCase) Update(ctx context.Context, leagueID string) (string, error) {
	var (
		league map[string]any
		users  []map[string]any
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = uc.sleeper.GetLeague(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = uc.sleeper.GetLeagueUsers(gctx, leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	userIDs := make([]string, 0, len(users))
	for _, member := range users {
		if id, ok := member["user_id"].(string); ok && id != "" {
			userIDs = append(userIDs, id)
		}
	}
	league["user_ids"] = userIDs

	if err := uc.store.PutItem(ctx, uc.leagueTable, league); err != nil {
		return "", err
	}

	uc.logger.Info("league record refreshed",
		slog.String("league_id", leagueID),
		slog.Int("members", len(userIDs)),
	)
	return "League " + leagueID + " updated in table.", nil
}
