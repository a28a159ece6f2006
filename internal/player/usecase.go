// Package player implements NFL player lookups and the bulk refresh from
// Sleeper.
package player

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/domgiordano/xomper-back-end/internal/store"
)

// SleeperAPI is the slice of the Sleeper client used by player operations.
type SleeperAPI interface {
	FetchNFLPlayers(ctx context.Context) (map[string]map[string]any, error)
}

// UseCase handles player reads and the bulk table refresh.
type UseCase struct {
	store       store.Store
	sleeper     SleeperAPI
	playerTable string
	logger      *slog.Logger
	now         func() time.Time
}

// NewUseCase creates a player UseCase.
func NewUseCase(st store.Store, sleeperClient SleeperAPI, playerTable string, logger *slog.Logger) *UseCase {
	return &UseCase{
		store:       st,
		sleeper:     sleeperClient,
		playerTable: playerTable,
		logger:      logger,
		now:         time.Now,
	}
}

// Get returns the stored record for a player.
func (uc *UseCase) Get(ctx context.Context, playerID string) (map[string]any, error) {
	return uc.store.GetItem(ctx, uc.playerTable, "player_id", playerID)
}

// UpdateAll replaces every player record with the current Sleeper data. Each
// record carries the player id, the raw Sleeper payload, and a refresh
// timestamp. Writes go out in key order so reruns produce the same batches.
func (uc *UseCase) UpdateAll(ctx context.Context) (string, error) {
	players, err := uc.sleeper.FetchNFLPlayers(ctx)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	updated := uc.now().UTC().Format(time.RFC3339)
	items := make([]store.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, store.Item{
			"player_id":    id,
			"data":         players[id],
			"last_updated": updated,
		})
	}

	if err := uc.store.BatchPutItems(ctx, uc.playerTable, items); err != nil {
		return "", err
	}

	uc.logger.Info("player table refreshed", slog.Int("players", len(items)))
	return fmt.Sprintf("Updated %d Items in DynamoDB Table %s.", len(items), uc.playerTable), nil
}
