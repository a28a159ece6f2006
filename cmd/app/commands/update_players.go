package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/player"
)

// RunUpdatePlayers refreshes every player record from the Sleeper API. Meant
// to run on a schedule; the web API exposes the same operation.
func RunUpdatePlayers(ctx context.Context, useCase *player.UseCase, logger *slog.Logger, io IOTuple) error {
	logger.Info("starting player data refresh")

	message, err := useCase.UpdateAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh player data: %w", err)
	}

	fmt.Fprintln(io.Writer, message)
	return nil
}
