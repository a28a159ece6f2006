package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/store"
)

// RunDeleteUser removes the login record for a Sleeper user id.
func RunDeleteUser(
	ctx context.Context,
	st store.Store,
	userTable string,
	userID string,
	logger *slog.Logger,
	io IOTuple,
) error {
	if userID == "" {
		return fmt.Errorf("--id is required")
	}

	logger.Info("deleting user login record", slog.String("user_id", userID))

	if err := st.DeleteItem(ctx, userTable, "user_id", userID); err != nil {
		return fmt.Errorf("failed to delete user record: %w", err)
	}

	fmt.Fprintf(io.Writer, "User %s deleted.\n", userID)
	return nil
}
