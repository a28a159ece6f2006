package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/domgiordano/xomper-back-end/internal/store"
	"github.com/domgiordano/xomper-back-end/internal/user"
)

// RunCreateUser stores a login record for a Sleeper user id with a hashed
// password. Existing records for the same id are replaced.
func RunCreateUser(
	ctx context.Context,
	useCase *user.UseCase,
	st store.Store,
	userTable string,
	userID string,
	password string,
	logger *slog.Logger,
	io IOTuple,
) error {
	if userID == "" || password == "" {
		return fmt.Errorf("both --id and --password are required")
	}

	logger.Info("creating user login record", slog.String("user_id", userID))

	hashed, err := useCase.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	record := store.Item{
		"user_id":  userID,
		"password": hashed,
	}
	if err := st.PutItem(ctx, userTable, record); err != nil {
		return fmt.Errorf("failed to store user record: %w", err)
	}

	fmt.Fprintf(io.Writer, "User %s created.\n", userID)
	return nil
}
