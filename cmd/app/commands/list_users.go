package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/domgiordano/xomper-back-end/internal/store"
)

// RunListUsers prints the user id of every stored login record.
func RunListUsers(
	ctx context.Context,
	st store.Store,
	userTable string,
	logger *slog.Logger,
	io IOTuple,
) error {
	logger.Info("listing user login records", slog.String("table", userTable))

	records, err := st.Scan(ctx, userTable)
	if err != nil {
		return fmt.Errorf("failed to scan user table: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		if id, ok := record["user_id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintln(io.Writer, id)
	}
	fmt.Fprintf(io.Writer, "%d users.\n", len(ids))
	return nil
}
