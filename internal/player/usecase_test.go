package player

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/store"
	storemocks "github.com/domgiordano/xomper-back-end/internal/store/mocks"
)

const testPlayerTable = "xomper-player-data"

// MockSleeperAPI is a mock implementation of SleeperAPI.
type MockSleeperAPI struct {
	mock.Mock
}

func (m *MockSleeperAPI) FetchNFLPlayers(ctx context.Context) (map[string]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]any), args.Error(1)
}

func newTestUseCase(st store.Store, sleeperClient SleeperAPI) *UseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUseCase(st, sleeperClient, testPlayerTable, logger)
}

func TestGet_ReturnsStoredRecord(t *testing.T) {
	st := &storemocks.MockStore{}
	st.On("GetItem", mock.Anything, testPlayerTable, "player_id", "4046").
		Return(store.Item{"player_id": "4046", "data": map[string]any{"full_name": "Patrick Mahomes"}}, nil)

	uc := newTestUseCase(st, &MockSleeperAPI{})
	record, err := uc.Get(context.Background(), "4046")

	require.NoError(t, err)
	assert.Equal(t, "4046", record["player_id"])
}

func TestGet_AbsentPlayer(t *testing.T) {
	st := &storemocks.MockStore{}
	st.On("GetItem", mock.Anything, testPlayerTable, "player_id", "0").
		Return(nil, apperrors.New(apperrors.KindNotFound, "item not found", "store", "GetItem"))

	uc := newTestUseCase(st, &MockSleeperAPI{})
	_, err := uc.Get(context.Background(), "0")

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, typed.Kind)
}

func TestUpdateAll_WritesSortedRecords(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("FetchNFLPlayers", mock.Anything).Return(map[string]map[string]any{
		"9999": {"full_name": "Rookie"},
		"4046": {"full_name": "Patrick Mahomes"},
	}, nil)

	st := &storemocks.MockStore{}
	st.On("BatchPutItems", mock.Anything, testPlayerTable, mock.MatchedBy(func(items []store.Item) bool {
		if len(items) != 2 {
			return false
		}
		first, second := items[0], items[1]
		_, hasTimestamp := first["last_updated"].(string)
		return first["player_id"] == "4046" && second["player_id"] == "9999" && hasTimestamp
	})).Return(nil)

	uc := newTestUseCase(st, sleeperClient)
	message, err := uc.UpdateAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Updated 2 Items in DynamoDB Table xomper-player-data.", message)
	st.AssertExpectations(t)
}

func TestUpdateAll_UpstreamFailure(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("FetchNFLPlayers", mock.Anything).
		Return(nil, apperrors.New(apperrors.KindUpstreamAPIFailure, "player api request failed", "sleeper", "FetchNFLPlayers"))

	uc := newTestUseCase(&storemocks.MockStore{}, sleeperClient)
	_, err := uc.UpdateAll(context.Background())

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUpstreamAPIFailure, typed.Kind)
}

func TestHandlers_GetRequiresPlayerID(t *testing.T) {
	uc := newTestUseCase(&storemocks.MockStore{}, &MockSleeperAPI{})
	h := NewHandlers(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := h.Get(context.Background(), handler.Event{
		QueryStringParameters: map[string]string{"playerId": "4046", "extra": "nope"},
	})

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
}

func TestHandlers_UpdateAll(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("FetchNFLPlayers", mock.Anything).Return(map[string]map[string]any{}, nil)

	st := &storemocks.MockStore{}
	st.On("BatchPutItems", mock.Anything, testPlayerTable, mock.Anything).Return(nil)

	uc := newTestUseCase(st, sleeperClient)
	h := NewHandlers(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := h.UpdateAll(context.Background(), handler.Event{})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"message": "Updated 0 Items in DynamoDB Table xomper-player-data.",
	}, result)
}
