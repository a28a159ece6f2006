package league

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

const testLeagueTable = "xomper-league-data"

// MockSleeperAPI is a mock implementation of SleeperAPI.
type MockSleeperAPI struct {
	mock.Mock
}

func (m *MockSleeperAPI) GetLeague(ctx context.Context, leagueID string) (map[string]any, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSleeperAPI) GetLeagueUsers(ctx context.Context, leagueID string) ([]map[string]any, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockSleeperAPI) GetLeagueRosters(ctx context.Context, leagueID string) ([]map[string]any, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func newTestUseCase(st store.Store, sleeperClient SleeperAPI) *UseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUseCase(st, sleeperClient, testLeagueTable, logger)
}

func TestGet_FansOutAllThreeReads(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("GetLeague", mock.Anything, "league-1").
		Return(map[string]any{"league_id": "league-1", "name": "The Dynasty League"}, nil)
	sleeperClient.On("GetLeagueUsers", mock.Anything, "league-1").
		Return([]map[string]any{{"user_id": "dom"}, {"user_id": "steve"}}, nil)
	sleeperClient.On("GetLeagueRosters", mock.Anything, "league-1").
		Return([]map[string]any{{"roster_id": float64(1)}}, nil)

	uc := newTestUseCase(&storemocks.MockStore{}, sleeperClient)
	result, err := uc.Get(context.Background(), "league-1")

	require.NoError(t, err)
	league := result["league"].(map[string]any)
	assert.Equal(t, "The Dynasty League", league["name"])
	assert.Len(t, result["leagueUsers"], 2)
	assert.Len(t, result["leagueRosters"], 1)
	sleeperClient.AssertExpectations(t)
}

func TestGet_SingleFetchFailureFailsRead(t *testing.T) {
	upstream := apperrors.New(
		apperrors.KindUpstreamAPIFailure, "league api request failed", "sleeper", "GetLeagueRosters",
	)

	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("GetLeague", mock.Anything, "league-1").
		Return(map[string]any{"league_id": "league-1"}, nil).Maybe()
	sleeperClient.On("GetLeagueUsers", mock.Anything, "league-1").
		Return([]map[string]any{}, nil).Maybe()
	sleeperClient.On("GetLeagueRosters", mock.Anything, "league-1").
		Return(nil, upstream)

	uc := newTestUseCase(&storemocks.MockStore{}, sleeperClient)
	_, err := uc.Get(context.Background(), "league-1")

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindUpstreamAPIFailure, typed.Kind)
}

func TestUpdate_FoldsMemberListIntoRecord(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("GetLeague", mock.Anything, "league-1").
		Return(map[string]any{"league_id": "league-1"}, nil)
	sleeperClient.On("GetLeagueUsers", mock.Anything, "league-1").
		Return([]map[string]any{{"user_id": "dom"}, {"user_id": "steve"}, {"display_name": "no-id"}}, nil)

	st := &storemocks.MockStore{}
	st.On("PutItem", mock.Anything, testLeagueTable, mock.MatchedBy(func(item store.Item) bool {
		ids, ok := item["user_ids"].([]string)
		return ok && len(ids) == 2 && ids[0] == "dom" && ids[1] == "steve"
	})).Return(nil)

	uc := newTestUseCase(st, sleeperClient)
	message, err := uc.Update(context.Background(), "league-1")

	require.NoError(t, err)
	assert.Equal(t, "League league-1 updated in table.", message)
	st.AssertExpectations(t)
}

func TestUpdate_StoreFailurePropagates(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("GetLeague", mock.Anything, "league-1").
		Return(map[string]any{"league_id": "league-1"}, nil)
	sleeperClient.On("GetLeagueUsers", mock.Anything, "league-1").
		Return([]map[string]any{}, nil)

	st := &storemocks.MockStore{}
	st.On("PutItem", mock.Anything, testLeagueTable, mock.Anything).
		Return(apperrors.New(apperrors.KindStoreFailure, "table operation failed", "store", "PutItem"))

	uc := newTestUseCase(st, sleeperClient)
	_, err := uc.Update(context.Background(), "league-1")

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindStoreFailure, typed.Kind)
}

func TestHandlers_GetRequiresLeagueID(t *testing.T) {
	uc := newTestUseCase(&storemocks.MockStore{}, &MockSleeperAPI{})
	h := NewHandlers(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := h.Get(context.Background(), handler.Event{})

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
}

func TestHandlers_UpdateParsesStringBody(t *testing.T) {
	sleeperClient := &MockSleeperAPI{}
	sleeperClient.On("GetLeague", mock.Anything, "league-1").
		Return(map[string]any{"league_id": "league-1"}, nil)
	sleeperClient.On("GetLeagueUsers", mock.Anything, "league-1").
		Return([]map[string]any{}, nil)

	st := &storemocks.MockStore{}
	st.On("PutItem", mock.Anything, testLeagueTable, mock.Anything).Return(nil)

	uc := newTestUseCase(st, sleeperClient)
	h := NewHandlers(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := h.Update(context.Background(), handler.Event{Body: `{"leagueId":"league-1"}`})

	require.NoError(t, err)
	assert.Equal(t, "League league-1 updated in table.", result)
}
