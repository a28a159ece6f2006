// Package user implements login and Sleeper profile operations.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/allisson/go-pwdhash"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/store"
)

const handlerName = "user"

// SleeperAPI is the slice of the Sleeper client used by user operations.
type SleeperAPI interface {
	GetUser(ctx context.Context, userID string) (map[string]any, error)
}

// UseCase handles user login and profile synchronization.
type UseCase struct {
	store       store.Store
	sleeper     SleeperAPI
	hasher      *pwdhash.PasswordHasher
	secret      []byte
	tokenTTL    time.Duration
	userTable   string
	leagueTable string
	logger      *slog.Logger
}

// NewUseCase creates a user UseCase.
func NewUseCase(
	st store.Store,
	sleeperClient SleeperAPI,
	secret []byte,
	tokenTTL time.Duration,
	userTable, leagueTable string,
	logger *slog.Logger,
) (*UseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.New(
			apperrors.KindInternal, "failed to create password hasher", handlerName, "NewUseCase",
		)
	}

	return &UseCase{
		store:       st,
		sleeper:     sleeperClient,
		hasher:      hasher,
		secret:      secret,
		tokenTTL:    tokenTTL,
		userTable:   userTable,
		leagueTable: leagueTable,
		logger:      logger,
	}, nil
}

// HashPassword hashes a plain password for storage.
func (uc *UseCase) HashPassword(password string) (string, error) {
	hashed, err := uc.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.New(
			apperrors.KindInternal, "failed to hash password", handlerName, "HashPassword",
		)
	}
	return hashed, nil
}

// Login checks the stored password, confirms league membership through the
// league record, and returns the Sleeper profile with a session token. Every
// rejection comes back as the same Authorization error so a caller cannot
// tell which of the three checks failed.
func (uc *UseCase) Login(ctx context.Context, userID, leagueID, password string) (map[string]any, error) {
	blocked := apperrors.New(apperrors.KindAuthorization, "login blocked", handlerName, "Login")

	record, err := uc.store.GetItem(ctx, uc.userTable, "user_id", userID)
	if err != nil {
		if typed, ok := apperrors.AsError(err); ok && typed.Kind == apperrors.KindNotFound {
			uc.logger.Warn("login blocked: unknown user", slog.String("user_id", userID))
			return nil, blocked
		}
		return nil, err
	}

	hashed, _ := record["password"].(string)
	if ok, err := uc.hasher.Verify([]byte(password), hashed); err != nil || !ok {
		uc.logger.Warn("login blocked: password mismatch", slog.String("user_id", userID))
		return nil, blocked
	}

	profile, err := uc.sleeper.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	member, err := uc.isLeagueMember(ctx, leagueID, profile)
	if err != nil {
		return nil, err
	}
	if !member {
		uc.logger.Warn("login blocked: user not in league",
			slog.String("user_id", userID),
			slog.String("league_id", leagueID),
		)
		return nil, blocked
	}

	token, err := uc.mintToken(userID, leagueID)
	if err != nil {
		return nil, err
	}

	// The active session token lives on the login record so a later device
	// can be matched against it.
	if err := uc.store.UpdateItemField(ctx, uc.userTable, "user_id", userID, "token", token); err != nil {
		return nil, err
	}

	uc.logger.Info("login successful", slog.String("user_id", userID))
	profile["token"] = token
	return profile, nil
}

// Get returns the Sleeper profile for a user.
func (uc *UseCase) Get(ctx context.Context, userID string) (map[string]any, error) {
	return uc.sleeper.GetUser(ctx, userID)
}

// Update refreshes the stored user record from the Sleeper profile.
func (uc *UseCase) Update(ctx context.Context, userID string) (string, error) {
	profile, err := uc.sleeper.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := uc.store.PutItem(ctx, uc.userTable, profile); err != nil {
		return "", err
	}
	return "User " + userID + " updated in table.", nil
}

// isLeagueMember checks the stored league record's member list against the
// Sleeper profile id.
func (uc *UseCase) isLeagueMember(ctx context.Context, leagueID string, profile map[string]any) (bool, error) {
	league, err := uc.store.GetItem(ctx, uc.leagueTable, "league_id", leagueID)
	if err != nil {
		if typed, ok := apperrors.AsError(err); ok && typed.Kind == apperrors.KindNotFound {
			return false, nil
		}
		return false, err
	}

	profileID, _ := profile["user_id"].(string)
	if profileID == "" {
		profileID, _ = profile["id"].(string)
	}

	for _, member := range memberIDs(league["user_ids"]) {
		if member == profileID && member != "" {
			return true, nil
		}
	}
	return false, nil
}

// mintToken issues a short-lived HS256 session token.
func (uc *UseCase) mintToken(userID, leagueID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    userID,
		"league": leagueID,
		"iat":    now.Unix(),
		"exp":    now.Add(uc.tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return "", apperrors.New(
			apperrors.KindInternal, "failed to sign session token", handlerName, "mintToken",
		)
	}
	return signed, nil
}

// memberIDs normalizes the league member list, which decodes as []any from
// the table.
func memberIDs(value any) []string {
	switch list := value.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
