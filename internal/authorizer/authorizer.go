// Package authorizer implements the access decision gate invoked ahead of every
// caller-facing operation. It evaluates a bearer credential against the signing
// secret and produces an allow/deny policy document for the requested resource.
//
// The gate is stateless and fail-closed: any internal fault, malformed input, or
// unverifiable credential collapses to a Deny for the originally requested
// resource. It never returns an error and never panics.
package authorizer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// bearerPrefix is stripped verbatim from the credential. Only the exact
// "Bearer " prefix is recognized; this mirrors the token minting side and keeps
// the gate free of header-grammar parsing.
const bearerPrefix = "Bearer "

// Request carries the two inputs of an access decision: the method ARN the
// caller wants to invoke and the raw credential string, either possibly empty.
type Request struct {
	MethodArn string `json:"methodArn"`
	Token     string `json:"authorizationToken"`
}

// Authorizer is the access decision gate.
type Authorizer struct {
	secret []byte
	logger *slog.Logger
}

// New creates a gate that verifies HS256 signatures with the given secret.
func New(secret []byte, logger *slog.Logger) *Authorizer {
	return &Authorizer{secret: secret, logger: logger}
}

// Authorize produces exactly one access decision for the request. A valid,
// unexpired token yields Allow on a stage-widened resource pattern so the
// platform can cache one decision across sibling routes; everything else yields
// Deny on the original resource.
func (a *Authorizer) Authorize(ctx context.Context, req Request) (resp Response) {
	// The gate must never propagate a fault to its caller: an unhandled panic
	// in an authorization path would fail open at the platform level.
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("authorizer recovered from panic", slog.Any("panic", r))
			resp = newPolicy(EffectDeny, req.MethodArn)
		}
	}()

	if req.Token == "" || req.MethodArn == "" {
		a.logger.Warn("authorizer deny: missing token or method arn")
		return newPolicy(EffectDeny, req.MethodArn)
	}

	claims := a.decodeToken(req.Token)
	if claims == nil {
		a.logger.Warn("authorizer deny: no claims recovered")
		return newPolicy(EffectDeny, req.MethodArn)
	}

	widened, ok := widenResource(req.MethodArn)
	if !ok {
		a.logger.Warn("authorizer deny: malformed method arn")
		return newPolicy(EffectDeny, req.MethodArn)
	}

	return newPolicy(EffectAllow, widened)
}

// decodeToken verifies the credential and returns its claims, or nil when the
// signature is invalid or the token is expired. The two cases are logged
// separately but handled identically. The credential itself is never logged.
func (a *Authorizer) decodeToken(token string) jwt.MapClaims {
	raw := strings.Replace(token, bearerPrefix, "", 1)

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.logger.Debug("token signature expired, log in again")
		} else {
			a.logger.Debug("invalid token, log in again")
		}
		return nil
	}
	return claims
}

// widenResource rewrites a six-segment method ARN
// (arn:partition:service:region:account:apiId/stage/verb/path...) into the
// pattern covering every verb and path under the same stage:
// arn:partition:service:region:account:apiId/stage/*.
func widenResource(methodArn string) (string, bool) {
	segments := strings.SplitN(methodArn, ":", 6)
	if len(segments) != 6 {
		return "", false
	}

	pathParts := strings.Split(segments[5], "/")
	if len(pathParts) < 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", false
	}

	prefix := strings.Join(segments[:5], ":")
	return prefix + ":" + pathParts[0] + "/" + pathParts[1] + "/*", true
}
