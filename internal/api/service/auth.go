package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/pkg/cryptox"
	"github.com/wanderstay/wanderstay/pkg/jwtx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password. Collapsing them here is load-bearing: callers cannot leak
	// which one happened even by accident.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrInvalidRefresh covers every way a presented refresh token can be
	// bad: malformed, forged, or expired. An expired refresh token just
	// means the session lapsed; the client re-logs-in either way.
	ErrInvalidRefresh = errors.New("invalid_refresh_token")

	// ErrUserNotFound means a structurally valid refresh token names a
	// subject that no longer exists. Tokens can outlive deleted accounts
	// by up to the refresh TTL; the existence re-check closes that hole.
	ErrUserNotFound = errors.New("user_not_found")
)

// Session is the result of a successful login: both tokens plus the user
// record they were derived from, all minted at a single instant.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         domain.User
}

// AuthService owns the authentication session lifecycle. It holds no
// per-session state; everything needed to resume a session travels with
// the client as its refresh token.
type AuthService struct {
	Store store.Store

	AccessSigner    jwtx.Signer
	RefreshSigner   jwtx.Signer
	RefreshVerifier jwtx.Verifier

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login verifies the credential pair against the user store and, on
// success, issues a fresh access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Info("login rejected", "username", username)
			return nil, ErrInvalidCredentials
		}
		// A hash we can't even parse is store corruption, not a bad login.
		return nil, fmt.Errorf("verifying password: %w", err)
	}

	now := time.Now().UTC()

	access, err := s.AccessSigner.Sign(
		jwtx.NewClaims(user.ID, user.Username, s.AccessTTL, s.Issuer, now))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refresh, err := s.RefreshSigner.Sign(
		jwtx.NewClaims(user.ID, user.Username, s.RefreshTTL, s.Issuer, now))
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	log.Info("login succeeded", "user_id", user.ID)

	return &Session{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated: the same cookie keeps working until
// its own expiry. The subject is re-fetched from the store so tokens for
// deleted accounts stop working immediately, and a store failure during
// that check surfaces as its own error, never as "user not found".
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.RefreshVerifier.Verify(refreshToken)
	if err != nil {
		log.Info("refresh token rejected", "err", err)
		return "", ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("refresh for deleted user", "user_id", claims.Subject)
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("re-checking user: %w", err)
	}

	// Claims come from the live record, not the old token: a renamed user
	// gets their current username in the new access token.
	access, err := s.AccessSigner.Sign(
		jwtx.NewClaims(user.ID, user.Username, s.AccessTTL, s.Issuer, time.Now().UTC()))
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}

	return access, nil
}
