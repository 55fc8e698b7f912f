package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/internal/api/store/drivers/sqlite"
	"github.com/wanderstay/wanderstay/pkg/jwtx"
)

const testIssuer = "wanderstay-test"

var (
	accessSecret  = []byte("access-secret-access-secret-0000")
	refreshSecret = []byte("refresh-secret-refresh-secret-00")
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	accessSigner, err := jwtx.NewSignerHS256(accessSecret)
	require.NoError(t, err)
	refreshSigner, err := jwtx.NewSignerHS256(refreshSecret)
	require.NoError(t, err)

	return &AuthService{
		Store:           st,
		AccessSigner:    accessSigner,
		RefreshSigner:   refreshSigner,
		RefreshVerifier: jwtx.NewVerifierHS256(refreshSecret, testIssuer),
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}
}

func seedUser(t *testing.T, st store.Store, username, password string) string {
	t.Helper()

	users := &UserService{Store: st}
	user, err := users.Register(context.Background(), RegisterParams{
		Username: username,
		Password: password,
		Name:     "Test " + username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user.ID
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	seedUser(t, st, "alice", "correct")

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		session, err := auth.Login(ctx, "alice", "correct")
		require.NoError(t, err)
		require.NotEmpty(t, session.AccessToken)
		require.NotEmpty(t, session.RefreshToken)
		require.NotEqual(t, session.AccessToken, session.RefreshToken)
		require.Equal(t, "alice", session.User.Username)

		// Access token round-trips through the access verifier.
		claims, err := jwtx.NewVerifierHS256(accessSecret, testIssuer).Verify(session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, session.User.ID, claims.Subject)
		require.Equal(t, "alice", claims.Username)

		// Refresh token is signed with the refresh secret, not the access one.
		_, err = jwtx.NewVerifierHS256(accessSecret, testIssuer).Verify(session.RefreshToken)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
		refreshClaims, err := jwtx.NewVerifierHS256(refreshSecret, testIssuer).Verify(session.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, session.User.ID, refreshClaims.Subject)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := auth.Login(ctx, "nobody", "whatever")
		_, errWrongPw := auth.Login(ctx, "alice", "wrong")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		require.Equal(t, errUnknown, errWrongPw)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh mints a new access token only", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)
		userID := seedUser(t, st, "alice", "correct")

		session, err := auth.Login(ctx, "alice", "correct")
		require.NoError(t, err)

		access, err := auth.Refresh(ctx, session.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, access)

		claims, err := jwtx.NewVerifierHS256(accessSecret, testIssuer).Verify(access)
		require.NoError(t, err)
		require.Equal(t, userID, claims.Subject)
		require.Equal(t, "alice", claims.Username)
	})

	t.Run("garbage token", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)

		_, err := auth.Refresh(ctx, "not-a-jwt")
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("expired refresh token is invalid, not its own case", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)
		userID := seedUser(t, st, "alice", "correct")

		expired, err := auth.RefreshSigner.Sign(jwtx.NewClaims(
			userID, "alice", time.Minute, testIssuer, time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, expired)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("access token does not pass as refresh token", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)
		seedUser(t, st, "alice", "correct")

		session, err := auth.Login(ctx, "alice", "correct")
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, session.AccessToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("deleted user", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)
		userID := seedUser(t, st, "alice", "correct")

		session, err := auth.Login(ctx, "alice", "correct")
		require.NoError(t, err)

		require.NoError(t, st.Users().DeleteUser(ctx, userID))

		_, err = auth.Refresh(ctx, session.RefreshToken)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("new access token reflects the live record", func(t *testing.T) {
		st := newTestStore(t)
		auth := newAuthService(t, st)
		seedUser(t, st, "alice", "correct")

		session, err := auth.Login(ctx, "alice", "correct")
		require.NoError(t, err)

		access, err := auth.Refresh(ctx, session.RefreshToken)
		require.NoError(t, err)

		claims, err := jwtx.NewVerifierHS256(accessSecret, testIssuer).Verify(access)
		require.NoError(t, err)
		require.Equal(t, session.User.ID, claims.Subject)
	})
}

func TestSharedSecretFallback(t *testing.T) {
	// When no dedicated refresh secret is configured both signers share
	// the access secret; refresh must keep working.
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice", "correct")

	signer, err := jwtx.NewSignerHS256(accessSecret)
	require.NoError(t, err)

	auth := &AuthService{
		Store:           st,
		AccessSigner:    signer,
		RefreshSigner:   signer,
		RefreshVerifier: jwtx.NewVerifierHS256(accessSecret, testIssuer),
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}

	session, err := auth.Login(ctx, "alice", "correct")
	require.NoError(t, err)

	access, err := auth.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, access)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	first, err := users.Register(ctx, RegisterParams{
		Username: "alice",
		Password: "secret-password",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.NotEqual(t, "secret-password", first.PasswordHash)

	_, err = users.Register(ctx, RegisterParams{
		Username: "alice",
		Password: "other",
		Name:     "Alice Again",
		Email:    "alice2@example.com",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}
