package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/internal/api/store/drivers/sqlite"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/idx"
	"github.com/wanderstay/wanderstay/pkg/jwtx"
)

const (
	testAccessSecret  = "access-secret-0123456789abcdef"
	testRefreshSecret = "refresh-secret-0123456789abcdef"
	testIssuer        = "wanderstay-test"
)

// newTestRouter wires a fully-routed Router against an in-memory database.
// Each call gets fresh rate limit buckets, so tests don't bleed into each
// other.
func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	accessSigner, err := jwtx.NewSignerHS256([]byte(testAccessSecret))
	require.NoError(t, err)
	refreshSigner, err := jwtx.NewSignerHS256([]byte(testRefreshSecret))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(
		jwtx.NewVerifierHS256([]byte(testAccessSecret), testIssuer),
		"test",
		false,
		logger,
	)
	r.AuthService = &service.AuthService{
		Store:           st,
		AccessSigner:    accessSigner,
		RefreshSigner:   refreshSigner,
		RefreshVerifier: jwtx.NewVerifierHS256([]byte(testRefreshSecret), testIssuer),
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}
	r.UserService = &service.UserService{Store: st}
	r.PropertyService = &service.PropertyService{Store: st}
	r.ApplyRoutes()

	return r, st
}

func seedUser(t *testing.T, r *Router, username, password string) domain.User {
	t.Helper()

	user, err := r.UserService.Register(context.Background(), service.RegisterParams{
		Username: username,
		Password: password,
		Name:     "Test " + username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func seedProperty(t *testing.T, st store.Store, hostID, title, location string, maxGuests int) domain.Property {
	t.Helper()

	p := domain.Property{
		ID:            idx.New().String(),
		HostID:        hostID,
		Title:         title,
		Description:   "A place to stay",
		Location:      location,
		PricePerNight: 100,
		BedroomCount:  2,
		BathroomCount: 1,
		MaxGuestCount: maxGuests,
	}
	require.NoError(t, st.Properties().CreateProperty(context.Background(), p))
	return p
}

func postJSON(t *testing.T, h http.Handler, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func getPath(t *testing.T, h http.Handler, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func doLogin(t *testing.T, h http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return postJSON(t, h, "/login",
		`{"username":"`+username+`","password":"`+password+`"}`)
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// errorMessage decodes the uniform error envelope and asserts its shape.
func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	resp := decodeJSON[httpx.ErrorResponse](t, rr)
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)
	return resp.Error
}

// refreshCookieFrom digs the refresh cookie out of a response, failing the
// test if it isn't there.
func refreshCookieFrom(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rr.Result().Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	t.Fatal("no refreshToken cookie in response")
	return nil
}

// mintRefreshToken signs a refresh token directly, bypassing login, so
// tests can produce expired or otherwise unusual tokens.
func mintRefreshToken(t *testing.T, r *Router, userID, username string, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	token, err := r.AuthService.RefreshSigner.Sign(
		jwtx.NewClaims(userID, username, ttl, testIssuer, issuedAt))
	require.NoError(t, err)
	return token
}
