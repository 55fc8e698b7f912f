package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wanderstay/wanderstay/pkg/jwtx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

// Messages the auth gates put on the wire. Clients branch on these, so
// they are part of the API contract.
const (
	MsgTokenRequired = "Access token required"
	MsgTokenExpired  = "Access token expired"
	MsgTokenInvalid  = "Invalid access token"
)

// RequireAuth gates a route behind a valid bearer access token. The three
// failure modes get distinct messages: a client that sees "expired" knows
// to hit the refresh endpoint, one that sees "invalid" should re-login.
func RequireAuth(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				WriteError(w, http.StatusUnauthorized, MsgTokenRequired)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, http.StatusUnauthorized, MsgTokenExpired)
					return
				}
				log.Warn("access token rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, MsgTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// OptionalAuth performs the same extraction as RequireAuth but degrades to
// an anonymous context on any failure instead of rejecting the request.
// For routes that personalize output when a session is present but serve
// anonymous traffic too. It never writes a response of its own.
func OptionalAuth(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				// Anonymous by contract, not by omission.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}

	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if raw == "" {
		return "", false
	}
	return raw, true
}
