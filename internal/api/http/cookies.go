package http

import (
	"net/http"
	"time"
)

// refreshCookieName is part of the API contract; the frontend never reads
// this cookie (HttpOnly) but the browser sends it back on /auth/* calls.
const refreshCookieName = "refreshToken"

// setRefreshCookie stores the refresh token as an HttpOnly cookie. Secure
// is only set in prod so local development over plain HTTP still works.
// SameSite=Strict keeps the cookie off cross-site requests entirely.
func setRefreshCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the cookie immediately. Logout is the only
// server-side invalidation we have: the token itself stays valid until
// its exp, there is no revocation list.
func clearRefreshCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
