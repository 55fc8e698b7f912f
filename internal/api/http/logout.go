package http

import (
	"net/http"

	"github.com/wanderstay/wanderstay/pkg/httpx"
)

// LogoutHandler serves POST /auth/logout.
type LogoutHandler struct {
	// SecureCookies must match the login handler so the clearing cookie
	// actually replaces the one the browser holds.
	SecureCookies bool
}

type logoutResponse struct {
	Message string `json:"message"`
}

// ServeHTTP godoc
//
//	@Summary		User logout
//	@Description	Clears the refresh cookie. Idempotent: succeeds whether or not a session existed.
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	logoutResponse	"Logout confirmation"
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clearRefreshCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, logoutResponse{Message: "Logged out successfully"})
}
