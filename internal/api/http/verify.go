package http

import (
	"net/http"

	"github.com/wanderstay/wanderstay/pkg/httpx"
)

// VerifyHandler serves GET /auth/verify, behind the require-auth gate.
// It answers from the token claims alone; no store read. The point of the
// endpoint is "is this access token still good", not "load my profile".
type VerifyHandler struct{}

type verifyResponse struct {
	User verifyUser `json:"user"`
}

type verifyUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ServeHTTP godoc
//
//	@Summary		Verify access token
//	@Description	Confirms the presented access token is valid and returns the identity it carries.
//	@Tags			Authentication
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	verifyResponse		"Token identity"
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing, invalid or expired access token"
//	@Router			/auth/verify [get].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth; belt and braces for misrouting.
		errServerError.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, verifyResponse{
		User: verifyUser{ID: claims.Subject, Username: claims.Username},
	})
}
