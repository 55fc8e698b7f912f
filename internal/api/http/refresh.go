package http

import (
	"net/http"

	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

// RefreshHandler serves POST /auth/refresh. No body: the refresh token
// arrives as a cookie or not at all.
type RefreshHandler struct {
	AuthService *service.AuthService
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ServeHTTP godoc
//
//	@Summary		Refresh access token
//	@Description	Exchanges the refreshToken cookie for a new access token. The refresh token itself is not rotated.
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	refreshResponse		"New access token"
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing, invalid or expired refresh token; or user no longer exists"
//	@Failure		500	{object}	httpx.ErrorResponse	"Internal error"
//	@Router			/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		errRefreshMissing.Write(w)
		return
	}

	access, err := h.AuthService.Refresh(ctx, cookie.Value)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == errServerError {
			log.Error("refresh failed", "err", err)
		}
		apiErr.Write(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}
