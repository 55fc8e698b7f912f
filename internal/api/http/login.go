package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

// LoginHandler serves POST /login.
type LoginHandler struct {
	AuthService *service.AuthService

	// SecureCookies controls the cookie Secure attribute (prod only).
	SecureCookies bool
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string            `json:"accessToken"`
	User        domain.PublicUser `json:"user"`
}

// ServeHTTP godoc
//
//	@Summary		User login
//	@Description	Verifies credentials and starts a session. The access token is returned in the body; the refresh token is set as an HttpOnly cookie.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		loginRequest	true	"Username and password"
//	@Success		200			{object}	loginResponse	"accessToken and public user fields"
//	@Failure		400			{object}	httpx.ErrorResponse	"Malformed request body"
//	@Failure		401			{object}	httpx.ErrorResponse	"Invalid credentials"
//	@Failure		500			{object}	httpx.ErrorResponse	"Internal error"
//	@Header			200			{string}	Set-Cookie	"refreshToken=<jwt>; HttpOnly; SameSite=Strict; Max-Age=604800"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	var details []httpx.FieldError
	if req.Username == "" {
		details = append(details, httpx.FieldError{Field: "username", Message: "username is required"})
	}
	if req.Password == "" {
		details = append(details, httpx.FieldError{Field: "password", Message: "password is required"})
	}
	if len(details) > 0 {
		httpx.WriteValidationError(w, "Validation failed", details)
		return
	}

	session, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == errServerError {
			log.Error("login failed", "err", err)
		}
		apiErr.Write(w)
		return
	}

	setRefreshCookie(w, session.RefreshToken, h.AuthService.RefreshTTL, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		AccessToken: session.AccessToken,
		User:        session.User.Public(),
	})
}
