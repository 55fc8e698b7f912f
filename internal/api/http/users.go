package http

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/pkg/httpx"
	"github.com/wanderstay/wanderstay/pkg/slogx"
)

// RegisterHandler serves POST /users.
type RegisterHandler struct {
	UserService *service.UserService
}

type registerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phoneNumber,omitempty"`
	PictureURL string `json:"pictureUrl,omitempty"`
}

type registerResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
	} `json:"user"`
}

// validate returns per-field messages; empty means the payload is good.
func (req *registerRequest) validate() []httpx.FieldError {
	var details []httpx.FieldError

	if len(req.Username) < 3 || len(req.Username) > 50 {
		details = append(details, httpx.FieldError{Field: "username", Message: "username must be 3-50 characters"})
	}
	if len(req.Password) < 6 || len(req.Password) > 100 {
		details = append(details, httpx.FieldError{Field: "password", Message: "password must be 6-100 characters"})
	}
	if req.Name == "" || len(req.Name) > 100 {
		details = append(details, httpx.FieldError{Field: "name", Message: "name must be 1-100 characters"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		details = append(details, httpx.FieldError{Field: "email", Message: "email must be a valid address"})
	}

	return details
}

// ServeHTTP godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account. The password is stored only as a bcrypt hash.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		registerRequest		true	"New account fields"
//	@Success		201		{object}	registerResponse	"Created account (public fields)"
//	@Failure		400		{object}	httpx.ErrorResponse	"Validation failure with per-field details"
//	@Failure		409		{object}	httpx.ErrorResponse	"Username or email already in use"
//	@Failure		500		{object}	httpx.ErrorResponse	"Internal error"
//	@Router			/users [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "Invalid request body", nil)
		return
	}

	if details := req.validate(); len(details) > 0 {
		httpx.WriteValidationError(w, "Validation failed", details)
		return
	}

	user, err := h.UserService.Register(ctx, service.RegisterParams{
		Username:   req.Username,
		Password:   req.Password,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		apiErr := mapServiceError(err)
		if apiErr == errServerError {
			log.Error("registration failed", "err", err)
		}
		apiErr.Write(w)
		return
	}

	var resp registerResponse
	resp.User.ID = user.ID
	resp.User.Username = user.Username
	resp.User.Name = user.Name
	resp.User.Email = user.Email
	httpx.WriteJSON(w, http.StatusCreated, resp)
}
