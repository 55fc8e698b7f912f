package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wanderstay/wanderstay/internal/api/service"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/pkg/httpx"
)

// apiError pairs an HTTP status with the exact message clients see. The
// messages are contract: the frontend branches on them.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Write sends the uniform {"success":false,"error":...} body.
func (e *apiError) Write(w http.ResponseWriter) {
	httpx.WriteError(w, e.Status, e.Message)
}

var (
	errInvalidCredentials = &apiError{http.StatusUnauthorized, "Invalid credentials"}
	errRefreshMissing     = &apiError{http.StatusUnauthorized, "Refresh token not provided"}
	errInvalidRefresh     = &apiError{http.StatusUnauthorized, "Invalid refresh token"}
	errUserNotFound       = &apiError{http.StatusUnauthorized, "User not found"}
	errUsernameTaken      = &apiError{http.StatusConflict, "Username or email already in use"}
	errRecordNotFound     = &apiError{http.StatusNotFound, "Record not found"}
	errRouteNotFound      = &apiError{http.StatusNotFound, "Route not found"}
	errServerError        = &apiError{http.StatusInternalServerError, "Something went wrong"}
)

// mapServiceError is the single, total mapping from service-layer failures
// to the wire contract. Every sentinel the services can return has a case;
// anything unrecognised is an upstream failure and becomes a generic 500
// so internal detail never leaks.
func mapServiceError(err error) *apiError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, service.ErrInvalidRefresh):
		return errInvalidRefresh
	case errors.Is(err, service.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		return errUsernameTaken
	case errors.Is(err, store.ErrNotFound):
		return errRecordNotFound
	default:
		return errServerError
	}
}
