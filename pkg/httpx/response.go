package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body every failure in the API maps
// to. Success is always false here; it exists so clients can branch on a
// single field regardless of status code.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError carries a per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type header and disables caching; everything this API returns is
// either sensitive or per-request.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform error body with the given status.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, ErrorResponse{Success: false, Error: msg})
}

// WriteValidationError writes a 400 with per-field messages.
func WriteValidationError(w http.ResponseWriter, msg string, details []FieldError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   msg,
		Details: details,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for token responses, harmless everywhere else.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
