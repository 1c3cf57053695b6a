package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("⚠️ failed to encode response:", err)
	}
}

// writeError maps an application error onto an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	var notFound *appErrors.ErrRecordNotFound
	var crmErr *appErrors.CRMError

	switch {
	case appErrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrUnauthorized), errors.Is(err, appErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrPasswordLoginDisabled):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &crmErr):
		return http.StatusBadGateway
	case errors.Is(err, appErrors.ErrCameraUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 12<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return false
	}
	return true
}
