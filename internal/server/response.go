package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/colorcraft/colorcraft/internal/colour"
	imgpkg "github.com/colorcraft/colorcraft/internal/image"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// requestError is a client mistake reported verbatim with status 400.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	var reqErr *requestError
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &reqErr),
		errors.Is(err, colour.ErrInvalidParameter),
		errors.Is(err, colour.ErrEmptyPalette),
		errors.Is(err, imgpkg.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, colour.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
