// Package respond writes JSON responses and the error envelope shared by all handlers.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
)

// maxBodyBytes caps request bodies read by Decode.
const maxBodyBytes = 1 << 20

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindConflict:     http.StatusConflict,
	apperr.KindInternal:     http.StatusInternalServerError,
}

type errorBody struct {
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps err to its HTTP status and writes the error envelope. Internal
// causes are logged, never returned.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)

	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"route", route(r),
			"error", err,
		)
	}

	JSON(w, status, errorEnvelope{Error: errorBody{Kind: kind, Message: apperr.MessageOf(err)}})
}

// route returns the matched route pattern, which keeps path credentials such
// as client access tokens out of the logs.
func route(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}

// Decode reads a JSON body into v. Malformed input is a validation error.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("request body is required")
		}

		return apperr.Wrap(apperr.KindValidation, "invalid JSON body", err)
	}

	return nil
}
