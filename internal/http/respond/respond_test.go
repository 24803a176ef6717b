package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
)

type envelope struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{name: "Validation", err: apperr.Validation("content is required"), wantStatus: http.StatusBadRequest, wantKind: "VALIDATION_ERROR", wantMessage: "content is required"},
		{name: "NotFound", err: apperr.NotFound("project not found"), wantStatus: http.StatusNotFound, wantKind: "NOT_FOUND", wantMessage: "project not found"},
		{name: "Unauthorized", err: apperr.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantKind: "UNAUTHORIZED", wantMessage: "credentials required"},
		{name: "Forbidden", err: apperr.ErrForbidden, wantStatus: http.StatusForbidden, wantKind: "FORBIDDEN", wantMessage: "not authorized"},
		{name: "WrappedConflict", err: fmt.Errorf("locking: %w", apperr.Conflict("scope is locked")), wantStatus: http.StatusConflict, wantKind: "CONFLICT", wantMessage: "scope is locked"},
		{name: "PlainErrorIsOpaque", err: errors.New("pq: password leaked"), wantStatus: http.StatusInternalServerError, wantKind: "INTERNAL", wantMessage: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/x", nil)

			respond.Error(w, r, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Error.Kind)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}

func TestError_LogsRoutePatternNotPath(t *testing.T) {
	var logs bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	router := chi.NewRouter()
	router.Get("/access/{token}", func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, errors.New("connection reset"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/access/very-secret-token-value", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), "route=/access/{token}")
	assert.Contains(t, logs.String(), "connection reset")
	assert.NotContains(t, logs.String(), "very-secret-token-value")
}

func TestDecode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, respond.Decode(r, &v))
	assert.Equal(t, "a", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":`))
	err := respond.Decode(r, &v)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(``))
	err = respond.Decode(r, &v)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
