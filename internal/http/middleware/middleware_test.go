package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/signoff/internal/auth"
	"github.com/MrJamesThe3rd/signoff/internal/http/middleware"
	"github.com/MrJamesThe3rd/signoff/internal/project"
)

const secret = "test-secret"

type authorizerFunc func(ctx context.Context, projectID, ownerID uuid.UUID) (*project.Project, error)

func (f authorizerFunc) Authorize(ctx context.Context, projectID, ownerID uuid.UUID) (*project.Project, error) {
	return f(ctx, projectID, ownerID)
}

func newRouter(a middleware.Authorizer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Authenticate(auth.NewVerifier(secret, "signoff")))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.OwnerID(r.Context())
		_, _ = w.Write([]byte(id.String()))
	})
	r.Route("/projects/{projectID}", func(r chi.Router) {
		r.Use(middleware.ProjectOwner(a))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(middleware.Project(r.Context()).Name))
		})
	})

	return r
}

func TestAuthenticate(t *testing.T) {
	ownerID := uuid.New()

	token, err := auth.NewIssuer(secret, "signoff").Issue(ownerID, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Valid", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "Missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "WrongScheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "Tampered", header: "Bearer " + token + "x", wantStatus: http.StatusUnauthorized},
	}

	router := newRouter(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, ownerID.String(), w.Body.String())
			}
		})
	}
}

func TestProjectOwner(t *testing.T) {
	ownerID := uuid.New()
	owned := &project.Project{ID: uuid.New(), OwnerID: ownerID, Name: "Mine"}

	token, err := auth.NewIssuer(secret, "signoff").Issue(ownerID, time.Hour)
	require.NoError(t, err)

	router := newRouter(authorizerFunc(func(_ context.Context, projectID, owner uuid.UUID) (*project.Project, error) {
		if projectID == owned.ID && owner == ownerID {
			return owned, nil
		}

		return nil, project.ErrNotFound
	}))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "Owned", path: "/projects/" + owned.ID.String(), wantStatus: http.StatusOK},
		{name: "NotOwned", path: "/projects/" + uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "MalformedID", path: "/projects/not-a-uuid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Mine", w.Body.String())
			}
		})
	}
}
