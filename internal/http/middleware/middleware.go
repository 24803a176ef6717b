// Package middleware resolves the authenticated owner and the project a
// request operates on.
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/auth"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
	"github.com/MrJamesThe3rd/signoff/internal/project"
)

type ctxKey int

const (
	ownerKey ctxKey = iota
	projectKey
)

type Verifier interface {
	Verify(token string) (uuid.UUID, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, projectID, ownerID uuid.UUID) (*project.Project, error)
}

// Authenticate requires a valid bearer token and stores its owner id in the
// request context.
func Authenticate(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				respond.Error(w, r, apperr.ErrUnauthorized)
				return
			}

			ownerID, err := v.Verify(token)
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, ownerID)))
		})
	}
}

func OwnerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerKey).(uuid.UUID)
	return id, ok
}

// ProjectOwner loads the {projectID} route parameter's project and rejects the
// request unless the authenticated owner owns it.
func ProjectOwner(a Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, ok := OwnerID(r.Context())
			if !ok {
				respond.Error(w, r, apperr.ErrUnauthorized)
				return
			}

			projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
			if err != nil {
				respond.Error(w, r, project.ErrNotFound)
				return
			}

			p, err := a.Authorize(r.Context(), projectID, ownerID)
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), projectKey, p)))
		})
	}
}

// Project returns the project stored by ProjectOwner.
func Project(ctx context.Context) *project.Project {
	p, _ := ctx.Value(projectKey).(*project.Project)
	return p
}
