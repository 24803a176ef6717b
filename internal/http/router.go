package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/signoff/internal/http/deliverable"
	authMiddleware "github.com/MrJamesThe3rd/signoff/internal/http/middleware"
	"github.com/MrJamesThe3rd/signoff/internal/http/portal"
	"github.com/MrJamesThe3rd/signoff/internal/http/project"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
	"github.com/MrJamesThe3rd/signoff/internal/http/scope"
)

type Options struct {
	AllowedOrigins []string
	Verifier       authMiddleware.Verifier
	Owners         authMiddleware.Authorizer
	// AccessLog receives one line per request. Defaults to stdout.
	AccessLog io.Writer
}

func New(
	opts Options,
	projectsV1 *project.Handler,
	scopesV1 *scope.Handler,
	deliverablesV1 *deliverable.Handler,
	portalV1 *portal.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.AccessLog))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", portal.TokenHeader},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/client", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			portalV1.Routes(r)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(authMiddleware.Authenticate(opts.Verifier))
			projectsV1.Routes(r)

			r.Route("/{projectID}", func(r chi.Router) {
				r.Use(authMiddleware.ProjectOwner(opts.Owners))
				projectsV1.ProjectRoutes(r)

				r.Route("/scopes", scopesV1.Routes)
				r.Route("/deliverables", deliverablesV1.Routes)
			})
		})
	})

	return router
}
