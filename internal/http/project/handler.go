package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	deliverableHandler "github.com/MrJamesThe3rd/signoff/internal/http/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/http/middleware"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
	scopeHandler "github.com/MrJamesThe3rd/signoff/internal/http/scope"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

type Handler struct {
	projects     *project.Service
	scopes       *scope.Service
	deliverables *deliverable.Service
	invoices     *invoice.Service
}

func NewHandler(
	projects *project.Service,
	scopes *scope.Service,
	deliverables *deliverable.Service,
	invoices *invoice.Service,
) *Handler {
	return &Handler{
		projects:     projects,
		scopes:       scopes,
		deliverables: deliverables,
		invoices:     invoices,
	}
}

// Routes registers the collection routes. They need middleware.Authenticate.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

// ProjectRoutes registers routes for a single project. They need
// middleware.ProjectOwner.
func (h *Handler) ProjectRoutes(r chi.Router) {
	r.Get("/", h.detail)
	r.Patch("/status", h.updateStatus)
	r.Get("/invoices", h.listInvoices)
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	ClientEmail *string `json:"client_email,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerID(r.Context())
	if !ok {
		respond.Error(w, r, apperr.ErrUnauthorized)
		return
	}

	var req createProjectRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.projects.Create(r.Context(), project.CreateParams{
		OwnerID:     ownerID,
		Name:        req.Name,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerID(r.Context())
	if !ok {
		respond.Error(w, r, apperr.ErrUnauthorized)
		return
	}

	projects, err := h.projects.List(r.Context(), ownerID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(projects))
}

// detail returns the owner dashboard view: the project with its scopes,
// deliverables and invoices.
func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	p := middleware.Project(r.Context())

	var (
		scopes       []*scope.Scope
		deliverables []*deliverable.Deliverable
		invoices     []*invoice.Invoice
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		var err error
		scopes, err = h.scopes.List(ctx, p.ID)

		return err
	})
	g.Go(func() error {
		var err error
		deliverables, err = h.deliverables.List(ctx, p.ID)

		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = h.invoices.List(ctx, p.ID)

		return err
	})

	if err := g.Wait(); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, detailResponse{
		Response:     ToResponse(p),
		Scopes:       scopeHandler.ToResponseList(scopes),
		Deliverables: deliverableHandler.ToResponseList(deliverables),
		Invoices:     toInvoiceResponseList(invoices),
	})
}

type updateStatusRequest struct {
	Status project.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p := middleware.Project(r.Context())

	updated, err := h.projects.UpdateStatus(r.Context(), p.ID, req.Status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(updated))
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	p := middleware.Project(r.Context())

	invoices, err := h.invoices.List(r.Context(), p.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toInvoiceResponseList(invoices))
}
