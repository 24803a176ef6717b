package deliverable

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/http/middleware"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
)

type Handler struct {
	svc *deliverable.Service
}

func NewHandler(svc *deliverable.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects to be mounted below a route guarded by middleware.ProjectOwner.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{deliverableID}", h.get)
}

type createDeliverableRequest struct {
	FileURL string  `json:"file_url"`
	Notes   *string `json:"notes,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDeliverableRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p := middleware.Project(r.Context())

	d, err := h.svc.Create(r.Context(), deliverable.CreateParams{
		ProjectID: p.ID,
		FileURL:   req.FileURL,
		Notes:     req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p := middleware.Project(r.Context())

	deliverables, err := h.svc.List(r.Context(), p.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(deliverables))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	deliverableID, err := uuid.Parse(chi.URLParam(r, "deliverableID"))
	if err != nil {
		respond.Error(w, r, deliverable.ErrNotFound)
		return
	}

	p := middleware.Project(r.Context())

	d, err := h.svc.Get(r.Context(), p.ID, deliverableID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(d))
}
