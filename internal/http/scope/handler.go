package scope

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/signoff/internal/http/middleware"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
	"github.com/MrJamesThe3rd/signoff/internal/money"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

type Handler struct {
	svc *scope.Service
}

func NewHandler(svc *scope.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects to be mounted below a route guarded by middleware.ProjectOwner.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{scopeID}/lock", h.lock)
	r.Patch("/{scopeID}", h.revise)
}

type scopeRequest struct {
	Content string           `json:"content"`
	Price   *decimal.Decimal `json:"price,omitempty"`
}

func (req scopeRequest) cents() (int64, error) {
	if req.Price == nil {
		return 0, nil
	}

	return money.FromDecimal(*req.Price)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req scopeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	price, err := req.cents()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p := middleware.Project(r.Context())

	sc, err := h.svc.Create(r.Context(), scope.CreateParams{
		ProjectID: p.ID,
		Content:   req.Content,
		Price:     price,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ToResponse(sc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	p := middleware.Project(r.Context())

	scopes, err := h.svc.List(r.Context(), p.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponseList(scopes))
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	scopeID, err := uuid.Parse(chi.URLParam(r, "scopeID"))
	if err != nil {
		respond.Error(w, r, scope.ErrNotFound)
		return
	}

	p := middleware.Project(r.Context())

	sc, err := h.svc.Lock(r.Context(), p.ID, scopeID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(sc))
}

func (h *Handler) revise(w http.ResponseWriter, r *http.Request) {
	scopeID, err := uuid.Parse(chi.URLParam(r, "scopeID"))
	if err != nil {
		respond.Error(w, r, scope.ErrNotFound)
		return
	}

	var req scopeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	price, err := req.cents()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p := middleware.Project(r.Context())

	sc, err := h.svc.Revise(r.Context(), scope.ReviseParams{
		ProjectID: p.ID,
		ScopeID:   scopeID,
		Content:   req.Content,
		Price:     price,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToResponse(sc))
}
