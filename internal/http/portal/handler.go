package portal

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/approval"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	deliverableHandler "github.com/MrJamesThe3rd/signoff/internal/http/deliverable"
	projectHandler "github.com/MrJamesThe3rd/signoff/internal/http/project"
	"github.com/MrJamesThe3rd/signoff/internal/http/respond"
	scopeHandler "github.com/MrJamesThe3rd/signoff/internal/http/scope"
	"github.com/MrJamesThe3rd/signoff/internal/portal"
)

const (
	TokenHeader = "X-Client-Token"

	unknownUserAgent = "Unknown"
)

type Handler struct {
	views     *portal.Service
	approvals *approval.Service
}

func NewHandler(views *portal.Service, approvals *approval.Service) *Handler {
	return &Handler{views: views, approvals: approvals}
}

// Routes registers the client-facing routes. They carry no owner
// authentication; the project access token is the credential.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/access/{token}", h.access)
	r.Post("/deliverables/{deliverableID}/approve", h.decide)
}

type viewResponse struct {
	Project      projectHandler.Response       `json:"project"`
	Scopes       []scopeHandler.Response       `json:"scopes"`
	Deliverables []deliverableHandler.Response `json:"deliverables"`
}

func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	view, err := h.views.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, viewResponse{
		Project:      projectHandler.ToPublicResponse(view.Project),
		Scopes:       scopeHandler.ToResponseList(view.Scopes),
		Deliverables: deliverableHandler.ToResponseList(view.Deliverables),
	})
}

type decisionRequest struct {
	Action   deliverable.Action `json:"action"`
	Comments *string            `json:"comments,omitempty"`
}

type decisionResponse struct {
	deliverableHandler.ApprovalResponse
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		respond.Error(w, r, approval.ErrMissingToken)
		return
	}

	// A malformed id is treated like any unknown deliverable.
	deliverableID, err := uuid.Parse(chi.URLParam(r, "deliverableID"))
	if err != nil {
		deliverableID = uuid.Nil
	}

	// An unreadable body leaves the action empty, so Submit still rejects a
	// bad token before it reports the invalid action.
	var req decisionRequest
	if err := respond.Decode(r, &req); err != nil {
		req = decisionRequest{}
	}

	decision, err := h.approvals.Submit(r.Context(), approval.SubmitParams{
		DeliverableID: deliverableID,
		Token:         token,
		Action:        req.Action,
		Comments:      req.Comments,
		IPAddress:     clientIP(r),
		UserAgent:     userAgent(r),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := decisionResponse{ApprovalResponse: deliverableHandler.ToApprovalResponse(decision.Approval)}
	if decision.Invoice != nil {
		resp.InvoiceID = &decision.Invoice.ID
	}

	respond.JSON(w, http.StatusCreated, resp)
}

// clientIP reads the peer address, which chi's RealIP middleware has already
// replaced with the forwarded client address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}

	return unknownUserAgent
}
