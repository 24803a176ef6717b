package deliverable

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
)

type Response struct {
	ID        uuid.UUID          `json:"id"`
	ProjectID uuid.UUID          `json:"project_id"`
	Version   int                `json:"version"`
	FileURL   string             `json:"file_url"`
	Notes     *string            `json:"notes"`
	State     deliverable.State  `json:"state"`
	Approvals []ApprovalResponse `json:"approvals"`
	CreatedAt time.Time          `json:"created_at"`
}

type ApprovalResponse struct {
	ID            uuid.UUID          `json:"id"`
	DeliverableID uuid.UUID          `json:"deliverable_id"`
	Action        deliverable.Action `json:"action"`
	Comments      *string            `json:"comments"`
	PerformedBy   string             `json:"performed_by"`
	IPAddress     string             `json:"ip_address"`
	UserAgent     string             `json:"user_agent"`
	CreatedAt     time.Time          `json:"created_at"`
}

func ToApprovalResponse(a *deliverable.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:            a.ID,
		DeliverableID: a.DeliverableID,
		Action:        a.Action,
		Comments:      a.Comments,
		PerformedBy:   a.PerformedBy,
		IPAddress:     a.IPAddress,
		UserAgent:     a.UserAgent,
		CreatedAt:     a.CreatedAt,
	}
}

func ToResponse(d *deliverable.Deliverable) Response {
	approvals := make([]ApprovalResponse, len(d.Approvals))
	for i := range d.Approvals {
		approvals[i] = ToApprovalResponse(&d.Approvals[i])
	}

	return Response{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Version:   d.Version,
		FileURL:   d.FileURL,
		Notes:     d.Notes,
		State:     d.State(),
		Approvals: approvals,
		CreatedAt: d.CreatedAt,
	}
}

func ToResponseList(deliverables []*deliverable.Deliverable) []Response {
	resp := make([]Response, len(deliverables))
	for i, d := range deliverables {
		resp[i] = ToResponse(d)
	}

	return resp
}
