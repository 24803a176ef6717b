package project

import (
	"time"

	"github.com/google/uuid"

	deliverableHandler "github.com/MrJamesThe3rd/signoff/internal/http/deliverable"
	scopeHandler "github.com/MrJamesThe3rd/signoff/internal/http/scope"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	"github.com/MrJamesThe3rd/signoff/internal/money"
	"github.com/MrJamesThe3rd/signoff/internal/project"
)

type Response struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id,omitzero"`
	Name        string         `json:"name"`
	ClientEmail *string        `json:"client_email"`
	Status      project.Status `json:"status"`
	AccessToken string         `json:"access_token,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ToResponse renders p for its owner. Only owners see the access token.
func ToResponse(p *project.Project) Response {
	resp := ToPublicResponse(p)
	resp.OwnerID = p.OwnerID
	resp.AccessToken = p.AccessToken

	return resp
}

// ToPublicResponse renders p for the client portal.
func ToPublicResponse(p *project.Project) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		ClientEmail: p.ClientEmail,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toResponseList(projects []*project.Project) []Response {
	resp := make([]Response, len(projects))
	for i, p := range projects {
		resp[i] = ToResponse(p)
	}

	return resp
}

type invoiceResponse struct {
	ID         uuid.UUID      `json:"id"`
	ProjectID  uuid.UUID      `json:"project_id"`
	ApprovalID *uuid.UUID     `json:"approval_id"`
	Amount     string         `json:"amount"`
	Status     invoice.Status `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toInvoiceResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = invoiceResponse{
			ID:         inv.ID,
			ProjectID:  inv.ProjectID,
			ApprovalID: inv.ApprovalID,
			Amount:     money.Format(inv.Amount),
			Status:     inv.Status,
			CreatedAt:  inv.CreatedAt,
		}
	}

	return resp
}

type detailResponse struct {
	Response
	Scopes       []scopeHandler.Response       `json:"scopes"`
	Deliverables []deliverableHandler.Response `json:"deliverables"`
	Invoices     []invoiceResponse             `json:"invoices"`
}
