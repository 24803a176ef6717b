package scope

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/money"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

type Response struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	Price     string    `json:"price"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(s *scope.Scope) Response {
	return Response{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Version:   s.Version,
		Content:   s.Content,
		Price:     money.Format(s.Price),
		Locked:    s.Locked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToResponseList(scopes []*scope.Scope) []Response {
	resp := make([]Response, len(scopes))
	for i, s := range scopes {
		resp[i] = ToResponse(s)
	}

	return resp
}
