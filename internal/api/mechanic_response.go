package api

import (
	"time"

	"motofix-admin/internal/model"
)

// swagger:model api.MechanicResponse
type MechanicResponse struct {
	ID            int       `json:"id" example:"1"`
	Phone         string    `json:"phone" example:"+256758969973"`
	Name          string    `json:"name" example:"John Okello"`
	Location      *string   `json:"location" example:"Kampala Central"`
	IsVerified    bool      `json:"is_verified" example:"true"`
	Rating        float64   `json:"rating" example:"4.8"`
	JobsCompleted int       `json:"jobs_completed" example:"156"`
	CreatedAt     time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewMechanicResponse(m model.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:            m.ID,
		Phone:         m.Phone,
		Name:          m.Name,
		Location:      m.Location,
		IsVerified:    m.IsVerified,
		Rating:        m.Rating,
		JobsCompleted: m.JobsCompleted,
		CreatedAt:     m.CreatedAt,
	}
}
