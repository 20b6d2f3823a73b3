// File: internal/api/update_mechanic_request.go
package api

// UpdateMechanicRequest is a typed partial update: only these known fields
// are ever mapped onto columns, whatever else the client sends is ignored.
// swagger:model api.UpdateMechanicRequest
type UpdateMechanicRequest struct {
	Phone         *string  `json:"phone" example:"0758969973"`
	Name          *string  `json:"name" example:"John Okello"`
	Location      *string  `json:"location" example:"Nakawa"`
	IsVerified    *bool    `json:"is_verified" example:"true"`
	Rating        *float64 `json:"rating" validate:"omitempty,min=0,max=5" example:"4.8"`
	JobsCompleted *int     `json:"jobs_completed" validate:"omitempty,min=0" example:"156"`
}

// IsEmpty reports whether no field was supplied at all.
func (r UpdateMechanicRequest) IsEmpty() bool {
	return r.Phone == nil && r.Name == nil && r.Location == nil &&
		r.IsVerified == nil && r.Rating == nil && r.JobsCompleted == nil
}
