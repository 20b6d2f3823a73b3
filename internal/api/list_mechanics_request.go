// File: internal/api/list_mechanics_request.go
package api

// swagger:model api.ListMechanicsRequest
type ListMechanicsRequest struct {
	Verified *bool  `query:"verified" example:"true"`
	Search   string `query:"search" example:"john"`
	Page     int    `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=500" example:"50"`
}
