// File: internal/api/list_requests_request.go
package api

// swagger:model api.ListRequestsRequest
type ListRequestsRequest struct {
	Status string `query:"status" example:"pending"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500" example:"100"`
}
