// File: internal/api/list_payments_request.go
package api

// swagger:model api.ListPaymentsRequest
type ListPaymentsRequest struct {
	Phone    string `query:"phone" example:"0758969973"`
	Type     string `query:"type" validate:"omitempty,oneof=collection payout" example:"collection"`
	Status   string `query:"status" validate:"omitempty,oneof=success pending failed" example:"success"`
	Page     int    `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=500" example:"50"`
}
