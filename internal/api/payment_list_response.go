// File: internal/api/payment_list_response.go
package api

import (
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"
)

// PaymentSearch echoes the raw search parameters back to the client,
// exactly as submitted (the phone before normalization).
// swagger:model api.PaymentSearch
type PaymentSearch struct {
	Phone  *string `json:"phone"`
	Type   *string `json:"type"`
	Status *string `json:"status"`
}

// swagger:model api.PaymentListResponse
type PaymentListResponse struct {
	Data       []model.Payment  `json:"data"`
	Pagination query.Pagination `json:"pagination"`
	Search     PaymentSearch    `json:"search"`
}
