// File: internal/api/revenue_chart_request.go
package api

// swagger:model api.RevenueChartRequest
type RevenueChartRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=365" example:"30"`
}
