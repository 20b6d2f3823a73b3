// File: internal/api/stats_response.go
package api

import (
	"time"

	"motofix-admin/internal/store"
)

// swagger:model api.StatsResponse
type StatsResponse struct {
	store.DashboardStats
	AsOf time.Time `json:"as_of" example:"2025-05-01T15:04:05Z"`
}
