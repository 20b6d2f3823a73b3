// File: internal/api/mechanic_list_response.go
package api

// swagger:model api.MechanicListResponse
type MechanicListResponse struct {
	Data       []MechanicResponse `json:"data"`
	Page       int                `json:"page" example:"1"`
	PageSize   int                `json:"page_size" example:"50"`
	Total      int                `json:"total" example:"95"`
	TotalPages int                `json:"total_pages" example:"2"`
}
