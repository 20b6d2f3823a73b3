package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
