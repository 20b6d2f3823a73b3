package api

// swagger:model api.CreateMechanicRequest
type CreateMechanicRequest struct {
	Phone      string  `json:"phone" validate:"required" example:"0758969973"`
	Name       string  `json:"name" validate:"required" example:"John Okello"`
	Location   *string `json:"location" example:"Kampala Central"`
	IsVerified bool    `json:"is_verified" example:"false"`
}
