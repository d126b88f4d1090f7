package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Password string  `json:"password" validate:"required,min=8,max=30" example:"password123"`
	Name     *string `json:"name" validate:"omitempty,max=255" example:"Alice"`
}
