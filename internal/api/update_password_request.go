package api

// swagger:model api.UpdatePasswordRequest
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required" example:"password123"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=30" example:"password456"`
}
