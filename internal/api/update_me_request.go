package api

// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=255" example:"Alice Smith"`
	Email *string `json:"email" validate:"omitempty,email,max=255" example:"alice@example.org"`
}
