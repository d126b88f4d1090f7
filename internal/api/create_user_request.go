package api

// CreateUserRequest is the superuser form of account creation.
// is_active defaults to true when omitted.
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255" example:"bob@example.com"`
	Password    string  `json:"password" validate:"required,min=8,max=30" example:"password123"`
	Name        *string `json:"name" validate:"omitempty,max=255" example:"Bob"`
	IsActive    *bool   `json:"is_active" example:"true"`
	IsSuperuser bool    `json:"is_superuser" example:"false"`
}
