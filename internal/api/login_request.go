package api

// LoginRequest is the OAuth2 password form; username carries the email.
// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"password123"`
}
