package api

// HTTPError is the body of every error response.
// swagger:model api.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"not found"`
}

// swagger:model api.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
