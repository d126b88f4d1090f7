package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"heritage-api/internal/api"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/middleware"
	"heritage-api/internal/service"
)

var login = service.Login

// LoginHandler exchanges an email and password for a bearer token.
// @Summary     Log in
// @Description OAuth2 password flow: the username field carries the email.
// @Tags        login
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Email"
// @Param       password formData string true "Password"
// @Success     200      {object} api.TokenResponse
// @Failure     401      {object} api.HTTPError "incorrect email or password"
// @Failure     403      {object} api.HTTPError "inactive account"
// @Failure     422      {object} api.HTTPError
// @Router      /login/access-token [post]
func LoginHandler(db database.DB, h *service.Hasher, tokens *service.TokenService, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		token, err := login(c.Request().Context(), db, h, tokens, ttl, req.Username, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// TestTokenHandler echoes the caller back, for checking a token.
// @Summary     Test access token
// @Tags        login
// @Produce     json
// @Success     200 {object} api.UserPublic
// @Failure     401 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /login/test-token [post]
func TestTokenHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.NewUserPublic(middleware.CurrentUser(c)))
	}
}
