package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"heritage-api/internal/api"
	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/middleware"
	"heritage-api/internal/policy"
	"heritage-api/internal/service"
	"heritage-api/internal/store"
)

var (
	createUser     = service.CreateUser
	changePassword = service.ChangePassword
	getUserByID    = store.GetUserByID
	listUsers      = store.ListUsers
	updateUser     = store.UpdateUser
	deleteUser     = store.DeleteUser
)

// Invalidator drops a user from the authentication cache after a change.
type Invalidator interface {
	Invalidate(ctx context.Context, id uuid.UUID)
}

// @Summary     Register
// @Description Public sign-up; the account is active and not a superuser
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "New account"
// @Success     201  {object} api.UserPublic
// @Failure     409  {object} api.HTTPError "email already registered"
// @Failure     422  {object} api.HTTPError
// @Router      /users/register [post]
func RegisterHandler(db database.DB, h *service.Hasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		u, err := createUser(c.Request().Context(), db, h, service.NewUser{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			IsActive: true,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserPublic(u))
	}
}

// @Summary     Create a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "New account"
// @Success     201  {object} api.UserPublic
// @Failure     403  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Failure     422  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users [post]
func CreateUserHandler(db database.DB, h *service.Hasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}
		u, err := createUser(c.Request().Context(), db, h, service.NewUser{
			Email:       req.Email,
			Password:    req.Password,
			Name:        req.Name,
			IsActive:    active,
			IsSuperuser: req.IsSuperuser,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserPublic(u))
	}
}

// @Summary     List users
// @Tags        users
// @Produce     json
// @Param       limit query    int false "Page size (1-1000)" default(100)
// @Param       skip  query    int false "Rows to skip"       default(0)
// @Success     200   {object} api.UsersPublic
// @Failure     403   {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := handler.ParsePagination(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		list, total, err := listUsers(c.Request().Context(), db, p.Limit, p.Skip)
		if err != nil {
			return handler.RespondError(c, err)
		}
		out := api.UsersPublic{Data: make([]api.UserPublic, 0, len(list)), Count: total}
		for i := range list {
			out.Data = append(out.Data, api.NewUserPublic(&list[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Current user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserPublic
// @Failure     401 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.NewUserPublic(middleware.CurrentUser(c)))
	}
}

// @Summary     Update current user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateMeRequest true "Fields to change"
// @Success     200  {object} api.UserPublic
// @Failure     409  {object} api.HTTPError
// @Failure     422  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/me [patch]
func UpdateMeHandler(db database.DB, inv Invalidator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateMeRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		u, err := getUserByID(ctx, db, middleware.CurrentUser(c).ID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if req.Name != nil {
			u.Name = req.Name
		}
		if req.Email != nil {
			u.Email = service.NormalizeEmail(*req.Email)
		}
		if err := updateUser(ctx, db, u); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				err = fmt.Errorf("%w: email already registered", apperr.ErrConflict)
			}
			return handler.RespondError(c, err)
		}
		inv.Invalidate(ctx, u.ID)
		return c.JSON(http.StatusOK, api.NewUserPublic(u))
	}
}

// @Summary     Change current user's password
// @Tags        users
// @Accept      json
// @Param       body body api.UpdatePasswordRequest true "Current and new password"
// @Success     204
// @Failure     401  {object} api.HTTPError "current password is wrong"
// @Failure     422  {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/me/password [patch]
func UpdateMyPasswordHandler(db database.DB, h *service.Hasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdatePasswordRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		// The cached user carries no hash; read the row.
		u, err := getUserByID(ctx, db, middleware.CurrentUser(c).ID)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if err := changePassword(ctx, db, h, u, req.CurrentPassword, req.NewPassword); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Get a user by id
// @Description Users may read themselves; superusers may read anyone
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User id (uuid)"
// @Success     200 {object} api.UserPublic
// @Failure     403 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Failure     422 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		me := middleware.CurrentUser(c)
		if id == me.ID {
			return c.JSON(http.StatusOK, api.NewUserPublic(me))
		}
		u, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if err := policy.Authorize(me, &u.ID, policy.Read); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserPublic(u))
	}
}

// @Summary     Delete a user
// @Description Content the user owned is kept and becomes unowned
// @Tags        users
// @Param       id  path string true "User id (uuid)"
// @Success     204
// @Failure     403 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Security    OAuth2Password
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, inv Invalidator) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		ctx := c.Request().Context()
		u, err := getUserByID(ctx, db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		if u.ID == middleware.CurrentUser(c).ID {
			return handler.RespondError(c, fmt.Errorf("%w: superusers may not delete themselves", apperr.ErrPermissionDenied))
		}
		if err := deleteUser(ctx, db, u.ID); err != nil {
			return handler.RespondError(c, err)
		}
		inv.Invalidate(ctx, u.ID)
		return c.NoContent(http.StatusNoContent)
	}
}
