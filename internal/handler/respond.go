// Package handler holds the HTTP handlers and the helpers they share for
// binding input and rendering errors.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"heritage-api/internal/api"
	"heritage-api/internal/apperr"
	"heritage-api/internal/logging"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Bind fills req from the request and validates it. Every failure is an
// apperr.ErrValidation.
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.Validation(bindMessage(err))
	}
	if err := c.Validate(req); err != nil {
		return apperr.Validation(err)
	}
	return nil
}

func bindMessage(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return he.Internal
		}
		if msg, ok := he.Message.(string); ok {
			return errors.New(msg)
		}
	}
	return err
}

// ParseID reads a uuid path parameter.
func ParseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.Validation(errors.New(name + " must be a uuid"))
	}
	return id, nil
}

// ParsePagination reads ?limit=&skip= with limit defaulting to
// api.DefaultLimit.
func ParsePagination(c echo.Context) (api.Pagination, error) {
	p := api.Pagination{Limit: api.DefaultLimit}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return p, apperr.Validation(bindMessage(err))
	}
	if err := c.Validate(&p); err != nil {
		return p, apperr.Validation(err)
	}
	return p, nil
}

// RespondError writes err as an api.HTTPError. Internal errors are logged
// and replaced with a generic message.
func RespondError(c echo.Context, err error) error {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		ctx := c.Request().Context()
		logging.FromContext(ctx).Error(ctx, "request failed", "error", err)
	}
	if status == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return c.JSON(status, api.HTTPError{Message: publicMessage(err, status)})
}

func publicMessage(err error, status int) string {
	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			return "incorrect email or password"
		}
		return "could not validate credentials"
	case http.StatusForbidden:
		if errors.Is(err, apperr.ErrInactiveAccount) {
			return apperr.ErrInactiveAccount.Error()
		}
		return "not enough privileges"
	case http.StatusNotFound:
		return apperr.ErrNotFound.Error()
	case http.StatusUnprocessableEntity:
		return fromSentinel(err, apperr.ErrValidation)
	case http.StatusConflict:
		return fromSentinel(err, apperr.ErrConflict)
	default:
		return "internal server error"
	}
}

// fromSentinel trims the operation prefixes wrapped around sentinel.
func fromSentinel(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

// ErrorHandler is installed as echo's HTTPErrorHandler so errors returned
// by middleware render like handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		if he.Code >= http.StatusInternalServerError {
			ctx := c.Request().Context()
			logging.FromContext(ctx).Error(ctx, "request failed", "error", err)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, api.HTTPError{Message: msg})
		return
	}
	_ = RespondError(c, err)
}
