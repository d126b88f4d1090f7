// Package entities serves the CRUD routes shared by every owned content
// type. A route set is generic over the row type and driven by its
// store.Table descriptor, so ownership rules are identical everywhere.
package entities

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"heritage-api/internal/api"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/middleware"
	"heritage-api/internal/policy"
	"heritage-api/internal/store"
)

// Register mounts list, get, create, replace and delete for t under
// g+path. mw typically carries the authentication gate.
func Register[T any](g *echo.Group, path string, db database.DB, t store.Table[T], mw ...echo.MiddlewareFunc) {
	r := g.Group(path)
	r.GET("", List(db, t), mw...)
	r.POST("", Create(db, t), mw...)
	r.GET("/:id", Get(db, t), mw...)
	r.PUT("/:id", Replace(db, t), mw...)
	r.DELETE("/:id", Delete(db, t), mw...)
}

// List returns the caller's rows, or every row for a superuser.
func List[T any](db database.DB, t store.Table[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := handler.ParsePagination(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		scope := policy.ListScope(middleware.CurrentUser(c))
		items, total, err := t.List(c.Request().Context(), db, scope, p.Limit, p.Skip)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ListResponse[T]{Data: items, Count: total})
	}
}

// load fetches the row and checks a against its owner. A missing row is
// reported before any permission decision.
func load[T any](c echo.Context, db database.DB, t store.Table[T], id uuid.UUID, a policy.Action) (*T, error) {
	v, err := t.Get(c.Request().Context(), db, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(middleware.CurrentUser(c), t.Meta(v).OwnerID, a); err != nil {
		return nil, err
	}
	return v, nil
}

func Get[T any](db database.DB, t store.Table[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		v, err := load(c, db, t, id, policy.Read)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, v)
	}
}

// Create stores the body as a new row owned by the caller. Any id or owner
// in the body is discarded.
func Create[T any](db database.DB, t store.Table[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		v := new(T)
		if err := handler.Bind(c, v); err != nil {
			return handler.RespondError(c, err)
		}
		me := middleware.CurrentUser(c)
		if err := policy.Authorize(me, nil, policy.Create); err != nil {
			return handler.RespondError(c, err)
		}
		owner := me.ID
		m := t.Meta(v)
		m.ID = uuid.New()
		m.OwnerID = &owner
		m.CreatedAt, m.UpdatedAt = time.Time{}, time.Time{}
		t.Defaults(v)

		if err := t.Create(c.Request().Context(), db, v); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, v)
	}
}

// Replace overwrites every attribute of an existing row. The owner never
// changes.
func Replace[T any](db database.DB, t store.Table[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		v := new(T)
		if err := handler.Bind(c, v); err != nil {
			return handler.RespondError(c, err)
		}
		if _, err := load(c, db, t, id, policy.Update); err != nil {
			return handler.RespondError(c, err)
		}
		m := t.Meta(v)
		m.ID = id
		m.OwnerID = nil
		t.Defaults(v)

		if err := t.Replace(c.Request().Context(), db, v); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, v)
	}
}

func Delete[T any](db database.DB, t store.Table[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.RespondError(c, err)
		}
		if _, err := load(c, db, t, id, policy.Delete); err != nil {
			return handler.RespondError(c, err)
		}
		if err := t.Delete(c.Request().Context(), db, id); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
