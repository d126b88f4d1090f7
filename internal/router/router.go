package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"heritage-api/internal/cache"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/handler/auth"
	"heritage-api/internal/handler/entities"
	"heritage-api/internal/handler/users"
	"heritage-api/internal/middleware"
	"heritage-api/internal/service"
	"heritage-api/internal/store"
)

// Deps is everything the routes need, built once at startup.
type Deps struct {
	DB           database.DB
	Cache        cache.Cache
	Hasher       *service.Hasher
	Tokens       *service.TokenService
	TokenTTL     time.Duration
	UserCacheTTL time.Duration
}

// Setup registers every route under /api.
func Setup(e *echo.Echo, d Deps) {
	gate := middleware.NewAuthenticator(d.DB, d.Cache, d.Tokens, d.UserCacheTTL)
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	api.POST("/login/access-token", auth.LoginHandler(d.DB, d.Hasher, d.Tokens, d.TokenTTL))
	api.POST("/login/test-token", auth.TestTokenHandler(), gate.RequireAuth)

	api.POST("/users/register", users.RegisterHandler(d.DB, d.Hasher))
	api.POST("/users", users.CreateUserHandler(d.DB, d.Hasher), gate.RequireSuperuser)
	api.GET("/users", users.ListUsersHandler(d.DB), gate.RequireSuperuser)
	api.GET("/users/me", users.GetMeHandler(), gate.RequireAuth)
	api.PATCH("/users/me", users.UpdateMeHandler(d.DB, gate), gate.RequireAuth)
	api.PATCH("/users/me/password", users.UpdateMyPasswordHandler(d.DB, d.Hasher), gate.RequireAuth)
	api.GET("/users/:id", users.GetUserHandler(d.DB), gate.RequireAuth)
	api.DELETE("/users/:id", users.DeleteUserHandler(d.DB, gate), gate.RequireSuperuser)

	entities.Register(api, "/narratives", d.DB, store.Narratives, gate.RequireAuth)
	entities.Register(api, "/substories", d.DB, store.Substories, gate.RequireAuth)
	entities.Register(api, "/experiences", d.DB, store.Experiences, gate.RequireAuth)
	entities.Register(api, "/experience-components", d.DB, store.ExperienceComponents, gate.RequireAuth)
	entities.Register(api, "/sites", d.DB, store.Sites, gate.RequireAuth)
	entities.Register(api, "/clusters", d.DB, store.Clusters, gate.RequireAuth)
	entities.Register(api, "/artefacts", d.DB, store.Artefacts, gate.RequireAuth)
	entities.Register(api, "/hubs", d.DB, store.Hubs, gate.RequireAuth)
	entities.Register(api, "/tours", d.DB, store.Tours, gate.RequireAuth)
	entities.Register(api, "/feasibilities", d.DB, store.Feasibilities, gate.RequireAuth)
}
