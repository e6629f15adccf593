package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/container"
	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
	handlers "github.com/oksasatya/identity-api/internal/interface/http"
	"github.com/oksasatya/identity-api/internal/interface/middleware"
)

// UserModule wires profile and search routes.
// Protected: GET /api/me, PUT /api/account
// Admin only: GET /api/users/search, GET /api/users/query
type UserModule struct {
	Handler   *handlers.UserHandler
	Validator gateway.TokenValidator
}

func NewUserModule(h *handlers.UserHandler, v gateway.TokenValidator) *UserModule {
	return &UserModule{Handler: h, Validator: v}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Authentication(m.Validator))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/account", m.Handler.EditAccount)

		admin := auth.Group("/users")
		admin.Use(middleware.RequireRoles(entity.RoleAdmin))
		admin.GET("/search", m.Handler.Search)
		admin.GET("/query", m.Handler.Query)
	}
}
