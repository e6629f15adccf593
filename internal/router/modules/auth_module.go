package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/container"
	handlers "github.com/oksasatya/identity-api/internal/interface/http"
	"github.com/oksasatya/identity-api/internal/interface/middleware"
)

// AuthModule exposes the public sign-in-or-register endpoint.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/auth/signin", signinLimiter, m.Handler.Signin)
}
