package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
	"github.com/oksasatya/identity-api/pkg/response"
)

// Context keys set by Authentication.
const (
	CtxUserIDKey    = "userID"
	CtxUserRolesKey = "userRoles"
	CtxUsernameKey  = "username"
)

// Authentication validates the Bearer token and injects the caller's
// internal id and roles into the Gin context.
func Authentication(validator gateway.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing or invalid authorization header", nil)
			return
		}

		principal, err := validator.Validate(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", nil)
			return
		}

		c.Set(CtxUserIDKey, principal.InternalID)
		c.Set(CtxUsernameKey, principal.Username)
		c.Set(CtxUserRolesKey, principal.Roles)
		c.Next()
	}
}

// RolesFromCtx returns the roles Authentication stored for the caller.
func RolesFromCtx(c *gin.Context) []entity.Role {
	v, ok := c.Get(CtxUserRolesKey)
	if !ok {
		return nil
	}
	roles, _ := v.([]entity.Role)
	return roles
}
