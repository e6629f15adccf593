package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/pkg/response"
)

// RequireRoles allows the request through only when the authenticated caller
// carries at least one of the given roles. Must run after Authentication.
func RequireRoles(required ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserIDKey) == "" {
			response.AbortError(c, http.StatusUnauthorized, "user not authenticated", nil)
			return
		}

		roles := RolesFromCtx(c)
		for _, want := range required {
			for _, have := range roles {
				if have == want {
					c.Next()
					return
				}
			}
		}

		names := make([]string, 0, len(required))
		for _, r := range required {
			names = append(names, string(r))
		}
		response.AbortError(c, http.StatusForbidden, "insufficient permissions, missing roles: "+strings.Join(names, ", "), nil)
	}
}
