package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/application"
	"github.com/oksasatya/identity-api/internal/domain/service"
	"github.com/oksasatya/identity-api/pkg/response"
)

// writeError maps domain failures onto HTTP statuses: permission errors to
// 403, bad input to 400, missing users to 404, anything upstream to 502.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCannotEditOthers), errors.Is(err, service.ErrOnlyAdminsEditRoles):
		response.Error(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrUserIDRequired):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		response.Error(c, http.StatusBadGateway, "upstream failure", err.Error())
	}
}
