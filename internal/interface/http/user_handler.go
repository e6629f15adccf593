package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-api/internal/application"
	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/repository"
	"github.com/oksasatya/identity-api/internal/interface/middleware"
	"github.com/oksasatya/identity-api/pkg/response"
	"github.com/oksasatya/identity-api/pkg/validation"
)

// itemsPerPage values accepted by the structured search.
var allowedPageSizes = map[int]bool{5: true, 10: true, 15: true, 20: true, 25: true, 50: true}

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	p, err := h.Svc.GetMe(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

type editAccountRequest struct {
	UserID string `json:"userId" binding:"omitempty,uuid4"`
	Name   string `json:"name" binding:"omitempty,min=1,max=100"`
	Role   string `json:"role" binding:"omitempty,oneof=admin user"`
}

// EditAccount applies a partial update to the caller's account, or to another
// user's account when the caller is an admin.
func (h *UserHandler) EditAccount(c *gin.Context) {
	var req editAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Name == "" && req.Role == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"general": "at least one of name or role must be provided"})
		return
	}

	out, err := h.Svc.EditAccount(c.Request.Context(), application.EditAccountInput{
		UserID:           req.UserID,
		CurrentUserID:    c.GetString(middleware.CtxUserIDKey),
		CurrentUserRoles: middleware.RolesFromCtx(c),
		Name:             req.Name,
		Role:             entity.Role(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "account updated", nil)
}

// Search is the structured admin lookup over Postgres.
func (h *UserHandler) Search(c *gin.Context) {
	filter := repository.SearchFilter{
		ID:    c.Query("id"),
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Role:  entity.Role(c.Query("role")),
	}
	if v := c.Query("isOnboarded"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"isOnboarded": "must be true or false"})
			return
		}
		filter.IsOnboarded = &b
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.ItemsPerPage, _ = strconv.Atoi(c.DefaultQuery("itemsPerPage", "10"))
	if !allowedPageSizes[filter.ItemsPerPage] {
		filter.ItemsPerPage = 10
	}

	users, meta, err := h.Svc.SearchUsers(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", meta)
}

// Query is the free-text lookup against the search index.
func (h *UserHandler) Query(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.QueryUsers(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "users", map[string]any{"count": len(hits)})
}
