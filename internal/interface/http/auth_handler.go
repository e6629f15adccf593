package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-api/internal/application"
	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/pkg/response"
	"github.com/oksasatya/identity-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type signinResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	IsOnboarded  bool   `json:"isOnboarded"`
}

// Signin signs an existing user in or registers a new account first.
// Registrations answer 201, plain sign-ins 200.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	out, err := h.Svc.SigninOrRegister(c.Request.Context(), application.SigninInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Warn("signin failed")
		}
		response.Error(c, http.StatusUnauthorized, "authentication failed", nil)
		return
	}

	status := http.StatusOK
	msg := "signed in"
	if out.IsNewUser {
		status = http.StatusCreated
		msg = "account created"
	}
	response.Success(c, status, signinResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		IsOnboarded:  out.IsOnboarded,
	}, msg, nil)
}
