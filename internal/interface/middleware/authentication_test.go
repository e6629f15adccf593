package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
)

type fakeValidator struct {
	principal gateway.Principal
	err       error
}

func (f *fakeValidator) Validate(ctx context.Context, raw string) (gateway.Principal, error) {
	return f.principal, f.err
}

func newTestRouter(v gateway.TokenValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Authentication(v)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	r.GET("/probe", chain...)
	return r
}

func doProbe(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticationMissingHeader(t *testing.T) {
	r := newTestRouter(&fakeValidator{})
	if w := doProbe(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticationInvalidToken(t *testing.T) {
	r := newTestRouter(&fakeValidator{err: errors.New("bad")})
	if w := doProbe(r, "Bearer nope"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticationSetsPrincipal(t *testing.T) {
	r := newTestRouter(&fakeValidator{principal: gateway.Principal{
		InternalID: "u-1",
		Roles:      []entity.Role{entity.RoleUser},
	}})
	w := doProbe(r, "Bearer good")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "u-1" {
		t.Fatalf("expected user id in context, got %q", w.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	admin := &fakeValidator{principal: gateway.Principal{
		InternalID: "a-1",
		Roles:      []entity.Role{entity.RoleAdmin},
	}}
	user := &fakeValidator{principal: gateway.Principal{
		InternalID: "u-1",
		Roles:      []entity.Role{entity.RoleUser},
	}}

	if w := doProbe(newTestRouter(admin, RequireRoles(entity.RoleAdmin)), "Bearer t"); w.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", w.Code)
	}
	if w := doProbe(newTestRouter(user, RequireRoles(entity.RoleAdmin)), "Bearer t"); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin should get 403, got %d", w.Code)
	}
}
