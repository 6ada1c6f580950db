package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/gin-gonic/gin"
)

func newRoleRouter(role models.Role, allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	setRole := func(c *gin.Context) {
		if role != "" {
			c.Set(CtxUserRole, role)
		}
		c.Next()
	}

	router.DELETE("/api/admin/videos/1", setRole, RequireRoles(allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func doDelete(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/videos/1", nil))

	return w
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	router := newRoleRouter(models.RoleAdmin, models.RoleAdmin, models.RoleSuperadmin)

	if w := doDelete(router); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for listed role, got %d", w.Code)
	}
}

func TestRequireRoles_RejectsUnlistedRole(t *testing.T) {
	router := newRoleRouter(models.RoleConsultant, models.RoleAdmin, models.RoleSuperadmin)

	if w := doDelete(router); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for consultant, got %d", w.Code)
	}
}

func TestRequireRoles_NoImplicitHierarchy(t *testing.T) {
	// superadmin is rejected when the allow-list does not name it
	router := newRoleRouter(models.RoleSuperadmin, models.RoleAdmin)

	if w := doDelete(router); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted superadmin, got %d", w.Code)
	}
}

func TestRequireRoles_MissingRole(t *testing.T) {
	router := newRoleRouter("", models.RoleAdmin)

	if w := doDelete(router); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no role is set, got %d", w.Code)
	}
}
