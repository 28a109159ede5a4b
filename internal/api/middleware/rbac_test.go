package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, mw echo.MiddlewareFunc, identity *domain.Identity) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return handler(c)
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)
	err := invokeRBAC(t, mw, &domain.Identity{ID: "u1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("listed role should pass, got %v", err)
	}
}

func TestRBAC_RejectsUnlistedRole(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)
	err := invokeRBAC(t, mw, &domain.Identity{ID: "u1", Role: domain.RoleStudent})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_NoHierarchy(t *testing.T) {
	mw := RBAC(domain.RoleInstructor)
	err := invokeRBAC(t, mw, &domain.Identity{ID: "u1", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin must not pass an instructor-only gate, got %v", err)
	}
}

func TestRBAC_MultipleRoles(t *testing.T) {
	mw := RBAC(domain.RoleInstructor, domain.RoleAdmin)
	for _, role := range []string{domain.RoleInstructor, domain.RoleAdmin} {
		if err := invokeRBAC(t, mw, &domain.Identity{ID: "u1", Role: role}); err != nil {
			t.Fatalf("%s should pass, got %v", role, err)
		}
	}
	err := invokeRBAC(t, mw, &domain.Identity{ID: "u1", Role: domain.RoleStudent})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for student, got %v", err)
	}
}

func TestRBAC_MissingIdentity(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)
	err := invokeRBAC(t, mw, nil)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
