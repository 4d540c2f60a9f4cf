package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/worstfriend/overseerr/config"
	"github.com/worstfriend/overseerr/permissions"
	"github.com/worstfriend/overseerr/services"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	services.InitSessionStore(config.Load())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run for anonymous requests")
	})

	req := httptest.NewRequest(http.MethodGet, "/issues", nil)
	rr := httptest.NewRecorder()

	RequireAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRequirePermissionForbidsAnonymous(t *testing.T) {
	services.InitSessionStore(config.Load())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run for anonymous requests")
	})

	gate := RequirePermission([]permissions.Permission{permissions.CreateIssues}, permissions.CheckOr)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/issue", nil)
	rr := httptest.NewRecorder()

	gate(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "You do not have permission")
}
