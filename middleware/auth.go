package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/permissions"
	"github.com/worstfriend/overseerr/services"
)

// redirectToLogin logs the reason and redirects to login page
func redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	slog.Debug("Redirecting to login", "reason", reason, "path", r.URL.Path)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// parseUserID converts various userID types to int64
func parseUserID(userID interface{}) (int64, error) {
	switch v := userID.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, strconv.ErrSyntax
	}
}

func sessionUser(r *http.Request) (*models.User, error) {
	session, err := services.GetSession(r)
	if err != nil {
		return nil, err
	}

	userID, ok := session.Values["user_id"]
	if !ok {
		return nil, nil
	}

	userIDInt, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	return services.GetUserByID(userIDInt)
}

// RequireAuth gates browser pages: anyone without a valid session is sent to
// the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := sessionUser(r)
		if err != nil || user == nil {
			redirectToLogin(w, r, "user not authenticated")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission gates API routes on the caller's permission set. required
// permissions compose under mode (or/and); Admin passes everything.
func RequirePermission(required []permissions.Permission, mode permissions.CheckMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessionUser(r)
			if err != nil || user == nil || !user.HasPermission(required, mode) {
				forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  http.StatusForbidden,
		"message": "You do not have permission to access this endpoint.",
	})
}
