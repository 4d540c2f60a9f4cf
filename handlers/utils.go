package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worstfriend/overseerr/config"
	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/services"
)

var appConfig *config.Config

// InitConfig captures the loaded configuration for handlers that need it.
func InitConfig(cfg *config.Config) {
	appConfig = cfg
}

func GetCurrentUser(r *http.Request) (*models.User, error) {
	session, err := services.GetSession(r)
	if err != nil {
		return nil, err
	}

	userID, ok := session.Values["user_id"]
	if !ok {
		return nil, nil
	}

	var userIDInt int64
	switch v := userID.(type) {
	case int64:
		userIDInt = v
	case int:
		userIDInt = int64(v)
	case string:
		var err error
		userIDInt, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	user, err := services.GetUserByID(userIDInt)
	if err != nil {
		slog.Debug("Failed to get user info", "user_id", userIDInt, "error", err)
		return nil, err
	}

	return user, nil
}

// SetupUserSession creates a session for a user after login/registration
func SetupUserSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := services.GetSession(r)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username

	if err := services.SaveSession(w, r, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

type apiErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// apiError is the shared error responder: every API failure is forwarded here
// as a structured {status, message} pair.
func apiError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiErrorBody{Status: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// ParseIDFromURL extracts and parses an integer ID from a chi URL parameter
func ParseIDFromURL(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("missing id parameter")
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}

// LoadTemplate loads a page template with the common layout files
func LoadTemplate(name string, pageTemplate string) (*template.Template, error) {
	tmpl, err := template.New(name).ParseFiles(
		"templates/layouts/base.html",
		pageTemplate,
		"templates/components/navigation.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return tmpl, nil
}
