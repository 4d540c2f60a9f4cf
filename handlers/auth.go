package handlers

import (
	"log/slog"
	"net/http"

	"github.com/worstfriend/overseerr/services"
)

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := registerTmpl.ExecuteTemplate(w, "base", nil); err != nil {
			slog.Error("Error rendering register template", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		http.Error(w, "Username, email and password are required", http.StatusBadRequest)
		return
	}

	user, err := services.RegisterUser(username, email, password)
	if err != nil {
		slog.Error("Registration failed", "username", username, "error", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	slog.Info("User registered successfully", "username", username, "user_id", user.ID)

	// Automatically log in after registration
	if err := SetupUserSession(w, r, user); err != nil {
		slog.Error("Failed to setup session", "username", username, "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/issues", http.StatusSeeOther)
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := loginTmpl.ExecuteTemplate(w, "base", nil); err != nil {
			slog.Error("Error rendering login template", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		slog.Warn("Login failed: missing credentials", "username", username)
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := services.AuthenticateUser(username, password)
	if err != nil {
		slog.Warn("Login failed", "username", username, "error", err)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	slog.Info("User authenticated successfully", "username", username, "user_id", user.ID)

	if err := SetupUserSession(w, r, user); err != nil {
		slog.Error("Failed to setup session", "username", username, "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/issues", http.StatusSeeOther)
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session, err := services.GetSession(r)
	if err == nil {
		session.Options.MaxAge = -1
		if err := services.SaveSession(w, r, session); err != nil {
			slog.Error("Failed to clear session", "error", err)
		}
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
