package database

import (
	"fmt"

	"github.com/worstfriend/overseerr/config"
	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/permissions"

	"golang.org/x/crypto/bcrypt"
)

func SeedAdminUser(cfg *config.Config) error {
	// If no password is set, skip seeding (user should set ADMIN_PASSWORD)
	if cfg.AdminPassword == "" {
		return nil
	}

	// Check if admin user already exists
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", cfg.AdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	if count > 0 {
		// Admin user already exists, skip seeding
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = DB.Exec(
		"INSERT INTO users (username, email, password_hash, is_admin, permissions) VALUES ($1, $2, $3, $4, $5)",
		cfg.AdminUsername,
		cfg.AdminEmail,
		string(hashedPassword),
		true,
		int64(permissions.Admin),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}

// SeedDefaultMedia ensures a couple of library items exist so a fresh install has
// something to report issues against.
func SeedDefaultMedia() error {
	defaultMedia := []struct {
		mediaType string
		tmdbID    int
	}{
		{models.MediaTypeMovie, 550},
		{models.MediaTypeTV, 1399},
	}

	for _, m := range defaultMedia {
		// Use INSERT ... ON CONFLICT to avoid duplicates
		_, err := DB.Exec(
			`INSERT INTO media (media_type, tmdb_id)
			 VALUES ($1, $2)
			 ON CONFLICT (media_type, tmdb_id) DO NOTHING`,
			m.mediaType, m.tmdbID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed media %s/%d: %w", m.mediaType, m.tmdbID, err)
		}
	}

	return nil
}
