package services

import (
	"database/sql"
	"fmt"

	"github.com/worstfriend/overseerr/database"
	"github.com/worstfriend/overseerr/models"
)

func GetMediaByID(mediaID int) (*models.Media, error) {
	var m models.Media
	var serviceURL sql.NullString
	err := database.DB.QueryRow(
		"SELECT id, media_type, tmdb_id, service_url, created_at, updated_at FROM media WHERE id = $1",
		mediaID,
	).Scan(&m.ID, &m.MediaType, &m.TmdbID, &serviceURL, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	m.ServiceURL = serviceURL.String

	return &m, nil
}

// AddMedia registers a library item so issues can be reported against it.
func AddMedia(mediaType string, tmdbID int, serviceURL string) (*models.Media, error) {
	var m models.Media
	var svcURL sql.NullString
	err := database.DB.QueryRow(
		`INSERT INTO media (media_type, tmdb_id, service_url)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (media_type, tmdb_id) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
		 RETURNING id, media_type, tmdb_id, service_url, created_at, updated_at`,
		mediaType, tmdbID, serviceURL,
	).Scan(&m.ID, &m.MediaType, &m.TmdbID, &svcURL, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to add media: %w", err)
	}
	m.ServiceURL = svcURL.String

	return &m, nil
}
