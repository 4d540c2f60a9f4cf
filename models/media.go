package models

import "time"

const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// Media is a library item issues are reported against. TmdbID keys the rich
// metadata lookup; ServiceURL points at the managing Radarr/Sonarr instance.
type Media struct {
	ID         int       `json:"id"`
	MediaType  string    `json:"mediaType"` // "movie" or "tv"
	TmdbID     int       `json:"tmdbId"`
	ServiceURL string    `json:"serviceUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
