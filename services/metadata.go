package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/worstfriend/overseerr/config"
)

// tmdbClient is shared across metadata lookups
var tmdbClient = &http.Client{
	Timeout: 15 * time.Second,
}

type MovieDetails struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"releaseDate"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"posterPath"`
	BackdropPath string  `json:"backdropPath"`
	VoteAverage  float64 `json:"voteAverage"`
}

type TvDetails struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"firstAirDate"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"posterPath"`
	BackdropPath string  `json:"backdropPath"`
	VoteAverage  float64 `json:"voteAverage"`
}

type tmdbMovieResponse struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

type tmdbTvResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

func fetchTMDB(ctx context.Context, cfg *config.Config, path string, out any) error {
	if cfg.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not set")
	}

	url := fmt.Sprintf("https://api.themoviedb.org/3%s?api_key=%s", path, cfg.TMDBAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tmdbClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}
	return nil
}

func GetMovieDetails(ctx context.Context, cfg *config.Config, tmdbID int) (*MovieDetails, error) {
	var raw tmdbMovieResponse
	if err := fetchTMDB(ctx, cfg, fmt.Sprintf("/movie/%d", tmdbID), &raw); err != nil {
		return nil, err
	}

	return &MovieDetails{
		ID:           raw.ID,
		Title:        raw.Title,
		ReleaseDate:  raw.ReleaseDate,
		Overview:     raw.Overview,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
		VoteAverage:  raw.VoteAverage,
	}, nil
}

func GetTvDetails(ctx context.Context, cfg *config.Config, tmdbID int) (*TvDetails, error) {
	var raw tmdbTvResponse
	if err := fetchTMDB(ctx, cfg, fmt.Sprintf("/tv/%d", tmdbID), &raw); err != nil {
		return nil, err
	}

	return &TvDetails{
		ID:           raw.ID,
		Name:         raw.Name,
		FirstAirDate: raw.FirstAirDate,
		Overview:     raw.Overview,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
		VoteAverage:  raw.VoteAverage,
	}, nil
}
