package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worstfriend/overseerr/services"

	"github.com/go-chi/chi/v5"
)

// MovieDetailsHandler proxies rich movie metadata from TMDB for the issue
// detail page.
func MovieDetailsHandler(w http.ResponseWriter, r *http.Request) {
	tmdbID, err := ParseIDFromURL(chi.URLParam(r, "tmdbId"))
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid movie id.")
		return
	}

	details, err := services.GetMovieDetails(r.Context(), appConfig, tmdbID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			apiError(w, http.StatusNotFound, "Movie not found.")
			return
		}
		slog.Error("Failed to fetch movie details", "tmdb_id", tmdbID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to fetch movie details.")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func TvDetailsHandler(w http.ResponseWriter, r *http.Request) {
	tmdbID, err := ParseIDFromURL(chi.URLParam(r, "tmdbId"))
	if err != nil {
		apiError(w, http.StatusBadRequest, "Invalid series id.")
		return
	}

	details, err := services.GetTvDetails(r.Context(), appConfig, tmdbID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			apiError(w, http.StatusNotFound, "Series not found.")
			return
		}
		slog.Error("Failed to fetch series details", "tmdb_id", tmdbID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to fetch series details.")
		return
	}

	writeJSON(w, http.StatusOK, details)
}
