package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/worstfriend/overseerr/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newChiRequest(method, target, param, value string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestMediaDetailsUseStartupConfig(t *testing.T) {
	// The metadata handlers read the config captured at startup; with no TMDB
	// key there the lookup fails before any outbound call is made.
	InitConfig(&config.Config{})

	rr := httptest.NewRecorder()
	MovieDetailsHandler(rr, newChiRequest(http.MethodGet, "/api/v1/movie/550", "tmdbId", "550"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch movie details.")

	rr = httptest.NewRecorder()
	TvDetailsHandler(rr, newChiRequest(http.MethodGet, "/api/v1/tv/1399", "tmdbId", "1399"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch series details.")
}

func TestMediaDetailsRejectBadID(t *testing.T) {
	InitConfig(&config.Config{})

	rr := httptest.NewRecorder()
	MovieDetailsHandler(rr, newChiRequest(http.MethodGet, "/api/v1/movie/abc", "tmdbId", "abc"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid movie id.")

	rr = httptest.NewRecorder()
	TvDetailsHandler(rr, newChiRequest(http.MethodGet, "/api/v1/tv/abc", "tmdbId", "abc"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid series id.")
}
