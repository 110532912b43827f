// Package handler provides HTTP handlers for all API endpoints.
// Handlers fetch raw records from the feed client, run the timeline
// pipeline, and serve the rendered JSON with ETag support. The pipeline is
// pure, so responses are memoized in the in-memory cache keyed by game id.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nordsport/matchfeed/internal/api/respond"
	"github.com/nordsport/matchfeed/internal/cache"
	"github.com/nordsport/matchfeed/internal/config"
	"github.com/nordsport/matchfeed/internal/provider"
)

// Feed is the slice of the data-fetch layer the handlers need.
type Feed interface {
	Game(ctx context.Context, gameID string) (*provider.GameSummary, error)
	Events(ctx context.Context, gameID string) ([]provider.Event, error)
	Clips(ctx context.Context, gameID string) ([]provider.VideoClip, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	feed  Feed
	cache *cache.Cache
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(feed Feed, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{feed: feed, cache: c, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Matchfeed API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
