package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=gallery.go -destination=gallery_mock.go -package=handlers

// CreationBrowser reads creations across kinds.
type CreationBrowser interface {
	AllCreations(ctx context.Context) ([]models.Creation, error)
	Trending(ctx context.Context, limit int) ([]models.Creation, error)
}

// StatsComputer computes gallery statistics.
type StatsComputer interface {
	ComputeStats(ctx context.Context) (*models.Stats, error)
	GalleryStats(ctx context.Context, kind models.Kind) (*models.GalleryStats, error)
}

// ProfileReader reads user profiles.
type ProfileReader interface {
	UserProfile(ctx context.Context, id models.UserID) (*models.Profile, error)
}

// CreationsResponse lists creations of several kinds
// swagger:model CreationsResponse
type CreationsResponse struct {
	// default: success
	Status    string            `json:"status"`
	Creations []models.Creation `json:"creations"`
}

// StatsResponse wraps the gallery-wide totals
// swagger:model StatsResponse
type StatsResponse struct {
	// default: success
	Status string        `json:"status"`
	Stats  *models.Stats `json:"stats"`
}

// GalleryStatsResponse wraps the statistics of one kind
// swagger:model GalleryStatsResponse
type GalleryStatsResponse struct {
	// default: success
	Status string               `json:"status"`
	Stats  *models.GalleryStats `json:"stats"`
}

// ProfileResponse wraps a user profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// default: success
	Status  string          `json:"status"`
	Profile *models.Profile `json:"profile"`
}

// NewAllCreationsHandler returns an HTTP handler listing every creation, newest first.
// @Summary All creations
// @Tags community
// @Produce json
// @Success 200 {object} handlers.CreationsResponse "Creations"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /creations [get]
func NewAllCreationsHandler(svc CreationBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.AllCreations(r.Context())
		if err != nil {
			writeError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, CreationsResponse{Status: statusSuccess, Creations: items})
	}
}

// NewTrendingHandler returns an HTTP handler listing the most liked creations of every kind.
// @Summary Trending creations
// @Tags community
// @Produce json
// @Param limit query int false "Total number of creations, split evenly across kinds" default(12)
// @Success 200 {object} handlers.CreationsResponse "Creations"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /creations/trending [get]
func NewTrendingHandler(svc CreationBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			writeError(w, err, "")
			return
		}
		items, err := svc.Trending(r.Context(), limit)
		if err != nil {
			writeError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, CreationsResponse{Status: statusSuccess, Creations: items})
	}
}

// NewStatsHandler returns an HTTP handler with gallery-wide totals.
// @Summary Community statistics
// @Tags community
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /stats [get]
func NewStatsHandler(svc StatsComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.ComputeStats(r.Context())
		if err != nil {
			writeError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, StatsResponse{Status: statusSuccess, Stats: stats})
	}
}

// NewGalleryStatsHandler returns an HTTP handler with the statistics of one kind.
// @Summary Gallery statistics
// @Description Total creations, artists, the ten most used colors and the average creation time
// @Tags community
// @Produce json
// @Param kind query string false "painting, arrangement or bracelet" default(painting)
// @Success 200 {object} handlers.GalleryStatsResponse "Statistics"
// @Failure 400 {object} handlers.ErrorResponse "Unknown kind"
// @Router /stats/gallery [get]
func NewGalleryStatsHandler(svc StatsComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("kind")
		if raw == "" {
			raw = string(models.KindPainting)
		}
		kind, err := models.ParseKind(raw)
		if err != nil {
			writeError(w, err, raw)
			return
		}

		stats, err := svc.GalleryStats(r.Context(), kind)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}
		writeJSON(w, http.StatusOK, GalleryStatsResponse{Status: statusSuccess, Stats: stats})
	}
}

// NewUserProfileHandler returns an HTTP handler with a user and their creations.
// @Summary User profile
// @Tags community
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id} [get]
func NewUserProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.UserProfile(r.Context(), models.UserID(chi.URLParam(r, "id")))
		if err != nil {
			writeError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{Status: statusSuccess, Profile: profile})
	}
}
