package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

func TestAllCreationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCreationBrowser(ctrl)
	mockSvc.EXPECT().AllCreations(gomock.Any()).Return([]models.Creation{
		{ID: "b1", Kind: models.KindBracelet},
		{ID: "p1", Kind: models.KindPainting},
	}, nil)

	w := httptest.NewRecorder()
	NewAllCreationsHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/creations", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CreationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Creations, 2)
	assert.Equal(t, "b1", resp.Creations[0].ID)
}

func TestTrendingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCreationBrowser(ctrl)

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "default limit",
			query: "",
			mockSetup: func() {
				mockSvc.EXPECT().Trending(gomock.Any(), 0).Return([]models.Creation{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "explicit limit",
			query: "?limit=6",
			mockSetup: func() {
				mockSvc.EXPECT().Trending(gomock.Any(), 6).Return([]models.Creation{{ID: "p1"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad limit",
			query:        "?limit=lots",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewTrendingHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/creations/trending"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsComputer(ctrl)

	t.Run("totals", func(t *testing.T) {
		mockSvc.EXPECT().ComputeStats(gomock.Any()).Return(&models.Stats{
			TotalsByKind: map[models.Kind]int{models.KindPainting: 2},
			TotalUsers:   3,
			TotalLikes:   9,
		}, nil)

		w := httptest.NewRecorder()
		NewStatsHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Stats)
		assert.Equal(t, 3, resp.Stats.TotalUsers)
		assert.Equal(t, int64(9), resp.Stats.TotalLikes)
		assert.Equal(t, 2, resp.Stats.TotalsByKind[models.KindPainting])
	})

	t.Run("backend down", func(t *testing.T) {
		mockSvc.EXPECT().ComputeStats(gomock.Any()).Return(nil, models.NewBackendError("count", errors.New("refused")))

		w := httptest.NewRecorder()
		NewStatsHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeError(t, w).Message)
	})
}

func TestGalleryStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsComputer(ctrl)

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "defaults to paintings",
			query: "",
			mockSetup: func() {
				mockSvc.EXPECT().GalleryStats(gomock.Any(), models.KindPainting).
					Return(&models.GalleryStats{Kind: models.KindPainting, Artists: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "bracelets",
			query: "?kind=bracelet",
			mockSetup: func() {
				mockSvc.EXPECT().GalleryStats(gomock.Any(), models.KindBracelet).
					Return(&models.GalleryStats{Kind: models.KindBracelet, Artists: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown kind",
			query:        "?kind=pottery",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewGalleryStatsHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/gallery"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUserProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileReader(ctrl)

	r := chi.NewRouter()
	r.Get("/api/users/{id}", NewUserProfileHandler(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().UserProfile(gomock.Any(), models.UserID("u1")).Return(&models.Profile{
			User:      models.User{ID: "u1", Username: "alice"},
			Creations: map[models.Kind][]models.Creation{models.KindPainting: {{ID: "p1"}}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Profile)
		assert.Equal(t, "alice", resp.Profile.User.Username)
		assert.Len(t, resp.Profile.Creations[models.KindPainting], 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc.EXPECT().UserProfile(gomock.Any(), models.UserID("ghost")).Return(nil, models.ErrNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
