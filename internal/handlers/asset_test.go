package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
	"github.com/sbilibin2017/gw-craft-gallery/internal/services"
)

func multipartUpload(t *testing.T, field, filename string, data []byte, values map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/flowers", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAssetUploader(ctrl)
	mockTok := NewMockTokener(ctrl)

	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("stores the upload", func(t *testing.T) {
		expectSession(mockTok, "u1")
		mockSvc.EXPECT().UploadAsset(gomock.Any(), services.AssetUpload{
			Kind:     models.AssetFlower,
			Name:     "Rose",
			Filename: "rose.png",
			Data:     png,
			Owner:    "u1",
		}).Return("a1", nil)

		w := httptest.NewRecorder()
		req := multipartUpload(t, "flower_image", "rose.png", png, map[string]string{"name": "Rose"})
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "a1", resp.ID)
	})

	t.Run("wrong field", func(t *testing.T) {
		expectSession(mockTok, "u1")

		w := httptest.NewRecorder()
		req := multipartUpload(t, "file", "rose.png", png, nil)
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "ValidationError", resp.Error)
		assert.Equal(t, "flower", resp.Kind)
	})

	t.Run("not multipart", func(t *testing.T) {
		expectSession(mockTok, "u1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/flowers", strings.NewReader(`{"name":"Rose"}`))
		req.Header.Set("Content-Type", "application/json")
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		expectSession(mockTok, "u1")

		w := httptest.NewRecorder()
		req := multipartUpload(t, "flower_image", "rose.png", bytes.Repeat([]byte("x"), 4096), nil)
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1024).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		expectSession(mockTok, "u1")
		mockSvc.EXPECT().UploadAsset(gomock.Any(), gomock.Any()).
			Return("", models.NewValidationError("flower", "file", "file type not allowed"))

		w := httptest.NewRecorder()
		req := multipartUpload(t, "flower_image", "rose.exe", []byte("MZ"), nil)
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		expectNoSession(mockTok)

		w := httptest.NewRecorder()
		req := multipartUpload(t, "flower_image", "rose.png", png, nil)
		NewUploadAssetHandler(models.AssetFlower, mockSvc, mockTok, 1<<20).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListAssetsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAssetLister(ctrl)

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "defaults",
			query: "",
			mockSetup: func() {
				mockSvc.EXPECT().ListAssets(gomock.Any(), models.AssetCharm, 0, 0).
					Return([]models.Asset{{ID: "a1", Kind: models.AssetCharm, Shape: "heart"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "paged",
			query: "?limit=10&offset=20",
			mockSetup: func() {
				mockSvc.EXPECT().ListAssets(gomock.Any(), models.AssetCharm, 10, 20).Return([]models.Asset{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad limit",
			query:        "?limit=-1",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewListAssetsHandler(models.AssetCharm, mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/charms"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp AssetListResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotNil(t, resp.Items)
			}
		})
	}
}
