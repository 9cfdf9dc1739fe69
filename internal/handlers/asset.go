package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
	"github.com/sbilibin2017/gw-craft-gallery/internal/services"
)

//go:generate mockgen -source=asset.go -destination=asset_mock.go -package=handlers

// AssetUploader stores uploaded templates.
type AssetUploader interface {
	UploadAsset(ctx context.Context, up services.AssetUpload) (string, error)
}

// AssetLister lists uploaded templates.
type AssetLister interface {
	ListAssets(ctx context.Context, kind models.AssetKind, limit, offset int) ([]models.Asset, error)
}

// AssetListResponse lists flowers or charms
// swagger:model AssetListResponse
type AssetListResponse struct {
	// default: success
	Status string         `json:"status"`
	Items  []models.Asset `json:"items"`
}

// NewUploadAssetHandler returns an HTTP handler for flower and charm uploads.
// The file is read from the "<kind>_image" multipart field.
// @Summary Upload a flower or charm
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (png, jpg, jpeg, gif or svg), field flower_image or charm_image"
// @Param name formData string false "Display name"
// @Param shape formData string false "Charm shape" default(circle)
// @Success 201 {object} handlers.CreatedResponse "Uploaded"
// @Failure 400 {object} handlers.ErrorResponse "No file or file type not allowed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 413 {object} handlers.ErrorResponse "File too large"
// @Router /flowers [post]
// @Router /charms [post]
// @Security BearerAuth
func NewUploadAssetHandler(kind models.AssetKind, svc AssetUploader, tokenGetter Tokener, maxBytes int64) http.HandlerFunc {
	field := string(kind) + "_image"

	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := requester(tokenGetter, r)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
					Status: "error", Message: "file too large", Error: "ValidationError", Kind: string(kind),
				})
				return
			}
			writeError(w, models.NewValidationError(string(kind), field, "no file uploaded"), string(kind))
			return
		}

		file, header, err := r.FormFile(field)
		if err != nil {
			writeError(w, models.NewValidationError(string(kind), field, "no file uploaded"), string(kind))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read upload", "kind", kind, "error", err)
			writeError(w, models.NewBackendError("read upload", err), string(kind))
			return
		}

		id, err := svc.UploadAsset(r.Context(), services.AssetUpload{
			Kind:     kind,
			Name:     r.FormValue("name"),
			Shape:    r.FormValue("shape"),
			Filename: header.Filename,
			Data:     data,
			Owner:    claims.UserID,
		})
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		writeJSON(w, http.StatusCreated, CreatedResponse{Status: statusSuccess, ID: id})
	}
}

// NewListAssetsHandler returns an HTTP handler listing flowers or charms, most used first.
// @Summary List flowers or charms
// @Tags assets
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Items to skip"
// @Success 200 {object} handlers.AssetListResponse "Assets"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Router /flowers [get]
// @Router /charms [get]
func NewListAssetsHandler(kind models.AssetKind, svc AssetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}
		offset, err := queryInt(r, "offset", 0)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}

		items, err := svc.ListAssets(r.Context(), kind, limit, offset)
		if err != nil {
			writeError(w, err, string(kind))
			return
		}
		writeJSON(w, http.StatusOK, AssetListResponse{Status: statusSuccess, Items: items})
	}
}
