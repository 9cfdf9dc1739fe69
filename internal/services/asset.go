package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
	"github.com/sbilibin2017/gw-craft-gallery/internal/storage/minio"
)

//go:generate mockgen -source=asset.go -destination=asset_mock.go -package=services

// DefaultAssetLimit is the page size of asset listings.
const DefaultAssetLimit = 50

// AssetStore persists uploaded assets.
type AssetStore interface {
	Insert(ctx context.Context, a models.Asset) error                                           // Persists a new asset
	List(ctx context.Context, kind models.AssetKind, limit, offset int) ([]models.Asset, error) // Returns assets by usage, most used first
}

// UploadCounter maintains the per-user upload counter.
type UploadCounter interface {
	AdjustCounter(ctx context.Context, id models.UserID, counter models.Counter, delta int) error // Adds delta to a counter, clamped at zero
}

// BlobStorage mirrors raw uploads to object storage.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte) error // Stores an object
	Delete(ctx context.Context, key string) error              // Removes an object
}

// AssetUpload is one uploaded template file.
type AssetUpload struct {
	Kind     models.AssetKind
	Name     string
	Shape    string
	Filename string
	Data     []byte
	Owner    models.UserID
}

// AssetService handles flower and charm uploads.
type AssetService struct {
	assets      AssetStore
	owners      UploadCounter
	blobs       BlobStorage
	kafkaWriter KafkaWriter
}

// NewAssetService creates a new AssetService. blobs and kafkaWriter may be nil.
func NewAssetService(assets AssetStore, owners UploadCounter, blobs BlobStorage, kafkaWriter KafkaWriter) *AssetService {
	return &AssetService{
		assets:      assets,
		owners:      owners,
		blobs:       blobs,
		kafkaWriter: kafkaWriter,
	}
}

// assetExtension returns the lower-case extension of filename if it is allowed.
func assetExtension(kind models.AssetKind, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := models.AllowedAssetExtensions[ext]; !ok {
		return "", models.NewValidationError(string(kind), "file", fmt.Sprintf("file type %q is not allowed", ext))
	}
	return ext, nil
}

// UploadAsset validates and stores an uploaded template, returning its id.
func (s *AssetService) UploadAsset(ctx context.Context, up AssetUpload) (string, error) {
	if !up.Kind.Valid() {
		return "", models.NewValidationError(string(up.Kind), "kind", "unknown asset kind")
	}
	if strings.TrimSpace(up.Filename) == "" || len(up.Data) == 0 {
		return "", models.NewValidationError(string(up.Kind), "file", "no file uploaded")
	}
	if _, err := assetExtension(up.Kind, up.Filename); err != nil {
		logger.Log.Infow("rejected upload", "kind", up.Kind, "filename", up.Filename, "err", err)
		return "", err
	}
	if up.Owner.IsZero() {
		return "", fmt.Errorf("%w: uploads need an owner", models.ErrUnauthorized)
	}

	encoded := base64.StdEncoding.EncodeToString(up.Data)
	a := models.Asset{
		ID:        uuid.NewString(),
		Kind:      up.Kind,
		Name:      strings.TrimSpace(up.Name),
		Owner:     up.Owner,
		ImageData: encoded,
		Thumbnail: encoded,
		CreatedAt: time.Now().UTC(),
	}
	if a.Name == "" {
		a.Name = up.Kind.DefaultName()
	}
	if up.Kind == models.AssetCharm {
		a.Shape = strings.TrimSpace(up.Shape)
		if a.Shape == "" {
			a.Shape = models.DefaultCharmShape
		}
	}

	if s.blobs != nil {
		key := minio.ObjectKey(up.Kind.Collection(), a.ID, filepath.Base(up.Filename))
		if err := s.blobs.Upload(ctx, key, up.Data); err != nil {
			logger.Log.Errorw("failed to mirror upload", "key", key, "err", err)
			return "", models.NewBackendError("mirror upload", err)
		}
		a.ObjectKey = key
	}

	if err := s.assets.Insert(ctx, a); err != nil {
		logger.Log.Errorw("failed to insert asset", "kind", up.Kind, "err", err)
		s.discardBlob(ctx, a.ObjectKey)
		return "", models.NewBackendError("insert asset", err)
	}

	if err := s.owners.AdjustCounter(ctx, up.Owner, models.CounterUploads, 1); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to increment upload counter", "owner", up.Owner, "err", err)
			return "", models.NewBackendError("increment upload counter", err)
		}
		logger.Log.Warnw("uploader not found", "owner", up.Owner, "id", a.ID)
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventAssetUploaded, string(up.Kind), a.ID, up.Owner))
	return a.ID, nil
}

func (s *AssetService) discardBlob(ctx context.Context, key string) {
	if s.blobs == nil || key == "" {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		logger.Log.Warnw("failed to remove orphaned upload", "key", key, "err", err)
	}
}

// ListAssets returns assets of a kind, most used first and newest first on ties.
func (s *AssetService) ListAssets(ctx context.Context, kind models.AssetKind, limit, offset int) ([]models.Asset, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError(string(kind), "kind", "unknown asset kind")
	}
	if offset < 0 {
		return nil, models.NewValidationError(string(kind), "offset", "must not be negative")
	}
	if limit <= 0 {
		limit = DefaultAssetLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := s.assets.List(ctx, kind, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list assets", "kind", kind, "err", err)
		return nil, models.NewBackendError("list assets", err)
	}
	if items == nil {
		items = []models.Asset{}
	}
	return items, nil
}
