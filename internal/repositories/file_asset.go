package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// FileAssetRepository serves flower and charm templates from a JSONFileDB.
type FileAssetRepository struct {
	db *JSONFileDB
}

func NewFileAssetRepository(db *JSONFileDB) *FileAssetRepository {
	return &FileAssetRepository{db: db}
}

func (r *FileAssetRepository) Insert(_ context.Context, a models.Asset) error {
	if _, err := assetTable(a.Kind); err != nil {
		return err
	}

	return r.db.updateAssets(func(all []models.Asset) ([]models.Asset, error) {
		for _, existing := range all {
			if existing.ID == a.ID {
				return nil, fmt.Errorf("asset %s: %w", a.ID, models.ErrConflict)
			}
		}
		return append(all, a), nil
	})
}

func (r *FileAssetRepository) List(_ context.Context, kind models.AssetKind, limit, offset int) ([]models.Asset, error) {
	if _, err := assetTable(kind); err != nil {
		return nil, err
	}

	var items []models.Asset
	r.db.readAssets(func(all []models.Asset) {
		for _, a := range all {
			if a.Kind == kind {
				items = append(items, a)
			}
		}
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].UsageCount != items[j].UsageCount {
			return items[i].UsageCount > items[j].UsageCount
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return paginate(items, limit, offset), nil
}

func (r *FileAssetRepository) Count(_ context.Context, kind models.AssetKind) (int, error) {
	n := 0
	r.db.readAssets(func(all []models.Asset) {
		for _, a := range all {
			if a.Kind == kind {
				n++
			}
		}
	})
	return n, nil
}
