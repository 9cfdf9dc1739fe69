package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

const assetColumns = `id, name, owner_id, image_data, thumbnail, is_preset, usage_count, shape, object_key, created_at`

// AssetRepository stores flower and charm templates in PostgreSQL.
type AssetRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAssetRepository(db *sqlx.DB, txGetter TxGetter) *AssetRepository {
	return &AssetRepository{db: db, txGetter: txGetter}
}

func assetTable(kind models.AssetKind) (string, error) {
	if !kind.Valid() {
		return "", models.NewValidationError(string(kind), "kind", "unknown asset kind")
	}
	return kind.Collection(), nil
}

func (r *AssetRepository) Insert(ctx context.Context, a models.Asset) error {
	tbl, err := assetTable(a.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, tbl, assetColumns)
	args := []any{a.ID, a.Name, string(a.Owner), a.ImageData, a.Thumbnail, a.IsPreset, a.UsageCount, a.Shape, a.ObjectKey, a.CreatedAt}

	_, err = executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, []any{a.ID, a.Name, a.Owner, a.ObjectKey}, a.ID, err)
	return err
}

// List returns assets ordered by usage, most used first, newest first on ties.
func (r *AssetRepository) List(ctx context.Context, kind models.AssetKind, limit, offset int) ([]models.Asset, error) {
	tbl, err := assetTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY usage_count DESC, created_at DESC, id
		LIMIT $1 OFFSET $2
	`, assetColumns, tbl)

	var items []models.Asset
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, limit, offset)
	logQuery(query, []any{limit, offset}, len(items), err)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Kind = kind
	}
	return items, nil
}

func (r *AssetRepository) Count(ctx context.Context, kind models.AssetKind) (int, error) {
	tbl, err := assetTable(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tbl)
	var n int
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)
	return n, err
}
