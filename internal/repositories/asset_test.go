package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

var assetCols = []string{"id", "name", "owner_id", "image_data", "thumbnail", "is_preset", "usage_count", "shape", "object_key", "created_at"}

func TestAssetRepository_InsertAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db, nil)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO charms")).
		WithArgs("c1", "Star", "u1", "QUJD", "QUJD", false, int64(0), "circle", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Insert(ctx, models.Asset{
		ID: "c1", Kind: models.AssetCharm, Name: "Star", Owner: "u1",
		ImageData: "QUJD", Thumbnail: "QUJD", Shape: "circle", CreatedAt: now,
	}))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY usage_count DESC, created_at DESC, id")).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(assetCols).
			AddRow("c2", "Moon", "u2", "AAA", "AAA", true, 9, "crescent", "charms/c2_moon.png", now).
			AddRow("c1", "Star", "u1", "QUJD", "QUJD", false, 0, "circle", "", now))

	items, err := repo.List(ctx, models.AssetCharm, 50, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.AssetCharm, items[0].Kind)
	assert.Equal(t, int64(9), items[0].UsageCount)
	assert.Equal(t, models.UserID("u2"), items[0].Owner)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM flowers")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(ctx, models.AssetFlower)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
