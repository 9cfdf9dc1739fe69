package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
	"github.com/sbilibin2017/gw-craft-gallery/internal/repositories"
	"github.com/sbilibin2017/gw-craft-gallery/internal/services"
)

type fileGallery struct {
	gallery *services.GalleryService
	assets  *services.AssetService
	users   *repositories.FileUserRepository
	files   *repositories.FileAssetRepository
}

func newFileGallery(t *testing.T) fileGallery {
	t.Helper()
	db, err := repositories.OpenJSONFileDB(t.TempDir())
	require.NoError(t, err)

	users := repositories.NewFileUserRepository(db)
	creations := repositories.NewFileCreationRepository(db)
	assets := repositories.NewFileAssetRepository(db)

	now := time.Now().UTC()
	for _, u := range []models.User{
		{ID: "u1", Username: "alice", CreatedAt: now, LastActive: now},
		{ID: "u2", Username: "bob", CreatedAt: now, LastActive: now},
	} {
		require.NoError(t, users.Create(context.Background(), u))
	}

	return fileGallery{
		gallery: services.NewGalleryService(creations, users, assets, nil),
		assets:  services.NewAssetService(assets, users, nil, nil),
		users:   users,
		files:   assets,
	}
}

func skyPainting() models.CreationFields {
	return models.CreationFields{
		Title:       "Sky",
		ProductType: "mug",
		ImageData:   "AAA",
		CanvasSize:  &models.CanvasSize{Width: 800, Height: 600},
	}
}

func TestScenario_PaintingLikesAndViews(t *testing.T) {
	ctx := context.Background()
	g := newFileGallery(t)

	id, err := g.gallery.InsertCreation(ctx, models.KindPainting, skyPainting(), "u1")
	require.NoError(t, err)

	items, total, err := g.gallery.ListCreations(ctx, models.KindPainting, nil, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Zero(t, items[0].Likes)
	assert.Zero(t, items[0].Views)

	require.NoError(t, g.gallery.LikeCreation(ctx, id, "painting", "u2"))
	require.NoError(t, g.gallery.LikeCreation(ctx, id, "painting", "u2"))

	first, err := g.gallery.GetCreation(ctx, models.KindPainting, id)
	require.NoError(t, err)
	assert.Zero(t, first.Views)

	again, err := g.gallery.GetCreation(ctx, models.KindPainting, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Likes)
	assert.Equal(t, int64(1), again.Views)

	u, err := g.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.TotalCreations)
}

func TestScenario_ViewsCountFromZero(t *testing.T) {
	ctx := context.Background()
	g := newFileGallery(t)

	id, err := g.gallery.InsertCreation(ctx, models.KindPainting, skyPainting(), "u1")
	require.NoError(t, err)

	for want := int64(0); want < 5; want++ {
		c, err := g.gallery.GetCreation(ctx, models.KindPainting, id)
		require.NoError(t, err)
		assert.Equal(t, want, c.Views)
	}
}

func TestScenario_ValidationLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	g := newFileGallery(t)

	fields := skyPainting()
	fields.ImageData = ""
	_, err := g.gallery.InsertCreation(ctx, models.KindPainting, fields, "u1")
	require.ErrorIs(t, err, models.ErrValidation)

	_, total, err := g.gallery.ListCreations(ctx, models.KindPainting, nil, "", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	u, err := g.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, u.TotalCreations)
}

func TestScenario_DeleteOwnership(t *testing.T) {
	ctx := context.Background()
	g := newFileGallery(t)

	id, err := g.gallery.InsertCreation(ctx, models.KindPainting, skyPainting(), "u1")
	require.NoError(t, err)

	err = g.gallery.DeleteCreation(ctx, models.KindPainting, id, "u2")
	require.ErrorIs(t, err, models.ErrForbidden)

	_, err = g.gallery.GetCreation(ctx, models.KindPainting, id)
	require.NoError(t, err)
	u, err := g.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.TotalCreations)

	require.NoError(t, g.gallery.DeleteCreation(ctx, models.KindPainting, id, "u1"))

	_, err = g.gallery.GetCreation(ctx, models.KindPainting, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, g.gallery.DeleteCreation(ctx, models.KindPainting, id, "u1"), models.ErrNotFound)

	u, err = g.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, u.TotalCreations)
}

func TestScenario_UniqueIDsAndDisjointPages(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	clock := func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	db, err := repositories.OpenJSONFileDB(t.TempDir())
	require.NoError(t, err)
	users := repositories.NewFileUserRepository(db)
	require.NoError(t, users.Create(ctx, models.User{ID: "u1", Username: "alice"}))
	gallery := services.NewGalleryService(
		repositories.NewFileCreationRepository(db), users, repositories.NewFileAssetRepository(db), nil,
		services.WithClock(clock),
	)

	seen := map[string]bool{}
	for i := 0; i < 7; i++ {
		fields := skyPainting()
		fields.Title = fmt.Sprintf("Sky %d", i)
		id, err := gallery.InsertCreation(ctx, models.KindPainting, fields, "u1")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	full, total, err := gallery.ListCreations(ctx, models.KindPainting, nil, "", 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, total)

	first, _, err := gallery.ListCreations(ctx, models.KindPainting, nil, "", 3, 0)
	require.NoError(t, err)
	second, _, err := gallery.ListCreations(ctx, models.KindPainting, nil, "", 2, 3)
	require.NoError(t, err)

	assert.Equal(t, full[:5], append(first, second...))
	assert.Equal(t, "Sky 6", full[0].Title)
}

func TestScenario_AssetUpload(t *testing.T) {
	ctx := context.Background()
	g := newFileGallery(t)

	require.NoError(t, g.files.Insert(ctx, models.Asset{
		ID: "preset", Kind: models.AssetFlower, Name: "Tulip", UsageCount: 5, IsPreset: true,
		CreatedAt: time.Now().Add(-time.Hour),
	}))

	_, err := g.assets.UploadAsset(ctx, services.AssetUpload{
		Kind: models.AssetFlower, Name: "Bad", Filename: "art.exe", Data: []byte("MZ"), Owner: "u1",
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	id, err := g.assets.UploadAsset(ctx, services.AssetUpload{
		Kind: models.AssetFlower, Name: "Rose", Filename: "art.png", Data: []byte{0x89, 'P', 'N', 'G'}, Owner: "u1",
	})
	require.NoError(t, err)

	items, err := g.assets.ListAssets(ctx, models.AssetFlower, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "preset", items[0].ID)
	assert.Equal(t, id, items[1].ID)
	assert.Equal(t, items[1].ImageData, items[1].Thumbnail)

	u, err := g.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.TotalUploads)

	stats, err := g.gallery.ComputeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUploads)
	assert.Equal(t, 2, stats.TotalUsers)
}
