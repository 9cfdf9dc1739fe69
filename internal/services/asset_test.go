package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

type assetMocks struct {
	assets *MockAssetStore
	owners *MockUploadCounter
	blobs  *MockBlobStorage
	kafka  *MockKafkaWriter
}

func newAssetService(t *testing.T, withBlobs bool) (*AssetService, assetMocks) {
	ctrl := gomock.NewController(t)
	m := assetMocks{
		assets: NewMockAssetStore(ctrl),
		owners: NewMockUploadCounter(ctrl),
		blobs:  NewMockBlobStorage(ctrl),
		kafka:  NewMockKafkaWriter(ctrl),
	}
	var blobs BlobStorage
	if withBlobs {
		blobs = m.blobs
	}
	return NewAssetService(m.assets, m.owners, blobs, m.kafka), m
}

func TestAssetService_UploadAsset_Rejected(t *testing.T) {
	svc, _ := newAssetService(t, true)
	ctx := context.Background()

	tests := []struct {
		name string
		up   AssetUpload
	}{
		{"bad extension", AssetUpload{Kind: models.AssetFlower, Filename: "art.exe", Data: []byte("MZ"), Owner: "u1"}},
		{"no extension", AssetUpload{Kind: models.AssetFlower, Filename: "art", Data: []byte("x"), Owner: "u1"}},
		{"no file", AssetUpload{Kind: models.AssetFlower, Owner: "u1"}},
		{"empty file", AssetUpload{Kind: models.AssetCharm, Filename: "a.png", Owner: "u1"}},
		{"unknown kind", AssetUpload{Kind: "bead", Filename: "a.png", Data: []byte("x"), Owner: "u1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadAsset(ctx, tt.up)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAssetService_UploadAsset(t *testing.T) {
	ctx := context.Background()
	svc, m := newAssetService(t, true)

	var stored models.Asset
	m.blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), []byte("PNGDATA")).Return(nil)
	m.assets.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a models.Asset) error {
		stored = a
		return nil
	})
	m.owners.EXPECT().AdjustCounter(gomock.Any(), models.UserID("u1"), models.CounterUploads, 1).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	id, err := svc.UploadAsset(ctx, AssetUpload{
		Kind: models.AssetCharm, Filename: "Lucky Star.PNG", Data: []byte("PNGDATA"), Owner: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Custom Charm", stored.Name)
	assert.Equal(t, models.DefaultCharmShape, stored.Shape)
	assert.Equal(t, "UE5HREFUQQ==", stored.ImageData)
	assert.Equal(t, stored.ImageData, stored.Thumbnail)
	assert.Zero(t, stored.UsageCount)
	assert.Equal(t, "charms/"+id+"_Lucky_Star.PNG", stored.ObjectKey)
}

func TestAssetService_UploadAsset_WithoutBlobStorage(t *testing.T) {
	ctx := context.Background()
	svc, m := newAssetService(t, false)

	m.assets.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a models.Asset) error {
		assert.Empty(t, a.ObjectKey)
		assert.Equal(t, "Rose", a.Name)
		assert.Empty(t, a.Shape)
		return nil
	})
	m.owners.EXPECT().AdjustCounter(gomock.Any(), models.UserID("u1"), models.CounterUploads, 1).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.UploadAsset(ctx, AssetUpload{
		Kind: models.AssetFlower, Name: " Rose ", Shape: "heart", Filename: "rose.svg", Data: []byte("<svg/>"), Owner: "u1",
	})
	require.NoError(t, err)
}

func TestAssetService_UploadAsset_InsertFailureRemovesBlob(t *testing.T) {
	ctx := context.Background()
	svc, m := newAssetService(t, true)

	var key string
	m.blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k string, _ []byte) error {
		key = k
		return nil
	})
	m.assets.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	m.blobs.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k string) error {
		assert.Equal(t, key, k)
		return nil
	})

	_, err := svc.UploadAsset(ctx, AssetUpload{Kind: models.AssetFlower, Filename: "a.gif", Data: []byte("GIF"), Owner: "u1"})
	assert.ErrorIs(t, err, models.ErrBackend)
}

func TestAssetService_ListAssets(t *testing.T) {
	ctx := context.Background()
	svc, m := newAssetService(t, false)

	m.assets.EXPECT().List(gomock.Any(), models.AssetFlower, DefaultAssetLimit, 0).Return(nil, nil)
	items, err := svc.ListAssets(ctx, models.AssetFlower, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)

	m.assets.EXPECT().List(gomock.Any(), models.AssetCharm, 10, 20).Return([]models.Asset{{ID: "c1"}}, nil)
	items, err = svc.ListAssets(ctx, models.AssetCharm, 10, 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListAssets(ctx, models.AssetCharm, 10, -5)
	assert.ErrorIs(t, err, models.ErrValidation)
}
