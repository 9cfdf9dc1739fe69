//go:build integration

package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-craft-gallery/internal/migrations"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, migrations.Up(db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgres_GalleryRoundTrip(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db, nil)
	creations := NewCreationRepository(db, nil)
	assets := NewAssetRepository(db, nil)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, users.Create(ctx, models.User{ID: "u1", Username: "alice", CreatedAt: now, LastActive: now}))
	assert.ErrorIs(t, users.Create(ctx, models.User{ID: "u2", Username: "alice", CreatedAt: now, LastActive: now}), models.ErrConflict)

	p := newPainting("p1", "Sky", "mug", "u1", now)
	p.ColorsUsed = []string{"red", "blue"}
	require.NoError(t, creations.Insert(ctx, p))
	require.NoError(t, users.AdjustCounter(ctx, "u1", models.CounterCreations, 1))

	items, total, err := creations.List(ctx, models.CreationQuery{
		Kind: models.KindPainting, Filters: map[string]string{"productType": "mug"},
		SortBy: "createdAt", Desc: true, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"red", "blue"}, items[0].ColorsUsed)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, creations.IncrementLikes(ctx, models.KindPainting, "p1"))
		}()
	}
	wg.Wait()

	viewed, err := creations.View(ctx, models.KindPainting, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), viewed.Views)

	got, err := creations.Get(ctx, models.KindPainting, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Likes)
	assert.Equal(t, int64(1), got.Views)

	require.NoError(t, creations.Delete(ctx, models.KindPainting, "p1"))
	require.NoError(t, users.AdjustCounter(ctx, "u1", models.CounterCreations, -1))
	require.NoError(t, users.AdjustCounter(ctx, "u1", models.CounterCreations, -1))

	u, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.TotalCreations)

	require.NoError(t, assets.Insert(ctx, models.Asset{ID: "f1", Kind: models.AssetFlower, Name: "Rose", Owner: "u1", ImageData: "AAA", Thumbnail: "AAA", CreatedAt: now}))
	list, err := assets.List(ctx, models.AssetFlower, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rose", list[0].Name)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionRepository(rdb)

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Second))
	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-2", 0))
	revoked, err = repo.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	time.Sleep(1500 * time.Millisecond)
	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
