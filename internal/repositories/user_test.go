package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

var userCols = []string{"user_id", "username", "email", "password_hash", "total_creations", "total_uploads", "created_at", "last_active"}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u1", "alice", nil, "", 2, 1, now, now))

	u, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.UserID("u1"), u.ID)
	assert.Nil(t, u.Email)
	assert.Equal(t, int64(2), u.TotalCreations)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), models.User{ID: "u1", Username: "alice"})
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_AdjustCounter(t *testing.T) {
	tests := []struct {
		name     string
		counter  models.Counter
		delta    int
		affected int64
		wantErr  error
	}{
		{name: "increment creations", counter: models.CounterCreations, delta: 1, affected: 1},
		{name: "decrement uploads", counter: models.CounterUploads, delta: -1, affected: 1},
		{name: "unknown user", counter: models.CounterCreations, delta: -1, affected: 0, wantErr: models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, nil)

			mock.ExpectExec(regexp.QuoteMeta("SET " + string(tt.counter) + " = GREATEST(" + string(tt.counter) + " + $2, 0)")).
				WithArgs("u1", tt.delta).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.AdjustCounter(context.Background(), "u1", tt.counter, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_AdjustCounterRejectsUnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	err := repo.AdjustCounter(context.Background(), "u1", models.Counter("password_hash"), 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_TouchAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_active = NOW() WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	require.NoError(t, repo.Touch(context.Background(), "u1"))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
