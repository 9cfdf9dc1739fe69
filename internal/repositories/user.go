package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

const userColumns = `user_id, username, email, password_hash, total_creations, total_uploads, created_at, last_active`

type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

func (r *UserRepository) GetByID(ctx context.Context, id models.UserID) (*models.User, error) {
	return r.getBy(ctx, "user_id", string(id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 LIMIT 1`, userColumns, column)

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, value)
	logQuery(query, []any{value}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s=%q: %w", column, value, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. Duplicate usernames or emails yield ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{string(u.ID), u.Username, u.Email, u.PasswordHash, u.TotalCreations, u.TotalUploads, u.CreatedAt, u.LastActive}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args[:3], u.ID, err)

	if isUniqueViolation(err) {
		return fmt.Errorf("user %q: %w", u.Username, models.ErrConflict)
	}
	return err
}

// Touch records activity for a user.
func (r *UserRepository) Touch(ctx context.Context, id models.UserID) error {
	const query = `UPDATE users SET last_active = NOW() WHERE user_id = $1`
	return r.execOne(ctx, id, query, string(id))
}

// AdjustCounter adds delta to a counter, clamping at zero, and records activity.
func (r *UserRepository) AdjustCounter(ctx context.Context, id models.UserID, counter models.Counter, delta int) error {
	if counter != models.CounterCreations && counter != models.CounterUploads {
		return fmt.Errorf("unknown user counter %q", counter)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %[1]s = GREATEST(%[1]s + $2, 0), last_active = NOW()
		WHERE user_id = $1
	`, counter)
	return r.execOne(ctx, id, query, string(id), delta)
}

func (r *UserRepository) execOne(ctx context.Context, id models.UserID, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// Count returns the number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)
	return n, err
}
