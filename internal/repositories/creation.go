package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

const creationColumns = `id, owner_id, artist_name, title, description, colors_used, payload, likes, views, created_at`

// creationRow is the storage shape of a creation. The payload is a JSONB document.
type creationRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	ArtistName  string    `db:"artist_name"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ColorsUsed  []byte    `db:"colors_used"`
	Payload     []byte    `db:"payload"`
	Likes       int64     `db:"likes"`
	Views       int64     `db:"views"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row creationRow) toModel(kind models.Kind) (models.Creation, error) {
	c := models.Creation{
		ID:          row.ID,
		Kind:        kind,
		Owner:       models.UserID(row.OwnerID),
		ArtistName:  row.ArtistName,
		Title:       row.Title,
		Description: row.Description,
		Likes:       row.Likes,
		Views:       row.Views,
		CreatedAt:   row.CreatedAt,
	}
	if len(row.ColorsUsed) > 0 {
		if err := json.Unmarshal(row.ColorsUsed, &c.ColorsUsed); err != nil {
			return models.Creation{}, fmt.Errorf("decode colors_used of %s: %w", row.ID, err)
		}
	}
	if err := c.SetPayload(row.Payload); err != nil {
		return models.Creation{}, fmt.Errorf("decode payload of %s: %w", row.ID, err)
	}
	return c, nil
}

func toModels(kind models.Kind, rows []creationRow) ([]models.Creation, error) {
	items := make([]models.Creation, 0, len(rows))
	for _, row := range rows {
		c, err := row.toModel(kind)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

// table returns the collection table of a kind. Only known kinds reach SQL.
func table(kind models.Kind) (string, error) {
	if !kind.Valid() {
		return "", models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	return kind.Collection(), nil
}

// CreationRepository stores creations in one PostgreSQL table per kind.
type CreationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCreationRepository(db *sqlx.DB, txGetter TxGetter) *CreationRepository {
	return &CreationRepository{db: db, txGetter: txGetter}
}

// Insert stores a new creation.
func (r *CreationRepository) Insert(ctx context.Context, c models.Creation) error {
	tbl, err := table(c.Kind)
	if err != nil {
		return err
	}

	colors, err := json.Marshal(c.ColorsUsed)
	if err != nil {
		return err
	}
	if c.ColorsUsed == nil {
		colors = []byte("[]")
	}
	payload, err := json.Marshal(c.Payload())
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10)
	`, tbl, creationColumns)
	args := []any{c.ID, string(c.Owner), c.ArtistName, c.Title, c.Description, string(colors), string(payload), c.Likes, c.Views, c.CreatedAt}

	_, err = executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args[:5], c.ID, err)

	if isUniqueViolation(err) {
		return fmt.Errorf("creation %s: %w", c.ID, models.ErrConflict)
	}
	return err
}

// List returns one page of creations matching q, plus the total count matching the filters.
func (r *CreationRepository) List(ctx context.Context, q models.CreationQuery) ([]models.Creation, int, error) {
	tbl, err := table(q.Kind)
	if err != nil {
		return nil, 0, err
	}

	where, args, err := whereClause(q)
	if err != nil {
		return nil, 0, err
	}

	exec := executor(ctx, r.db, r.txGetter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, tbl, where)
	var total int
	err = sqlx.GetContext(ctx, exec, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	column, ok := models.SortFields[q.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s%s
		ORDER BY %s %s, id %s
		LIMIT $%d OFFSET $%d
	`, creationColumns, tbl, where, column, dir, dir, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), q.Limit, q.Offset)

	var rows []creationRow
	err = sqlx.SelectContext(ctx, exec, &rows, query, pageArgs...)
	logQuery(query, pageArgs, len(rows), err)
	if err != nil {
		return nil, 0, err
	}

	items, err := toModels(q.Kind, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// whereClause builds equality predicates from the allow-listed filters.
func whereClause(q models.CreationQuery) (string, []any, error) {
	if len(q.Filters) == 0 {
		return "", nil, nil
	}

	fields := make([]string, 0, len(q.Filters))
	for f := range q.Filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, q.Filters[f])
		switch f {
		case "owner":
			conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
		case q.Kind.FilterField():
			conds = append(conds, fmt.Sprintf("payload->>'%s' = $%d", f, len(args)))
		default:
			return "", nil, models.NewValidationError(string(q.Kind), f, "unsupported filter")
		}
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// View increments the view counter and returns the record as it was before the increment.
func (r *CreationRepository) View(ctx context.Context, kind models.Kind, id string) (*models.Creation, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE %s SET views = views + 1
		WHERE id = $1
		RETURNING id, owner_id, artist_name, title, description, colors_used, payload, likes, views - 1 AS views, created_at
	`, tbl)

	var row creationRow
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, id)
	logQuery(query, []any{id}, row.Views, err)

	return r.scanOne(kind, id, row, err)
}

// Get returns a creation without touching its counters.
func (r *CreationRepository) Get(ctx context.Context, kind models.Kind, id string) (*models.Creation, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, creationColumns, tbl)

	var row creationRow
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, id)
	logQuery(query, []any{id}, row.ID, err)

	return r.scanOne(kind, id, row, err)
}

func (r *CreationRepository) scanOne(kind models.Kind, id string, row creationRow, err error) (*models.Creation, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	c, err := row.toModel(kind)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a creation.
func (r *CreationRepository) Delete(ctx context.Context, kind models.Kind, id string) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tbl)
	return r.execOne(ctx, kind, id, query)
}

// IncrementLikes atomically adds one like.
func (r *CreationRepository) IncrementLikes(ctx context.Context, kind models.Kind, id string) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET likes = likes + 1 WHERE id = $1`, tbl)
	return r.execOne(ctx, kind, id, query)
}

func (r *CreationRepository) execOne(ctx context.Context, kind models.Kind, id, query string) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}

// CountByKind returns the number of creations of a kind.
func (r *CreationRepository) CountByKind(ctx context.Context, kind models.Kind) (int, error) {
	tbl, err := table(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tbl)
	var n int
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)
	return n, err
}

// SumLikes returns the total likes across a kind.
func (r *CreationRepository) SumLikes(ctx context.Context, kind models.Kind) (int64, error) {
	tbl, err := table(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COALESCE(SUM(likes), 0) FROM %s`, tbl)
	var n int64
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)
	return n, err
}

// All returns every creation of a kind in insertion order.
func (r *CreationRepository) All(ctx context.Context, kind models.Kind) ([]models.Creation, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at ASC, id ASC`, creationColumns, tbl)

	var rows []creationRow
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query)
	logQuery(query, nil, len(rows), err)
	if err != nil {
		return nil, err
	}
	return toModels(kind, rows)
}
