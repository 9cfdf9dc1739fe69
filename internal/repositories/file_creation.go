package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// FileCreationRepository serves creations from a JSONFileDB.
type FileCreationRepository struct {
	db *JSONFileDB
}

func NewFileCreationRepository(db *JSONFileDB) *FileCreationRepository {
	return &FileCreationRepository{db: db}
}

func (r *FileCreationRepository) Insert(_ context.Context, c models.Creation) error {
	if _, err := table(c.Kind); err != nil {
		return err
	}

	return r.db.updateCreations(func(all []models.Creation) ([]models.Creation, error) {
		for _, existing := range all {
			if existing.ID == c.ID {
				return nil, fmt.Errorf("creation %s: %w", c.ID, models.ErrConflict)
			}
		}
		return append(all, c), nil
	})
}

func (r *FileCreationRepository) List(_ context.Context, q models.CreationQuery) ([]models.Creation, int, error) {
	if _, err := table(q.Kind); err != nil {
		return nil, 0, err
	}
	if err := validateFilters(q); err != nil {
		return nil, 0, err
	}

	var matched []models.Creation
	r.db.readCreations(func(all []models.Creation) {
		for _, c := range all {
			if c.Kind == q.Kind && matchesFilters(c, q.Filters) {
				matched = append(matched, c)
			}
		}
	})

	sort.SliceStable(matched, func(i, j int) bool {
		if q.Desc {
			return models.Less(matched[j], matched[i], q.SortBy)
		}
		return models.Less(matched[i], matched[j], q.SortBy)
	})

	return paginate(matched, q.Limit, q.Offset), len(matched), nil
}

func validateFilters(q models.CreationQuery) error {
	for f := range q.Filters {
		if f != "owner" && f != q.Kind.FilterField() {
			return models.NewValidationError(string(q.Kind), f, "unsupported filter")
		}
	}
	return nil
}

func matchesFilters(c models.Creation, filters map[string]string) bool {
	for f, want := range filters {
		got, ok := c.FilterValue(f)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// paginate slices items by offset and limit. A non-positive limit returns the rest.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func indexOf(all []models.Creation, kind models.Kind, id string) int {
	for i, c := range all {
		if c.ID == id && c.Kind == kind {
			return i
		}
	}
	return -1
}

func (r *FileCreationRepository) View(_ context.Context, kind models.Kind, id string) (*models.Creation, error) {
	var snapshot models.Creation
	err := r.db.updateCreations(func(all []models.Creation) ([]models.Creation, error) {
		i := indexOf(all, kind, id)
		if i < 0 {
			return nil, fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
		}
		snapshot = all[i]
		all[i].Views++
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *FileCreationRepository) Get(_ context.Context, kind models.Kind, id string) (*models.Creation, error) {
	var (
		found models.Creation
		ok    bool
	)
	r.db.readCreations(func(all []models.Creation) {
		if i := indexOf(all, kind, id); i >= 0 {
			found, ok = all[i], true
		}
	})
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return &found, nil
}

func (r *FileCreationRepository) Delete(_ context.Context, kind models.Kind, id string) error {
	return r.db.updateCreations(func(all []models.Creation) ([]models.Creation, error) {
		i := indexOf(all, kind, id)
		if i < 0 {
			return nil, fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
		}
		return append(all[:i], all[i+1:]...), nil
	})
}

func (r *FileCreationRepository) IncrementLikes(_ context.Context, kind models.Kind, id string) error {
	return r.db.updateCreations(func(all []models.Creation) ([]models.Creation, error) {
		i := indexOf(all, kind, id)
		if i < 0 {
			return nil, fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
		}
		all[i].Likes++
		return all, nil
	})
}

func (r *FileCreationRepository) CountByKind(_ context.Context, kind models.Kind) (int, error) {
	n := 0
	r.db.readCreations(func(all []models.Creation) {
		for _, c := range all {
			if c.Kind == kind {
				n++
			}
		}
	})
	return n, nil
}

func (r *FileCreationRepository) SumLikes(_ context.Context, kind models.Kind) (int64, error) {
	var n int64
	r.db.readCreations(func(all []models.Creation) {
		for _, c := range all {
			if c.Kind == kind {
				n += c.Likes
			}
		}
	})
	return n, nil
}

func (r *FileCreationRepository) All(_ context.Context, kind models.Kind) ([]models.Creation, error) {
	items := []models.Creation{}
	r.db.readCreations(func(all []models.Creation) {
		for _, c := range all {
			if c.Kind == kind {
				items = append(items, c)
			}
		}
	})
	return items, nil
}
