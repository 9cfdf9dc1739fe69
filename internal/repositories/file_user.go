package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// FileUserRepository serves users from a JSONFileDB.
type FileUserRepository struct {
	db *JSONFileDB
}

func NewFileUserRepository(db *JSONFileDB) *FileUserRepository {
	return &FileUserRepository{db: db}
}

func (r *FileUserRepository) find(match func(models.User) bool, what string) (*models.User, error) {
	var (
		found models.User
		ok    bool
	)
	r.db.readUsers(func(all []models.User) {
		for _, u := range all {
			if match(u) {
				found, ok = u, true
				return
			}
		}
	})
	if !ok {
		return nil, fmt.Errorf("user %s: %w", what, models.ErrNotFound)
	}
	return &found, nil
}

func (r *FileUserRepository) GetByID(_ context.Context, id models.UserID) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id }, "user_id="+string(id))
}

func (r *FileUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username }, "username="+username)
}

func (r *FileUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email != nil && *u.Email == email }, "email="+email)
}

func (r *FileUserRepository) Create(_ context.Context, u models.User) error {
	return r.db.updateUsers(func(all []models.User) ([]models.User, error) {
		for _, existing := range all {
			if existing.ID == u.ID || existing.Username == u.Username ||
				(u.Email != nil && existing.Email != nil && *existing.Email == *u.Email) {
				return nil, fmt.Errorf("user %q: %w", u.Username, models.ErrConflict)
			}
		}
		return append(all, u), nil
	})
}

func (r *FileUserRepository) update(id models.UserID, fn func(*models.User)) error {
	return r.db.updateUsers(func(all []models.User) ([]models.User, error) {
		for i := range all {
			if all[i].ID == id {
				fn(&all[i])
				return all, nil
			}
		}
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	})
}

func (r *FileUserRepository) Touch(_ context.Context, id models.UserID) error {
	return r.update(id, func(u *models.User) {
		u.LastActive = time.Now().UTC()
	})
}

func (r *FileUserRepository) AdjustCounter(_ context.Context, id models.UserID, counter models.Counter, delta int) error {
	if counter != models.CounterCreations && counter != models.CounterUploads {
		return fmt.Errorf("unknown user counter %q", counter)
	}
	return r.update(id, func(u *models.User) {
		u.Adjust(counter, delta)
		u.LastActive = time.Now().UTC()
	})
}

func (r *FileUserRepository) Count(_ context.Context) (int, error) {
	n := 0
	r.db.readUsers(func(all []models.User) { n = len(all) })
	return n, nil
}
