package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

const (
	creationsFile = "creations.json"
	usersFile     = "users.json"
	assetsFile    = "assets.json"
)

// JSONFileDB keeps every collection in memory and rewrites the backing file on each mutation.
// A missing or malformed file is read as an empty collection.
type JSONFileDB struct {
	mu  sync.RWMutex
	dir string

	creations []models.Creation
	users     []models.User
	assets    []models.Asset
}

// OpenJSONFileDB loads the collections stored in dir, creating the directory if needed.
func OpenJSONFileDB(dir string) (*JSONFileDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, models.NewBackendError("create data dir", err)
	}

	db := &JSONFileDB{dir: dir}

	var records []creationRecord
	if loadFile(dir, creationsFile, &records) {
		db.creations = fromCreationRecords(records)
	}
	loadFile(dir, usersFile, &db.users)
	loadFile(dir, assetsFile, &db.assets)

	logger.Log.Infow("file store opened",
		"dir", dir,
		"creations", len(db.creations),
		"users", len(db.users),
		"assets", len(db.assets),
	)

	return db, nil
}

// loadFile decodes dir/name into dest and reports whether it did.
// dest is left untouched when the file is missing, unreadable or malformed.
func loadFile[T any](dir, name string, dest *[]T) bool {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Log.Warnw("failed to read store file, starting empty", "path", path, "error", err)
		}
		return false
	}
	if len(data) == 0 {
		return false
	}

	var decoded []T
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.Log.Warnw("malformed store file, starting empty", "path", path, "error", err)
		return false
	}
	*dest = decoded
	return true
}

// persist writes v to a temporary file and renames it over the target.
func (db *JSONFileDB) persist(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(db.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(db.dir, name))
}

// updateCreations applies fn to a copy of the collection and keeps the result only if it was persisted.
func (db *JSONFileDB) updateCreations(fn func([]models.Creation) ([]models.Creation, error)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	next, err := fn(slices.Clone(db.creations))
	if err != nil {
		return err
	}
	if err := db.persist(creationsFile, toCreationRecords(next)); err != nil {
		return models.NewBackendError(fmt.Sprintf("write %s", creationsFile), err)
	}
	db.creations = next
	return nil
}

func (db *JSONFileDB) updateUsers(fn func([]models.User) ([]models.User, error)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	next, err := fn(slices.Clone(db.users))
	if err != nil {
		return err
	}
	if err := db.persist(usersFile, next); err != nil {
		return models.NewBackendError(fmt.Sprintf("write %s", usersFile), err)
	}
	db.users = next
	return nil
}

func (db *JSONFileDB) updateAssets(fn func([]models.Asset) ([]models.Asset, error)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	next, err := fn(slices.Clone(db.assets))
	if err != nil {
		return err
	}
	if err := db.persist(assetsFile, next); err != nil {
		return models.NewBackendError(fmt.Sprintf("write %s", assetsFile), err)
	}
	db.assets = next
	return nil
}

// readCreations runs fn under the read lock.
func (db *JSONFileDB) readCreations(fn func([]models.Creation)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.creations)
}

func (db *JSONFileDB) readUsers(fn func([]models.User)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.users)
}

func (db *JSONFileDB) readAssets(fn func([]models.Asset)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.assets)
}
