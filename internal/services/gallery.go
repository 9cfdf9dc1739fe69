package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=gallery.go -destination=gallery_mock.go -package=services

// Listing limits.
const (
	DefaultListLimit     = 20
	MaxListLimit         = 100
	DefaultTrendingLimit = 12
)

// CreationStore persists creations of every kind.
type CreationStore interface {
	Insert(ctx context.Context, c models.Creation) error                              // Persists a new creation
	List(ctx context.Context, q models.CreationQuery) ([]models.Creation, int, error) // Returns one page and the matching count
	View(ctx context.Context, kind models.Kind, id string) (*models.Creation, error)  // Returns the creation and counts a view
	Get(ctx context.Context, kind models.Kind, id string) (*models.Creation, error)   // Returns the creation without counting a view
	Delete(ctx context.Context, kind models.Kind, id string) error                    // Removes a creation
	IncrementLikes(ctx context.Context, kind models.Kind, id string) error            // Adds one like
	CountByKind(ctx context.Context, kind models.Kind) (int, error)                   // Counts creations of a kind
	SumLikes(ctx context.Context, kind models.Kind) (int64, error)                    // Sums likes of a kind
	All(ctx context.Context, kind models.Kind) ([]models.Creation, error)             // Returns every creation of a kind in insertion order
}

// OwnerStore reads users and maintains their counters.
type OwnerStore interface {
	GetByID(ctx context.Context, id models.UserID) (*models.User, error)                          // Returns a user by id
	AdjustCounter(ctx context.Context, id models.UserID, counter models.Counter, delta int) error // Adds delta to a counter, clamped at zero
	Count(ctx context.Context) (int, error)                                                       // Counts users
}

// AssetCounter counts uploaded assets.
type AssetCounter interface {
	Count(ctx context.Context, kind models.AssetKind) (int, error) // Counts assets of a kind
}

// GalleryService implements creation CRUD, likes, listings and statistics.
type GalleryService struct {
	creations   CreationStore
	owners      OwnerStore
	assets      AssetCounter
	kafkaWriter KafkaWriter
	validators  map[models.Kind]Validator
	now         func() time.Time
}

// GalleryOption configures a GalleryService.
type GalleryOption func(*GalleryService)

// WithValidator replaces the insert validator of one kind.
func WithValidator(kind models.Kind, v Validator) GalleryOption {
	return func(s *GalleryService) {
		s.validators[kind] = v
	}
}

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) GalleryOption {
	return func(s *GalleryService) {
		s.now = now
	}
}

// NewGalleryService creates a new GalleryService. kafkaWriter may be nil.
func NewGalleryService(
	creations CreationStore,
	owners OwnerStore,
	assets AssetCounter,
	kafkaWriter KafkaWriter,
	opts ...GalleryOption,
) *GalleryService {
	s := &GalleryService{
		creations:   creations,
		owners:      owners,
		assets:      assets,
		kafkaWriter: kafkaWriter,
		validators:  DefaultValidators(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InsertCreation validates and stores a new creation owned by owner, returning its id.
func (s *GalleryService) InsertCreation(ctx context.Context, kind models.Kind, fields models.CreationFields, owner models.UserID) (string, error) {
	if !kind.Valid() {
		return "", models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	if validate, ok := s.validators[kind]; ok {
		if err := validate(fields); err != nil {
			logger.Log.Infow("rejected creation", "kind", kind, "err", err)
			return "", err
		}
	}
	if owner.IsZero() {
		return "", fmt.Errorf("%w: creations need an owner", models.ErrUnauthorized)
	}

	user, err := s.owners.GetByID(ctx, owner)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown user %s", models.ErrUnauthorized, owner)
		}
		logger.Log.Errorw("failed to load owner", "owner", owner, "err", err)
		return "", models.NewBackendError("load owner", err)
	}

	c := models.Creation{
		ID:         uuid.NewString(),
		Kind:       kind,
		Owner:      owner,
		ArtistName: user.Username,
		CreatedAt:  s.now().UTC(),
	}
	fields.Apply(&c)

	if err := s.creations.Insert(ctx, c); err != nil {
		logger.Log.Errorw("failed to insert creation", "kind", kind, "owner", owner, "err", err)
		return "", models.NewBackendError("insert creation", err)
	}

	if err := s.owners.AdjustCounter(ctx, owner, models.CounterCreations, 1); err != nil {
		logger.Log.Errorw("failed to increment creation counter", "owner", owner, "err", err)
		return "", models.NewBackendError("increment creation counter", err)
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventCreationCreated, string(kind), c.ID, owner))
	return c.ID, nil
}

// ListCreations returns one page of creations and the number of creations matching the filters.
func (s *GalleryService) ListCreations(ctx context.Context, kind models.Kind, filters map[string]string, sortBy string, limit, offset int) ([]models.Creation, int, error) {
	if !kind.Valid() {
		return nil, 0, models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	if offset < 0 {
		return nil, 0, models.NewValidationError(string(kind), "offset", "must not be negative")
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	field, desc, err := models.ParseSort(sortBy)
	if err != nil {
		return nil, 0, err
	}

	q := models.CreationQuery{
		Kind:    kind,
		Filters: map[string]string{},
		SortBy:  field,
		Desc:    desc,
		Limit:   limit,
		Offset:  offset,
	}
	for k, v := range filters {
		if v = strings.TrimSpace(v); v != "" {
			q.Filters[k] = v
		}
	}

	items, total, err := s.creations.List(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to list creations", "kind", kind, "err", err)
		return nil, 0, models.NewBackendError("list creations", err)
	}
	if items == nil {
		items = []models.Creation{}
	}
	return items, total, nil
}

// GetCreation returns a creation and counts the read as a view.
// The returned snapshot does not include this read's view.
func (s *GalleryService) GetCreation(ctx context.Context, kind models.Kind, id string) (*models.Creation, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	c, err := s.creations.View(ctx, kind, id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to view creation", "kind", kind, "id", id, "err", err)
		}
		return nil, models.NewBackendError("view creation", err)
	}
	return c, nil
}

// DeleteCreation removes a creation owned by requester and decrements the owner's creation counter.
func (s *GalleryService) DeleteCreation(ctx context.Context, kind models.Kind, id string, requester models.UserID) error {
	if !kind.Valid() {
		return models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	c, err := s.creations.Get(ctx, kind, id)
	if err != nil {
		return models.NewBackendError("get creation", err)
	}
	if !requester.Equal(c.Owner) {
		logger.Log.Warnw("non-owner delete rejected", "id", id, "owner", c.Owner, "requester", requester)
		return &models.AuthorizationError{ResourceID: id, Requester: requester}
	}

	if err := s.creations.Delete(ctx, kind, id); err != nil {
		logger.Log.Errorw("failed to delete creation", "kind", kind, "id", id, "err", err)
		return models.NewBackendError("delete creation", err)
	}

	if err := s.owners.AdjustCounter(ctx, c.Owner, models.CounterCreations, -1); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to decrement creation counter", "owner", c.Owner, "err", err)
			return models.NewBackendError("decrement creation counter", err)
		}
		logger.Log.Warnw("owner of deleted creation not found", "owner", c.Owner, "id", id)
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventCreationDeleted, string(kind), id, requester))
	return nil
}

// LikeCreation adds one like. Repeated likes by the same user all count.
func (s *GalleryService) LikeCreation(ctx context.Context, id, creationType string, actor models.UserID) error {
	kind, err := models.ParseKind(creationType)
	if err != nil {
		return err
	}
	if err := s.creations.IncrementLikes(ctx, kind, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to like creation", "kind", kind, "id", id, "err", err)
		}
		return models.NewBackendError("like creation", err)
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventCreationLiked, string(kind), id, actor))
	return nil
}

// AllCreations returns the creations of every kind, newest first.
func (s *GalleryService) AllCreations(ctx context.Context) ([]models.Creation, error) {
	all := []models.Creation{}
	for _, kind := range models.Kinds {
		items, err := s.creations.All(ctx, kind)
		if err != nil {
			logger.Log.Errorw("failed to load creations", "kind", kind, "err", err)
			return nil, models.NewBackendError("load creations", err)
		}
		all = append(all, items...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[j].CreatedAt.Before(all[i].CreatedAt)
	})
	return all, nil
}

// Trending returns the most liked creations, limit/3 of each kind.
func (s *GalleryService) Trending(ctx context.Context, limit int) ([]models.Creation, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	perKind := limit / len(models.Kinds)
	if perKind < 1 {
		perKind = 1
	}
	if perKind > MaxListLimit {
		perKind = MaxListLimit
	}

	trending := []models.Creation{}
	for _, kind := range models.Kinds {
		items, _, err := s.creations.List(ctx, models.CreationQuery{
			Kind:   kind,
			SortBy: "likes",
			Desc:   true,
			Limit:  perKind,
		})
		if err != nil {
			logger.Log.Errorw("failed to load trending creations", "kind", kind, "err", err)
			return nil, models.NewBackendError("trending creations", err)
		}
		trending = append(trending, items...)
	}
	return trending, nil
}

// UserProfile returns a user with the creations they own, newest first per kind.
func (s *GalleryService) UserProfile(ctx context.Context, id models.UserID) (*models.Profile, error) {
	user, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewBackendError("get user", err)
	}
	user.PasswordHash = ""

	profile := &models.Profile{User: *user, Creations: map[models.Kind][]models.Creation{}}
	for _, kind := range models.Kinds {
		items, _, err := s.creations.List(ctx, models.CreationQuery{
			Kind:    kind,
			Filters: map[string]string{"owner": id.String()},
			SortBy:  "createdAt",
			Desc:    true,
			Limit:   MaxListLimit,
		})
		if err != nil {
			logger.Log.Errorw("failed to load user creations", "user_id", id, "kind", kind, "err", err)
			return nil, models.NewBackendError("user creations", err)
		}
		if items == nil {
			items = []models.Creation{}
		}
		profile.Creations[kind] = items
	}
	return profile, nil
}
