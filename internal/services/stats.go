package services

import (
	"context"
	"math"
	"sort"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

// TopColors is the length of the color popularity ranking.
const TopColors = 10

// ComputeStats aggregates gallery-wide totals. Nothing is cached.
func (s *GalleryService) ComputeStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{TotalsByKind: make(map[models.Kind]int, len(models.Kinds))}

	for _, kind := range models.Kinds {
		n, err := s.creations.CountByKind(ctx, kind)
		if err != nil {
			logger.Log.Errorw("failed to count creations", "kind", kind, "err", err)
			return nil, models.NewBackendError("count creations", err)
		}
		stats.TotalsByKind[kind] = n

		likes, err := s.creations.SumLikes(ctx, kind)
		if err != nil {
			logger.Log.Errorw("failed to sum likes", "kind", kind, "err", err)
			return nil, models.NewBackendError("sum likes", err)
		}
		stats.TotalLikes += likes
	}

	users, err := s.owners.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, models.NewBackendError("count users", err)
	}
	stats.TotalUsers = users

	for _, kind := range models.AssetKinds {
		n, err := s.assets.Count(ctx, kind)
		if err != nil {
			logger.Log.Errorw("failed to count assets", "kind", kind, "err", err)
			return nil, models.NewBackendError("count assets", err)
		}
		stats.TotalUploads += n
	}

	return stats, nil
}

// GalleryStats summarizes every creation of one kind.
func (s *GalleryService) GalleryStats(ctx context.Context, kind models.Kind) (*models.GalleryStats, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError(string(kind), "kind", "unknown creation kind")
	}
	items, err := s.creations.All(ctx, kind)
	if err != nil {
		logger.Log.Errorw("failed to load creations", "kind", kind, "err", err)
		return nil, models.NewBackendError("load creations", err)
	}

	seen := map[string]struct{}{}
	artists := []string{}
	var totalTime float64
	for _, c := range items {
		if _, ok := seen[c.ArtistName]; !ok && c.ArtistName != "" {
			seen[c.ArtistName] = struct{}{}
			artists = append(artists, c.ArtistName)
		}
		totalTime += c.CreationTime()
	}
	sort.Strings(artists)

	var avg float64
	if len(items) > 0 {
		avg = math.Round(totalTime/float64(len(items))*100) / 100
	}

	return &models.GalleryStats{
		Kind:                kind,
		TotalCreations:      len(items),
		Artists:             artists,
		PopularColors:       ComputeColorPopularity(items),
		AverageCreationTime: avg,
	}, nil
}

// ComputeColorPopularity ranks colors by how often they appear in colorsUsed.
// Ties keep first-seen order. At most TopColors entries are returned.
func ComputeColorPopularity(records []models.Creation) []models.ColorCount {
	index := map[string]int{}
	counts := []models.ColorCount{}
	for _, r := range records {
		for _, color := range r.ColorsUsed {
			if i, ok := index[color]; ok {
				counts[i].Count++
				continue
			}
			index[color] = len(counts)
			counts = append(counts, models.ColorCount{Color: color, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > TopColors {
		counts = counts[:TopColors]
	}
	return counts
}
