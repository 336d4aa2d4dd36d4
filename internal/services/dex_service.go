package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codyseavey/gingerdex/internal/dex"
	"github.com/codyseavey/gingerdex/internal/metrics"
	"github.com/codyseavey/gingerdex/internal/models"
)

// ErrSnapshotNotLoaded is returned by every query until a snapshot has been
// loaded successfully. It wraps the load failure when there was one.
var ErrSnapshotNotLoaded = errors.New("snapshot not loaded")

const defaultViewCacheSize = 256

type trainerViewKey struct {
	username string
	filters  models.Filters
}

// DexService serves engine queries over the loaded catalog and caches the
// grouped views, which are the expensive ones to build.
type DexService struct {
	mu      sync.RWMutex
	catalog *dex.Catalog
	loadErr error

	galleries    *lru.Cache[models.Filters, models.GalleryView]
	trainerViews *lru.Cache[trainerViewKey, models.TrainerView]
	achievements *lru.Cache[string, models.AchievementList]
}

// NewDexService creates an uninitialized service with view caches holding
// up to cacheSize entries each.
func NewDexService(cacheSize int) (*DexService, error) {
	if cacheSize <= 0 {
		cacheSize = defaultViewCacheSize
	}
	galleries, err := lru.New[models.Filters, models.GalleryView](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery cache: %w", err)
	}
	trainerViews, err := lru.New[trainerViewKey, models.TrainerView](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer view cache: %w", err)
	}
	achievements, err := lru.New[string, models.AchievementList](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement cache: %w", err)
	}
	return &DexService{
		loadErr:      ErrSnapshotNotLoaded,
		galleries:    galleries,
		trainerViews: trainerViews,
		achievements: achievements,
	}, nil
}

// Load reads the snapshot at path and indexes it. On failure the service
// stays uninitialized and every query returns the load error.
func (s *DexService) Load(path string) error {
	snap, err := LoadSnapshot(path)
	if err != nil {
		return s.fail(err)
	}
	return s.SetSnapshot(snap)
}

// SetSnapshot indexes an already-decoded snapshot.
func (s *DexService) SetSnapshot(snap *models.Snapshot) error {
	catalog, err := dex.NewCatalog(snap)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.loadErr = nil
	s.galleries.Purge()
	s.trainerViews.Purge()
	s.achievements.Purge()
	s.mu.Unlock()

	metrics.SnapshotCards.Set(float64(catalog.TotalCards()))
	metrics.SnapshotTrainers.Set(float64(len(catalog.Trainers())))
	log.Printf("Catalog indexed: %d cards in %d regions, %d trainers",
		catalog.TotalCards(), len(catalog.RegionOrder()), len(catalog.Trainers()))
	return nil
}

func (s *DexService) fail(err error) error {
	metrics.SnapshotLoadErrors.Inc()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = nil
	s.loadErr = fmt.Errorf("%w: %w", ErrSnapshotNotLoaded, err)
	return s.loadErr
}

// Catalog returns the loaded catalog, or the load error.
func (s *DexService) Catalog() (*dex.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, s.loadErr
	}
	return s.catalog, nil
}

// Ready reports whether a snapshot is loaded.
func (s *DexService) Ready() bool {
	_, err := s.Catalog()
	return err == nil
}

func (s *DexService) Stats() (models.CatalogStats, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.CatalogStats{}, err
	}
	return c.Stats(), nil
}

func (s *DexService) FilterOptions() (models.FilterOptions, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.FilterOptions{}, err
	}
	return c.FilterOptions(), nil
}

func (s *DexService) Leaderboard() (models.Leaderboard, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.Leaderboard{}, err
	}
	return c.Leaderboard(), nil
}

func (s *DexService) CardDetail(key string) (models.CardDetail, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.CardDetail{}, err
	}
	return c.CardDetail(key)
}

func (s *DexService) Compare(keyA, keyB string) (models.ComparisonResult, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.ComparisonResult{}, err
	}
	res, err := c.Compare(keyA, keyB)
	if err == nil {
		metrics.ComparisonsTotal.Inc()
	}
	return res, err
}

// Gallery returns the region-grouped gallery for the given filters.
func (s *DexService) Gallery(f models.Filters) (models.GalleryView, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.GalleryView{}, err
	}
	f = normalizeFilters(f)
	return cached(s.galleries, "gallery", f, func() (models.GalleryView, error) {
		return c.Gallery(f), nil
	})
}

// TrainerView returns one trainer's grouped collection.
func (s *DexService) TrainerView(username string, f models.Filters) (models.TrainerView, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.TrainerView{}, err
	}
	f = normalizeFilters(f)
	key := trainerViewKey{username: username, filters: f}
	return cached(s.trainerViews, "trainer", key, func() (models.TrainerView, error) {
		return c.TrainerView(username, f)
	})
}

// Achievements evaluates the badge catalog for one trainer.
func (s *DexService) Achievements(username string) (models.AchievementList, error) {
	c, err := s.Catalog()
	if err != nil {
		return models.AchievementList{}, err
	}
	return cached(s.achievements, "achievements", username, func() (models.AchievementList, error) {
		return c.Achievements(username)
	})
}

// cached returns the cached value for key or builds and stores it. Errors
// are not cached.
func cached[K comparable, V any](cache *lru.Cache[K, V], view string, key K, build func() (V, error)) (V, error) {
	if v, ok := cache.Get(key); ok {
		metrics.ViewCacheHits.WithLabelValues(view).Inc()
		return v, nil
	}
	metrics.ViewCacheMisses.WithLabelValues(view).Inc()

	v, err := build()
	if err != nil {
		return v, err
	}
	cache.Add(key, v)
	return v, nil
}

// normalizeFilters folds equivalent queries onto one cache key.
func normalizeFilters(f models.Filters) models.Filters {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	return f
}
