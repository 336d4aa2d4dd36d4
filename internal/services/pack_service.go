package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/codyseavey/gingerdex/internal/dex"
	"github.com/codyseavey/gingerdex/internal/metrics"
	"github.com/codyseavey/gingerdex/internal/models"
)

const (
	DefaultPackSize = 5
	MaxPackSize     = 20

	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

var ErrRateLimited = errors.New("too many packs opened, try again shortly")

// PackConfig configures pack opening.
type PackConfig struct {
	Size          int // cards per pack when the request does not say
	RatePerMinute int // sustained pack openings per minute; 0 disables limiting
	Burst         int
	Source        rand.Source // nil seeds from the clock
}

// PackService draws packs from the loaded catalog and records each opening.
type PackService struct {
	dex     *DexService
	db      *gorm.DB
	limiter *rate.Limiter
	size    int

	mu        sync.Mutex
	src       rand.Source
	drawer    *dex.Drawer
	drawnFrom *dex.Catalog
}

// NewPackService creates a pack service. db may be nil, in which case
// openings are not recorded.
func NewPackService(dexService *DexService, db *gorm.DB, cfg PackConfig) *PackService {
	size := cfg.Size
	if size < 1 || size > MaxPackSize {
		size = DefaultPackSize
	}

	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RatePerMinute))
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	src := cfg.Source
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	return &PackService{
		dex:     dexService,
		db:      db,
		limiter: rate.NewLimiter(limit, burst),
		size:    size,
		src:     src,
	}
}

// Size returns the default number of cards per pack.
func (p *PackService) Size() int {
	return p.size
}

// drawerFor returns the drawer for the current catalog, building it on
// first use.
func (p *PackService) drawerFor(c *dex.Catalog) (*dex.Drawer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawer != nil && p.drawnFrom == c {
		return p.drawer, nil
	}
	d, err := dex.NewDrawer(c, p.src)
	if err != nil {
		return nil, err
	}
	p.drawer, p.drawnFrom = d, c
	return d, nil
}

// Open draws a pack. A zero count uses the configured pack size.
func (p *PackService) Open(ctx context.Context, req models.OpenPackRequest) (*models.PackResult, error) {
	count := req.Count
	if count == 0 {
		count = p.size
	}
	if count < 1 || count > MaxPackSize {
		metrics.PackRequestsRejected.WithLabelValues("invalid_count").Inc()
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", dex.ErrInvalidCount, count, MaxPackSize)
	}

	catalog, err := p.dex.Catalog()
	if err != nil {
		return nil, err
	}

	trainer := strings.TrimSpace(req.Trainer)
	if trainer != "" {
		if _, err := catalog.Trainer(trainer); err != nil {
			metrics.PackRequestsRejected.WithLabelValues("unknown_trainer").Inc()
			return nil, err
		}
	}

	drawer, err := p.drawerFor(catalog)
	if err != nil {
		metrics.PackRequestsRejected.WithLabelValues("empty_pool").Inc()
		return nil, err
	}

	if !p.limiter.Allow() {
		metrics.PackRequestsRejected.WithLabelValues("rate_limited").Inc()
		return nil, ErrRateLimited
	}
	cards, err := drawer.Draw(count)
	if err != nil {
		return nil, err
	}

	opening := models.PackOpening{
		ID:        uuid.New().String(),
		Trainer:   trainer,
		CardKeys:  make([]string, 0, len(cards)),
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
	for i := range cards {
		opening.CardKeys = append(opening.CardKeys, cards[i].Key())
		rarity := cards[i].Rarity
		if rarity == "" {
			rarity = "unknown"
		}
		metrics.CardsDrawnTotal.WithLabelValues(rarity).Inc()
	}
	metrics.PacksOpenedTotal.Inc()

	if p.db != nil {
		if err := p.db.WithContext(ctx).Create(&opening).Error; err != nil {
			log.Printf("Warning: failed to record pack opening %s: %v", opening.ID, err)
		}
	}

	return &models.PackResult{
		ID:        opening.ID,
		Trainer:   opening.Trainer,
		Cards:     dex.Reveal(cards),
		CreatedAt: opening.CreatedAt,
	}, nil
}

// Recent returns the newest recorded openings, newest first. limit is
// clamped to [1, 100] and defaults to 10.
func (p *PackService) Recent(ctx context.Context, limit int) ([]models.PackOpening, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	openings := make([]models.PackOpening, 0)
	if p.db == nil {
		return openings, nil
	}
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&openings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent packs: %w", err)
	}
	return openings, nil
}
