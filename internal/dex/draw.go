package dex

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/mroth/weightedrand/v2"

	"github.com/codyseavey/gingerdex/internal/models"
)

var (
	ErrEmptyPullPool = errors.New("catalog has no drawable pull rates")
	ErrInvalidCount  = errors.New("draw count must be positive")
)

// weightBudget caps the integer weight given to the largest pull rate. It
// stays within float64 precision so scaled ratios are exact to ~1e-16.
const weightBudget = 1 << 52

// Drawer samples cards with probability proportional to their pull rate,
// with replacement. It is safe for concurrent use.
type Drawer struct {
	catalog *Catalog
	chooser *weightedrand.Chooser[int, int64]

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDrawer prepares the cumulative weight table for the catalog. src seeds
// the draws; pass a fixed source for reproducible results. It refuses
// catalogs whose total pull rate is not positive or that contain a card
// with a non-positive pull rate.
func NewDrawer(c *Catalog, src rand.Source) (*Drawer, error) {
	if len(c.cards) == 0 || !(c.totalPull > 0) || math.IsInf(c.totalPull, 0) {
		return nil, ErrEmptyPullPool
	}
	maxRate := 0.0
	for i := range c.cards {
		rate := c.cards[i].PullRate
		if !(rate > 0) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: card %q has pull rate %v", ErrEmptyPullPool, c.cards[i].Key(), rate)
		}
		maxRate = math.Max(maxRate, rate)
	}

	// Weights are relative to the largest rate so tiny and huge rates keep
	// their ratios. The sum must stay below MaxInt for the chooser.
	budget := float64(min(weightBudget, math.MaxInt/(len(c.cards)+1)))
	choices := make([]weightedrand.Choice[int, int64], 0, len(c.cards))
	for i := range c.cards {
		w := int64(math.Round(c.cards[i].PullRate / maxRate * budget))
		if w < 1 {
			w = 1
		}
		choices = append(choices, weightedrand.NewChoice(i, w))
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyPullPool, err)
	}
	return &Drawer{catalog: c, chooser: chooser, rng: rand.New(src)}, nil
}

// Draw returns count independently drawn cards.
func (d *Drawer) Draw(count int) ([]models.Card, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	out := make([]models.Card, 0, count)
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < count; i++ {
		out = append(out, d.catalog.cards[d.chooser.PickSource(d.rng)])
	}
	return out, nil
}

// Reveal turns drawn cards into tiles; a pulled card is always shown.
func Reveal(cards []models.Card) []models.CardTile {
	tiles := make([]models.CardTile, 0, len(cards))
	for i := range cards {
		tiles = append(tiles, tile(&cards[i], true, nil, false))
	}
	return tiles
}
