// Package dex is the collection-state engine: it indexes an immutable card
// catalog and leaderboard snapshot and answers gallery, trainer, achievement,
// pack-draw and comparison queries against it. Every query is a synchronous
// function of the snapshot and the caller-supplied view state.
package dex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codyseavey/gingerdex/internal/models"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrDuplicateKey    = errors.New("duplicate card identity key")
)

// Catalog is the read-only index over a snapshot. It is safe for concurrent
// readers because nothing mutates it after NewCatalog returns.
type Catalog struct {
	snapshot *models.Snapshot
	cards    []models.Card

	byKey       map[string]int
	regionOrder []string
	inOrder     map[string]bool
	byRegion    map[string][]int
	typeTags    []string
	rarities    []string
	totalPull   float64

	trainers map[string]int
	badges   []badge
}

// NewCatalog indexes the snapshot. The snapshot must not be modified afterwards.
func NewCatalog(s *models.Snapshot) (*Catalog, error) {
	c := &Catalog{
		snapshot: s,
		cards:    s.Cards,
		byKey:    make(map[string]int, len(s.Cards)),
		inOrder:  make(map[string]bool),
		byRegion: make(map[string][]int),
		trainers: make(map[string]int, len(s.Leaderboard)),
	}

	for i := range c.cards {
		key := c.cards[i].Key()
		if prev, ok := c.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %q (cards %d and %d)", ErrDuplicateKey, key, prev, i)
		}
		c.byKey[key] = i
		c.totalPull += c.cards[i].PullRate
	}

	c.regionOrder = buildRegionOrder(s)
	for _, r := range c.regionOrder {
		c.inOrder[r] = true
	}
	for i := range c.cards {
		r := c.bucketFor(&c.cards[i])
		c.byRegion[r] = append(c.byRegion[r], i)
	}

	seenType := make(map[string]bool)
	seenRarity := make(map[string]bool)
	for i := range c.cards {
		for _, tag := range c.cards[i].TypeTags() {
			if !seenType[tag] {
				seenType[tag] = true
				c.typeTags = append(c.typeTags, tag)
			}
		}
		if r := c.cards[i].Rarity; r != "" && !seenRarity[r] {
			seenRarity[r] = true
			c.rarities = append(c.rarities, r)
		}
	}

	for i := range s.Leaderboard {
		c.trainers[s.Leaderboard[i].Username] = i
	}

	c.badges = buildBadges(c)
	return c, nil
}

// buildRegionOrder resolves the region order: regionOrder, else regions, else
// just the original region. The original bucket is appended when the list
// omits it, since unlisted regions fall into it.
func buildRegionOrder(s *models.Snapshot) []string {
	src := s.RegionOrder
	if len(src) == 0 {
		src = s.Regions
	}
	order := make([]string, 0, len(src)+1)
	seen := make(map[string]bool, len(src))
	for _, r := range src {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		order = append(order, r)
	}
	if !seen[models.OriginalRegion] {
		order = append(order, models.OriginalRegion)
	}
	return order
}

// bucketFor maps a card to its display bucket; unlisted regions land in the
// original bucket.
func (c *Catalog) bucketFor(card *models.Card) string {
	r := card.RegionOrOriginal()
	if c.inOrder[r] {
		return r
	}
	return models.OriginalRegion
}

// Cards returns the catalog in snapshot order. Callers must not modify it.
func (c *Catalog) Cards() []models.Card {
	return c.cards
}

func (c *Catalog) TotalCards() int {
	return len(c.cards)
}

// Card looks up a card by identity key.
func (c *Catalog) Card(key string) (*models.Card, error) {
	i, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCardNotFound, key)
	}
	return &c.cards[i], nil
}

// RegionOrder returns the resolved region order, always ending with the
// original bucket when the snapshot did not list it.
func (c *Catalog) RegionOrder() []string {
	return c.regionOrder
}

// RegionCards returns the cards in a region bucket, in catalog order.
func (c *Catalog) RegionCards(region string) []models.Card {
	idx := c.byRegion[region]
	out := make([]models.Card, len(idx))
	for i, j := range idx {
		out[i] = c.cards[j]
	}
	return out
}

// KnownRegions returns the ordered regions that hold at least one card.
func (c *Catalog) KnownRegions() []string {
	out := make([]string, 0, len(c.regionOrder))
	for _, r := range c.regionOrder {
		if len(c.byRegion[r]) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// TypeTags returns the distinct type tags, dual types split, in first-seen order.
func (c *Catalog) TypeTags() []string {
	return c.typeTags
}

// Rarities returns the distinct rarity keys in first-seen order.
func (c *Catalog) Rarities() []string {
	return c.rarities
}

// TotalPullRate is the catalog-wide pull-rate sum used for every percentage.
func (c *Catalog) TotalPullRate() float64 {
	return c.totalPull
}

// RegionInfo returns the header metadata for a region bucket.
func (c *Catalog) RegionInfo(region string, bucketSize int) (emoji, label string, count int) {
	info := c.snapshot.RegionInfo[region]
	label = info.Label
	if label == "" {
		label = strings.ToUpper(region)
	}
	count = info.CardCount
	if count == 0 {
		count = bucketSize
	}
	return info.Emoji, label, count
}

// Trainer looks up a trainer by username.
func (c *Catalog) Trainer(username string) (*models.Trainer, error) {
	i, ok := c.trainers[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTrainerNotFound, username)
	}
	return &c.snapshot.Leaderboard[i], nil
}

// Trainers returns the leaderboard in snapshot order.
func (c *Catalog) Trainers() []models.Trainer {
	return c.snapshot.Leaderboard
}

// UsernameFor resolves a trainer display name to a username, matching
// case-insensitively and falling back to the lowercased display name.
func (c *Catalog) UsernameFor(displayName string) string {
	for i := range c.snapshot.Leaderboard {
		t := &c.snapshot.Leaderboard[i]
		if strings.EqualFold(t.DisplayName, displayName) {
			return t.Username
		}
	}
	return strings.ToLower(displayName)
}

// Stats returns the catalog header summary.
func (c *Catalog) Stats() models.CatalogStats {
	discovered := 0
	for i := range c.cards {
		if c.cards[i].CatchCount > 0 {
			discovered++
		}
	}
	regions := len(c.snapshot.Regions)
	if regions == 0 {
		regions = 1
	}
	return models.CatalogStats{
		TotalCards:    c.snapshot.TotalCards,
		Discovered:    discovered,
		TotalTrainers: c.snapshot.TotalTrainers,
		Regions:       regions,
	}
}

// FilterOptions lists the selectable region, type and rarity values.
func (c *Catalog) FilterOptions() models.FilterOptions {
	opts := models.FilterOptions{}
	for _, r := range c.snapshot.Regions {
		opts.Regions = append(opts.Regions, models.FilterOption{Value: r, Label: r})
	}

	types := c.snapshot.Types
	if len(types) == 0 {
		types = c.typeTags
	}
	for _, t := range types {
		opts.Types = append(opts.Types, models.FilterOption{Value: t, Label: Capitalize(t)})
	}

	rarities := c.snapshot.Rarities
	if len(rarities) == 0 {
		rarities = c.rarities
	}
	for _, r := range rarities {
		label := c.snapshot.RarityDisplay[r]
		if label == "" {
			label = Capitalize(r)
		}
		opts.Rarities = append(opts.Rarities, models.FilterOption{Value: r, Label: label})
	}
	return opts
}

// Capitalize upper-cases the first letter of each half of a type string.
func Capitalize(s string) string {
	parts := strings.Split(s, models.TypeSeparator)
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(parts, models.TypeSeparator)
}
