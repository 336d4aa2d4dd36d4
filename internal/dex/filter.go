package dex

import (
	"sort"
	"strings"

	"github.com/codyseavey/gingerdex/internal/models"
)

// RegionCards is one region bucket of a grouped result.
type RegionCards struct {
	Region string
	Cards  []models.Card
}

// Filter applies the gallery predicates. The query is a case-insensitive
// substring match over display name, name, type, region and caught-by names;
// region, type and rarity must match exactly. A card without a region is in
// Original. Empty fields are ignored.
func Filter(cards []models.Card, f models.Filters) []models.Card {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Card, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if f.Region != "" && c.RegionOrOriginal() != f.Region {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		if f.Rarity != "" && c.Rarity != f.Rarity {
			continue
		}
		out = append(out, *c)
	}
	return out
}

func matchesQuery(c *models.Card, query string) bool {
	if strings.Contains(strings.ToLower(c.DisplayName), query) ||
		strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Type), query) ||
		strings.Contains(strings.ToLower(c.Region), query) {
		return true
	}
	for _, t := range c.CaughtBy {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// GroupByRegion partitions cards into the region order and sorts each bucket
// by card number, keeping catalog order for ties. Empty buckets are dropped.
func GroupByRegion(cards []models.Card, regionOrder []string) []RegionCards {
	groups := partition(cards, regionOrder)
	for i := range groups {
		g := groups[i].Cards
		sort.SliceStable(g, func(a, b int) bool {
			return g[a].CardNumber < g[b].CardNumber
		})
	}
	return groups
}

// GroupForTrainer is GroupByRegion with owned cards ahead of unowned ones in
// each bucket, then by card number.
func GroupForTrainer(cards []models.Card, regionOrder []string, owned OwnedSet) []RegionCards {
	groups := partition(cards, regionOrder)
	for i := range groups {
		g := groups[i].Cards
		rank := make(map[string]int, len(g))
		for j := range g {
			if !Owns(&g[j], owned) {
				rank[g[j].Key()] = 1
			}
		}
		sort.SliceStable(g, func(a, b int) bool {
			ra, rb := rank[g[a].Key()], rank[g[b].Key()]
			if ra != rb {
				return ra < rb
			}
			return g[a].CardNumber < g[b].CardNumber
		})
	}
	return groups
}

// partition buckets cards by region in the given order. Regions missing from
// the order fall into the original bucket, which is appended when absent.
func partition(cards []models.Card, regionOrder []string) []RegionCards {
	order := regionOrder
	listed := make(map[string]bool, len(order)+1)
	for _, r := range order {
		listed[r] = true
	}
	if !listed[models.OriginalRegion] {
		order = append(append([]string(nil), order...), models.OriginalRegion)
		listed[models.OriginalRegion] = true
	}

	buckets := make(map[string][]models.Card, len(order))
	for i := range cards {
		r := cards[i].RegionOrOriginal()
		if !listed[r] {
			r = models.OriginalRegion
		}
		buckets[r] = append(buckets[r], cards[i])
	}

	groups := make([]RegionCards, 0, len(buckets))
	emitted := make(map[string]bool, len(order))
	for _, r := range order {
		if emitted[r] || len(buckets[r]) == 0 {
			continue
		}
		emitted[r] = true
		groups = append(groups, RegionCards{Region: r, Cards: buckets[r]})
	}
	return groups
}
