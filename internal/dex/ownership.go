package dex

import (
	"strings"

	"github.com/codyseavey/gingerdex/internal/models"
)

// OwnedSet is a trainer's owned-card strings, lowercased.
type OwnedSet map[string]struct{}

// NewOwnedSet lowercases the trainer's free-text card entries.
func NewOwnedSet(cards []string) OwnedSet {
	set := make(OwnedSet, len(cards))
	for _, c := range cards {
		set[strings.ToLower(c)] = struct{}{}
	}
	return set
}

// nameForms returns the three accepted spellings of a card: lowercased display
// name, lowercased name, and lowercased display name without spaces.
func nameForms(card *models.Card) [3]string {
	dn := strings.ToLower(card.DisplayName)
	return [3]string{dn, strings.ToLower(card.Name), strings.ReplaceAll(dn, " ", "")}
}

// Owns reports whether any accepted spelling of the card is in the owned set.
func Owns(card *models.Card, owned OwnedSet) bool {
	for _, form := range nameForms(card) {
		if form == "" {
			continue
		}
		if _, ok := owned[form]; ok {
			return true
		}
	}
	return false
}

// CatchIndex maps normalized card names to a trainer's catch media.
type CatchIndex map[string]*models.CatchImage

// NewCatchIndex indexes each catch under its card name lowercased with
// underscores read as spaces, and under the same form without spaces. When a
// trainer has several catches of a card the most recent one wins.
func NewCatchIndex(catches []models.CatchImage) CatchIndex {
	idx := make(CatchIndex, len(catches)*2)
	for i := range catches {
		ci := &catches[i]
		key := strings.ReplaceAll(strings.ToLower(ci.CardName), "_", " ")
		for _, k := range []string{key, strings.ReplaceAll(key, " ", "")} {
			if prev, ok := idx[k]; !ok || ci.Timestamp >= prev.Timestamp {
				idx[k] = ci
			}
		}
	}
	return idx
}

// Lookup resolves a card's catch media through the same three spellings Owns accepts.
func (idx CatchIndex) Lookup(card *models.Card) *models.CatchImage {
	for _, form := range nameForms(card) {
		if form == "" {
			continue
		}
		if ci, ok := idx[form]; ok {
			return ci
		}
	}
	return nil
}

// OwnedCount returns how many catalog cards the trainer owns.
func (c *Catalog) OwnedCount(t *models.Trainer) int {
	owned := NewOwnedSet(t.Cards)
	n := 0
	for i := range c.cards {
		if Owns(&c.cards[i], owned) {
			n++
		}
	}
	return n
}

// Unresolved returns the trainer's card entries that match no catalog card
// under any accepted spelling, in the trainer's order.
func (c *Catalog) Unresolved(t *models.Trainer) []string {
	known := make(map[string]bool, len(c.cards)*3)
	for i := range c.cards {
		for _, form := range nameForms(&c.cards[i]) {
			if form != "" {
				known[form] = true
			}
		}
	}
	var out []string
	for _, name := range t.Cards {
		if !known[strings.ToLower(name)] {
			out = append(out, name)
		}
	}
	return out
}
