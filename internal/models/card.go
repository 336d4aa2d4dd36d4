package models

import (
	"strings"
)

// OriginalRegion is the implicit bucket for cards with no region.
const OriginalRegion = "Original"

// TypeSeparator joins the two halves of a dual-type card's type string.
const TypeSeparator = " / "

type Move struct {
	Name   string `json:"name" yaml:"name"`
	Damage int    `json:"damage" yaml:"damage"`
}

// CatchImage is one recorded catch of a card by a trainer.
type CatchImage struct {
	File        string `json:"file" yaml:"file"`
	IsVideo     bool   `json:"isVideo" yaml:"isVideo"`
	DisplayName string `json:"displayName" yaml:"displayName"` // trainer display name
	CardName    string `json:"cardName" yaml:"cardName"`
	Timestamp   int64  `json:"timestamp" yaml:"timestamp"` // unix seconds
}

type Card struct {
	Name          string       `json:"name" yaml:"name"`
	DisplayName   string       `json:"displayName" yaml:"displayName"`
	Region        string       `json:"region,omitempty" yaml:"region,omitempty"`
	CardNumber    int          `json:"cardNumber,omitempty" yaml:"cardNumber,omitempty"`
	Type          string       `json:"type" yaml:"type"`
	Rarity        string       `json:"rarity" yaml:"rarity"`
	RarityTier    int          `json:"rarityTier" yaml:"rarityTier"`
	RarityDisplay string       `json:"rarityDisplay" yaml:"rarityDisplay"`
	RarityColor   string       `json:"rarityColor" yaml:"rarityColor"`
	HP            int          `json:"hp,omitempty" yaml:"hp,omitempty"`
	Weakness      string       `json:"weakness,omitempty" yaml:"weakness,omitempty"`
	Resistance    string       `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	Moves         []Move       `json:"moves" yaml:"moves"`
	PullRate      float64      `json:"pullRate" yaml:"pullRate"`
	CatchCount    int          `json:"catchCount" yaml:"catchCount"`
	CaughtBy      []string     `json:"caughtBy" yaml:"caughtBy"`
	CatchImages   []CatchImage `json:"catchImages,omitempty" yaml:"catchImages,omitempty"`
	ImageFile     string       `json:"imageFile,omitempty" yaml:"imageFile,omitempty"`
	VideoFile     string       `json:"videoFile,omitempty" yaml:"videoFile,omitempty"`
}

// Key returns the card's identity key: "region:displayName" for cards in a
// named region, otherwise the card name (falling back to the display name).
func (c *Card) Key() string {
	if c.Region != "" && c.Region != OriginalRegion {
		return c.Region + ":" + c.DisplayName
	}
	if c.Name != "" {
		return c.Name
	}
	return c.DisplayName
}

// RegionOrOriginal returns the region bucket the card belongs to.
func (c *Card) RegionOrOriginal() string {
	if c.Region == "" {
		return OriginalRegion
	}
	return c.Region
}

// IsDualType reports whether the type string carries two type tags.
func (c *Card) IsDualType() bool {
	return strings.Contains(c.Type, TypeSeparator)
}

// TypeTags splits the type string into its individual tags.
func (c *Card) TypeTags() []string {
	if c.Type == "" {
		return nil
	}
	parts := strings.Split(c.Type, TypeSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// TotalDamage sums the damage of every move, 0 when the card has none.
func (c *Card) TotalDamage() int {
	total := 0
	for _, m := range c.Moves {
		total += m.Damage
	}
	return total
}

// MaxDamage returns the highest single-move damage.
func (c *Card) MaxDamage() int {
	best := 0
	for _, m := range c.Moves {
		if m.Damage > best {
			best = m.Damage
		}
	}
	return best
}

// LatestCatch returns the most recent catch record by timestamp. Storage order
// is not guaranteed to be chronological; on equal timestamps the later entry wins.
func (c *Card) LatestCatch() *CatchImage {
	var latest *CatchImage
	for i := range c.CatchImages {
		ci := &c.CatchImages[i]
		if latest == nil || ci.Timestamp >= latest.Timestamp {
			latest = ci
		}
	}
	return latest
}
