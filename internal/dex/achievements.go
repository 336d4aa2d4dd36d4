package dex

import (
	"fmt"
	"strings"

	"github.com/codyseavey/gingerdex/internal/models"
)

// Badge thresholds.
const (
	regionExplorerMin = 10
	raritySpectrumMin = 4
	typeMasteryMin    = 5
	dualTypeMin       = 5
	heavyweightHP     = 300
	heavyHitterDamage = 250
)

// highRarities is the rarity set for the "Treasure Hunter" badge.
var highRarities = []string{"epic", "legendary", "mythic"}

// progress is the derived view of one trainer's owned cards that every badge
// predicate reads from.
type progress struct {
	unique int
	total  int

	regionOwned map[string]int
	regionTotal map[string]int
	regionsHit  int
	regions     int

	rarities   map[string]bool
	typeTags   []string // every catalog type tag, lowercased
	ownedTypes []string // lowercased type strings of owned cards
	dualOwned  int
	maxHP      int
	maxDamage  int
}

func (p *progress) typeCount(sub string) int {
	n := 0
	for _, t := range p.ownedTypes {
		if strings.Contains(t, sub) {
			n++
		}
	}
	return n
}

type badge struct {
	id          string
	icon        string
	name        string
	description string
	earned      func(p *progress) bool
}

func milestone(id, icon, name string, n int) badge {
	return badge{
		id:          id,
		icon:        icon,
		name:        name,
		description: fmt.Sprintf("Catch %d unique GingerMon", n),
		earned:      func(p *progress) bool { return p.unique >= n },
	}
}

func rarityBadge(id, icon, name, rarity string) badge {
	return badge{
		id:          id,
		icon:        icon,
		name:        name,
		description: fmt.Sprintf("Catch a %s GingerMon", Capitalize(rarity)),
		earned:      func(p *progress) bool { return p.rarities[rarity] },
	}
}

func typeBadge(typ, icon, name string) badge {
	return badge{
		id:          typ + "_master",
		icon:        icon,
		name:        name,
		description: fmt.Sprintf("Catch %d %s-type GingerMon", typeMasteryMin, Capitalize(typ)),
		earned:      func(p *progress) bool { return p.typeCount(typ) >= typeMasteryMin },
	}
}

// buildBadges declares the badge catalog. Per-region badges are generated
// from the catalog's populated regions; everything else is fixed.
func buildBadges(c *Catalog) []badge {
	badges := []badge{
		milestone("first", "🎉", "First Catch", 1),
		milestone("collector", "📦", "Collector", 10),
		milestone("enthusiast", "⭐", "Enthusiast", 25),
		milestone("expert", "🏅", "Expert", 50),
		milestone("master", "🏆", "Master Trainer", 100),
		milestone("elite", "💎", "Elite Trainer", 150),
		{
			id:          "complete",
			icon:        "👑",
			name:        "Gotta Catch 'Em All",
			description: "Catch every GingerMon in the dex",
			earned:      func(p *progress) bool { return p.total > 0 && p.unique >= p.total },
		},
		{
			id:          "halfway",
			icon:        "🌗",
			name:        "Halfway There",
			description: "Catch half of all GingerMon",
			earned: func(p *progress) bool {
				return p.total > 0 && p.unique >= (p.total+1)/2
			},
		},
	}

	for _, region := range c.KnownRegions() {
		region := region // per-iteration copy (pre-Go 1.22 loop semantics)
		emoji, label, _ := c.RegionInfo(region, 0)
		if emoji == "" {
			emoji = "🗺️"
		}
		slug := regionSlug(region)
		badges = append(badges,
			badge{
				id:          "region_complete_" + slug,
				icon:        emoji,
				name:        label + " Champion",
				description: fmt.Sprintf("Catch every GingerMon from %s", region),
				earned: func(p *progress) bool {
					return p.regionTotal[region] > 0 && p.regionOwned[region] >= p.regionTotal[region]
				},
			},
			badge{
				id:          "region_explorer_" + slug,
				icon:        "🧭",
				name:        label + " Explorer",
				description: fmt.Sprintf("Catch %d GingerMon from %s", regionExplorerMin, region),
				earned:      func(p *progress) bool { return p.regionOwned[region] >= regionExplorerMin },
			},
		)
	}

	badges = append(badges,
		badge{
			id:          "world_traveler",
			icon:        "🌍",
			name:        "World Traveler",
			description: "Catch a GingerMon in every region",
			earned:      func(p *progress) bool { return p.regions > 0 && p.regionsHit >= p.regions },
		},
		badge{
			id:          "treasure_hunter",
			icon:        "💰",
			name:        "Treasure Hunter",
			description: "Catch an Epic, Legendary or Mythic GingerMon",
			earned: func(p *progress) bool {
				for _, r := range highRarities {
					if p.rarities[r] {
						return true
					}
				}
				return false
			},
		},
		rarityBadge("rare_find", "🔷", "Rare Find", "rare"),
		rarityBadge("epic_pull", "🟣", "Epic Pull", "epic"),
		rarityBadge("living_legend", "🌟", "Living Legend", "legendary"),
		rarityBadge("myth_buster", "🔮", "Myth Buster", "mythic"),
		badge{
			id:          "rarity_spectrum",
			icon:        "🌈",
			name:        "Full Spectrum",
			description: fmt.Sprintf("Own GingerMon of %d different rarities", raritySpectrumMin),
			earned:      func(p *progress) bool { return len(p.rarities) >= raritySpectrumMin },
		},
		typeBadge("fire", "🔥", "Fire Starter"),
		typeBadge("water", "💧", "Making Waves"),
		typeBadge("grass", "🌿", "Green Thumb"),
		typeBadge("electric", "⚡", "Live Wire"),
		typeBadge("psychic", "🔮", "Mind Reader"),
		typeBadge("dragon", "🐉", "Dragon Tamer"),
		badge{
			id:          "type_master",
			icon:        "🎨",
			name:        "Type Master",
			description: "Own at least one GingerMon of every type",
			earned: func(p *progress) bool {
				if len(p.typeTags) == 0 {
					return false
				}
				for _, t := range p.typeTags {
					if p.typeCount(t) == 0 {
						return false
					}
				}
				return true
			},
		},
		badge{
			id:          "dual_threat",
			icon:        "☯️",
			name:        "Dual Threat",
			description: fmt.Sprintf("Own %d dual-type GingerMon", dualTypeMin),
			earned:      func(p *progress) bool { return p.dualOwned >= dualTypeMin },
		},
		badge{
			id:          "heavyweight",
			icon:        "🏋️",
			name:        "Heavyweight",
			description: fmt.Sprintf("Own a GingerMon with %d+ HP", heavyweightHP),
			earned:      func(p *progress) bool { return p.maxHP >= heavyweightHP },
		},
		badge{
			id:          "heavy_hitter",
			icon:        "💥",
			name:        "Heavy Hitter",
			description: fmt.Sprintf("Own a GingerMon with a %d+ damage move", heavyHitterDamage),
			earned:      func(p *progress) bool { return p.maxDamage >= heavyHitterDamage },
		},
	)
	return badges
}

func regionSlug(region string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(region)), " ", "_")
}

// progressFor derives the badge inputs from the trainer's owned cards. The
// unique count is the number of catalog cards the trainer resolves as owning,
// so badges only grow as the owned set grows.
func (c *Catalog) progressFor(t *models.Trainer) *progress {
	owned := NewOwnedSet(t.Cards)
	p := &progress{
		total:       len(c.cards),
		regionOwned: make(map[string]int),
		regionTotal: make(map[string]int),
		rarities:    make(map[string]bool),
	}
	for _, tag := range c.typeTags {
		p.typeTags = append(p.typeTags, strings.ToLower(tag))
	}
	for _, r := range c.KnownRegions() {
		p.regionTotal[r] = len(c.byRegion[r])
	}
	p.regions = len(p.regionTotal)

	for i := range c.cards {
		card := &c.cards[i]
		if !Owns(card, owned) {
			continue
		}
		p.unique++
		region := c.bucketFor(card)
		if p.regionOwned[region] == 0 {
			p.regionsHit++
		}
		p.regionOwned[region]++
		if card.Rarity != "" {
			p.rarities[card.Rarity] = true
		}
		p.ownedTypes = append(p.ownedTypes, strings.ToLower(card.Type))
		if card.IsDualType() {
			p.dualOwned++
		}
		if card.HP > p.maxHP {
			p.maxHP = card.HP
		}
		if d := card.MaxDamage(); d > p.maxDamage {
			p.maxDamage = d
		}
	}
	return p
}

// Evaluate runs every badge predicate for the trainer in declaration order.
func (c *Catalog) Evaluate(t *models.Trainer) []models.Achievement {
	p := c.progressFor(t)
	out := make([]models.Achievement, 0, len(c.badges))
	for _, b := range c.badges {
		out = append(out, models.Achievement{
			ID:          b.id,
			Icon:        b.icon,
			Name:        b.name,
			Description: b.description,
			Earned:      b.earned(p),
		})
	}
	return out
}

// Achievements evaluates the badge catalog for a trainer by username.
func (c *Catalog) Achievements(username string) (models.AchievementList, error) {
	t, err := c.Trainer(username)
	if err != nil {
		return models.AchievementList{}, err
	}
	list := models.AchievementList{Username: t.Username, Achievements: c.Evaluate(t)}
	list.Total = len(list.Achievements)
	for _, a := range list.Achievements {
		if a.Earned {
			list.Earned++
		}
	}
	return list, nil
}
