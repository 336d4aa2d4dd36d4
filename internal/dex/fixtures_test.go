package dex

import (
	"testing"

	"github.com/codyseavey/gingerdex/internal/models"
)

// testSnapshot is a small two-region dex with one leaderboard entry.
func testSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Cards: []models.Card{
			{Name: "gingersnap", DisplayName: "Gingersnap", CardNumber: 2, Type: "fire", Rarity: "common", RarityTier: 1,
				HP: 60, PullRate: 30, CatchCount: 2, CaughtBy: []string{"Ash", "Misty"},
				Moves: []models.Move{{Name: "Snap", Damage: 20}}, ImageFile: "gingersnap.png"},
			{Name: "mr_whiskers", DisplayName: "Mr Whiskers", CardNumber: 1, Type: "water / psychic", Rarity: "rare", RarityTier: 3,
				HP: 90, PullRate: 10, CatchCount: 1, CaughtBy: []string{"Ash"},
				Moves: []models.Move{{Name: "Splash", Damage: 30}, {Name: "Stare", Damage: 40}},
				CatchImages: []models.CatchImage{
					{File: "catches/b.jpg", DisplayName: "Ash", CardName: "mr_whiskers", Timestamp: 200},
					{File: "catches/a.jpg", DisplayName: "Ash", CardName: "mr_whiskers", Timestamp: 100},
				}},
			{Name: "crumb", DisplayName: "Crumb", CardNumber: 2, Type: "grass", Rarity: "common", RarityTier: 1,
				HP: 40, PullRate: 30},
			{Name: "frostbite", DisplayName: "Frostbite", Region: "Tundra", CardNumber: 1, Type: "water", Rarity: "legendary", RarityTier: 5,
				HP: 320, PullRate: 1, CatchCount: 1, CaughtBy: []string{"Misty"},
				Moves: []models.Move{{Name: "Blizzard", Damage: 250}}, VideoFile: "frostbite.mp4"},
			{Name: "frostbite", DisplayName: "Snowdrift", Region: "Tundra", CardNumber: 2, Type: "water / dragon", Rarity: "epic", RarityTier: 4,
				HP: 150, PullRate: 4},
		},
		Leaderboard: []models.Trainer{
			{Username: "ash", DisplayName: "Ash", Cards: []string{"Gingersnap", "MrWhiskers"},
				UniqueCount: 2, TotalCards: 5, CompletionPct: 40,
				CatchImages: []models.CatchImage{{File: "trainers/ash/whiskers.mp4", IsVideo: true, CardName: "Mr_Whiskers", Timestamp: 50}}},
			{Username: "misty", DisplayName: "Misty", Cards: []string{"gingersnap", "tundra-frostbite", "Frostbite"},
				UniqueCount: 3, TotalCards: 5, CompletionPct: 60},
			{Username: "brock", DisplayName: "Brock", UniqueCount: 0, TotalCards: 5, CompletionPct: 0},
		},
		Regions:       []string{"Original", "Tundra"},
		RegionOrder:   []string{"Original", "Tundra"},
		RegionInfo:    map[string]models.RegionInfo{"Tundra": {Emoji: "❄️", Label: "THE TUNDRA", CardCount: 2}},
		Types:         []string{"fire", "water / psychic", "grass", "water", "water / dragon"},
		Rarities:      []string{"common", "rare", "epic", "legendary"},
		RarityDisplay: map[string]string{"legendary": "Legendary ✦"},
		TotalCards:    5,
		TotalTrainers: 3,
	}
}

func mustCatalog(t *testing.T, s *models.Snapshot) *Catalog {
	t.Helper()
	c, err := NewCatalog(s)
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	return c
}

func keysOf(cards []models.Card) []string {
	keys := make([]string, len(cards))
	for i := range cards {
		keys[i] = cards[i].Key()
	}
	return keys
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
