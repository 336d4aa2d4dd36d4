package dex

import (
	"errors"
	"testing"

	"github.com/codyseavey/gingerdex/internal/models"
)

func TestNewCatalogIndexesEveryKey(t *testing.T) {
	c := mustCatalog(t, testSnapshot())

	seen := make(map[string]bool)
	for _, card := range c.Cards() {
		key := card.Key()
		if seen[key] {
			t.Fatalf("identity key %q appears twice", key)
		}
		seen[key] = true

		got, err := c.Card(key)
		if err != nil {
			t.Fatalf("Card(%q) error: %v", key, err)
		}
		if got.DisplayName != card.DisplayName {
			t.Errorf("Card(%q) = %s, want %s", key, got.DisplayName, card.DisplayName)
		}
	}

	// Same name in the same region is told apart by display name.
	if _, err := c.Card("Tundra:Snowdrift"); err != nil {
		t.Errorf("Card(Tundra:Snowdrift) error: %v", err)
	}
}

func TestNewCatalogRejectsDuplicateKeys(t *testing.T) {
	s := testSnapshot()
	s.Cards = append(s.Cards, models.Card{Name: "crumb", DisplayName: "Crumb Again", PullRate: 1})

	_, err := NewCatalog(s)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("NewCatalog() error = %v, want ErrDuplicateKey", err)
	}
}

func TestCardLookupMiss(t *testing.T) {
	c := mustCatalog(t, testSnapshot())

	if _, err := c.Card("Nowhere:Nothing"); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("Card() error = %v, want ErrCardNotFound", err)
	}
	if _, err := c.Trainer("gary"); !errors.Is(err, ErrTrainerNotFound) {
		t.Errorf("Trainer() error = %v, want ErrTrainerNotFound", err)
	}
}

func TestRegionOrder(t *testing.T) {
	tests := []struct {
		name     string
		order    []string
		regions  []string
		expected []string
	}{
		{"Region order used as given", []string{"Original", "Tundra"}, nil, []string{"Original", "Tundra"}},
		{"Falls back to regions", nil, []string{"Tundra", "Original"}, []string{"Tundra", "Original"}},
		{"Original appended when missing", []string{"Tundra"}, nil, []string{"Tundra", "Original"}},
		{"Nothing listed", nil, nil, []string{"Original"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSnapshot()
			s.RegionOrder = tt.order
			s.Regions = tt.regions
			c := mustCatalog(t, s)
			if got := c.RegionOrder(); !equalStrings(got, tt.expected) {
				t.Errorf("RegionOrder() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnlistedRegionFallsIntoOriginal(t *testing.T) {
	s := testSnapshot()
	s.RegionOrder = []string{"Original"}
	c := mustCatalog(t, s)

	if got := len(c.RegionCards(models.OriginalRegion)); got != 5 {
		t.Errorf("len(RegionCards(Original)) = %d, want 5", got)
	}
	if got := c.KnownRegions(); !equalStrings(got, []string{"Original"}) {
		t.Errorf("KnownRegions() = %v, want [Original]", got)
	}
}

func TestTypeTagsAndRarities(t *testing.T) {
	c := mustCatalog(t, testSnapshot())

	wantTypes := []string{"fire", "water", "psychic", "grass", "dragon"}
	if got := c.TypeTags(); !equalStrings(got, wantTypes) {
		t.Errorf("TypeTags() = %v, want %v", got, wantTypes)
	}
	wantRarities := []string{"common", "rare", "legendary", "epic"}
	if got := c.Rarities(); !equalStrings(got, wantRarities) {
		t.Errorf("Rarities() = %v, want %v", got, wantRarities)
	}
}

func TestStats(t *testing.T) {
	c := mustCatalog(t, testSnapshot())
	got := c.Stats()
	want := models.CatalogStats{TotalCards: 5, Discovered: 3, TotalTrainers: 3, Regions: 2}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestFilterOptions(t *testing.T) {
	c := mustCatalog(t, testSnapshot())
	opts := c.FilterOptions()

	if len(opts.Regions) != 2 {
		t.Errorf("len(Regions) = %d, want 2", len(opts.Regions))
	}
	if opts.Types[1].Label != "Water / Psychic" {
		t.Errorf("Types[1].Label = %q, want %q", opts.Types[1].Label, "Water / Psychic")
	}
	labels := map[string]string{}
	for _, r := range opts.Rarities {
		labels[r.Value] = r.Label
	}
	if labels["legendary"] != "Legendary ✦" {
		t.Errorf("legendary label = %q, want display override", labels["legendary"])
	}
	if labels["common"] != "Common" {
		t.Errorf("common label = %q, want %q", labels["common"], "Common")
	}
}

func TestUsernameFor(t *testing.T) {
	c := mustCatalog(t, testSnapshot())

	tests := []struct {
		displayName string
		expected    string
	}{
		{"Ash", "ash"},
		{"MISTY", "misty"},
		{"Gary Oak", "gary oak"},
	}
	for _, tt := range tests {
		t.Run(tt.displayName, func(t *testing.T) {
			if got := c.UsernameFor(tt.displayName); got != tt.expected {
				t.Errorf("UsernameFor(%q) = %q, want %q", tt.displayName, got, tt.expected)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fire", "Fire"},
		{"water / psychic", "Water / Psychic"},
		{"", ""},
		{"éclair", "Éclair"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.expected {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
