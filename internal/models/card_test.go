package models

import (
	"testing"
)

func TestCardKey(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Base region uses name", Card{Name: "gingersnap", DisplayName: "Gingersnap"}, "gingersnap"},
		{"Explicit Original uses name", Card{Name: "crumb", DisplayName: "Crumb", Region: OriginalRegion}, "crumb"},
		{"Named region uses display name", Card{Name: "frostbite", DisplayName: "Snowdrift", Region: "Tundra"}, "Tundra:Snowdrift"},
		{"Missing name falls back", Card{DisplayName: "Zest"}, "Zest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Key(); got != tt.expected {
				t.Errorf("Key() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCardTypeTags(t *testing.T) {
	tests := []struct {
		typ      string
		dual     bool
		expected []string
	}{
		{"fire", false, []string{"fire"}},
		{"water / psychic", true, []string{"water", "psychic"}},
		{"", false, nil},
	}

	for _, tt := range tests {
		c := Card{Type: tt.typ}
		got := c.TypeTags()
		if len(got) != len(tt.expected) {
			t.Errorf("TypeTags(%q) = %v, want %v", tt.typ, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("TypeTags(%q) = %v, want %v", tt.typ, got, tt.expected)
			}
		}
		if c.IsDualType() != tt.dual {
			t.Errorf("IsDualType(%q) = %v, want %v", tt.typ, c.IsDualType(), tt.dual)
		}
	}
}

func TestCardDamage(t *testing.T) {
	c := Card{Moves: []Move{{Name: "Snap", Damage: 20}, {Name: "Crunch", Damage: 60}, {Name: "Growl"}}}
	if got := c.TotalDamage(); got != 80 {
		t.Errorf("TotalDamage() = %d, want 80", got)
	}
	if got := c.MaxDamage(); got != 60 {
		t.Errorf("MaxDamage() = %d, want 60", got)
	}
	if got := (&Card{}).TotalDamage(); got != 0 {
		t.Errorf("TotalDamage() with no moves = %d, want 0", got)
	}
}

func TestCardLatestCatch(t *testing.T) {
	c := Card{CatchImages: []CatchImage{
		{File: "b.jpg", Timestamp: 300},
		{File: "a.jpg", Timestamp: 100},
		{File: "c.jpg", Timestamp: 300},
	}}
	if got := c.LatestCatch(); got == nil || got.File != "c.jpg" {
		t.Errorf("LatestCatch() = %+v, want c.jpg", got)
	}
	if got := (&Card{}).LatestCatch(); got != nil {
		t.Errorf("LatestCatch() with no catches = %+v, want nil", got)
	}
}

func TestRegionOrOriginal(t *testing.T) {
	if got := (&Card{}).RegionOrOriginal(); got != OriginalRegion {
		t.Errorf("RegionOrOriginal() = %q, want %q", got, OriginalRegion)
	}
	if got := (&Card{Region: "Tundra"}).RegionOrOriginal(); got != "Tundra" {
		t.Errorf("RegionOrOriginal() = %q, want Tundra", got)
	}
}
