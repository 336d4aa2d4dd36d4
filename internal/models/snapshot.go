package models

// RegionInfo is the presentation metadata for a region section.
type RegionInfo struct {
	Emoji     string `json:"emoji" yaml:"emoji"`
	Label     string `json:"label" yaml:"label"`
	CardCount int    `json:"cardCount" yaml:"cardCount"`
}

// Snapshot is the full read-only dataset supplied by the loader.
type Snapshot struct {
	Cards         []Card                `json:"cards" yaml:"cards"`
	Leaderboard   []Trainer             `json:"leaderboard" yaml:"leaderboard"`
	Regions       []string              `json:"regions,omitempty" yaml:"regions,omitempty"`
	RegionOrder   []string              `json:"regionOrder,omitempty" yaml:"regionOrder,omitempty"`
	RegionInfo    map[string]RegionInfo `json:"regionInfo,omitempty" yaml:"regionInfo,omitempty"`
	Types         []string              `json:"types" yaml:"types"`
	Rarities      []string              `json:"rarities" yaml:"rarities"`
	RarityDisplay map[string]string     `json:"rarityDisplay" yaml:"rarityDisplay"`
	TotalCards    int                   `json:"totalCards" yaml:"totalCards"`
	TotalTrainers int                   `json:"totalTrainers" yaml:"totalTrainers"`
}

// CatalogStats is the header summary of the whole catalog.
type CatalogStats struct {
	TotalCards    int `json:"total_cards"`
	Discovered    int `json:"discovered"`
	TotalTrainers int `json:"total_trainers"`
	Regions       int `json:"regions"`
}

// FilterOption is one selectable value in a filter dropdown.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Regions  []FilterOption `json:"regions"`
	Types    []FilterOption `json:"types"`
	Rarities []FilterOption `json:"rarities"`
}
