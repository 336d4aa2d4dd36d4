package models

// HiddenName replaces the display name of cards the viewer does not own.
const HiddenName = "???"

// Filters is the caller-owned gallery filter state. Empty fields do not constrain.
type Filters struct {
	Query  string `json:"query" form:"q"`
	Region string `json:"region" form:"region"`
	Type   string `json:"type" form:"type"`
	Rarity string `json:"rarity" form:"rarity"`
}

type MediaKind string

const (
	MediaImage       MediaKind = "image"
	MediaVideo       MediaKind = "video"
	MediaPlaceholder MediaKind = "placeholder"
)

// Media describes what to render for a card. Silhouette is set for cards the
// viewer does not own.
type Media struct {
	Kind       MediaKind `json:"kind"`
	File       string    `json:"file,omitempty"`
	Text       string    `json:"text,omitempty"` // placeholder glyph
	Silhouette bool      `json:"silhouette,omitempty"`
}

// CardTile is the grid entry for a card. Unowned tiles carry only Key,
// DisplayName ("???") and a silhouette Media.
type CardTile struct {
	Key           string `json:"key"`
	Owned         bool   `json:"owned"`
	DisplayName   string `json:"display_name"`
	Media         Media  `json:"media"`
	CardNumber    int    `json:"card_number,omitempty"`
	Type          string `json:"type,omitempty"`
	HP            int    `json:"hp,omitempty"`
	Rarity        string `json:"rarity,omitempty"`
	RarityDisplay string `json:"rarity_display,omitempty"`
	RarityColor   string `json:"rarity_color,omitempty"`
	CatchCount    int    `json:"catch_count,omitempty"`
}

// RegionGroup is one non-empty region section of a grid.
type RegionGroup struct {
	Region    string     `json:"region"`
	Emoji     string     `json:"emoji,omitempty"`
	Label     string     `json:"label"`
	CardCount int        `json:"card_count"`
	Cards     []CardTile `json:"cards"`
}

type GalleryView struct {
	Filters Filters       `json:"filters"`
	Total   int           `json:"total"`
	Regions []RegionGroup `json:"regions"`
}

// CaughtByEntry pairs a trainer display name with its resolved username.
type CaughtByEntry struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}

// CardDetail is the full view of a single card.
type CardDetail struct {
	Key       string          `json:"key"`
	Hidden    bool            `json:"hidden,omitempty"`
	Card      Card            `json:"card"`
	RegionTag string          `json:"region_tag,omitempty"`
	PullPct   string          `json:"pull_pct"`
	Media     Media           `json:"media"`
	Catches   []CatchImage    `json:"catches"`
	CaughtBy  []CaughtByEntry `json:"caught_by"`
}
