package models

type Trainer struct {
	Username      string       `json:"username" yaml:"username"`
	DisplayName   string       `json:"displayName" yaml:"displayName"`
	Cards         []string     `json:"cards" yaml:"cards"`
	UniqueCount   int          `json:"uniqueCount" yaml:"uniqueCount"`
	TotalCards    int          `json:"totalCards" yaml:"totalCards"`
	CompletionPct int          `json:"completionPct" yaml:"completionPct"`
	CatchImages   []CatchImage `json:"catchImages,omitempty" yaml:"catchImages,omitempty"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Medal         string `json:"medal,omitempty"` // "gold", "silver", "bronze"
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	UniqueCount   int    `json:"unique_count"`
	TotalCards    int    `json:"total_cards"`
	CompletionPct int    `json:"completion_pct"`
}

// CompletionSummary aggregates completion percentages across all trainers.
type CompletionSummary struct {
	Trainers int     `json:"trainers"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
	Summary CompletionSummary  `json:"summary"`
}

// TrainerHeader is the summary shown above a trainer's collection.
type TrainerHeader struct {
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	UniqueCount   int    `json:"unique_count"`
	TotalCards    int    `json:"total_cards"`
	CompletionPct int    `json:"completion_pct"`
}

type TrainerView struct {
	Trainer TrainerHeader `json:"trainer"`
	Regions []RegionGroup `json:"regions"`
}
