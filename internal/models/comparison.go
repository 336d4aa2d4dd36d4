package models

// Orientation says how two values of a compared field are ranked.
type Orientation string

const (
	HigherIsBetter Orientation = "higher"
	LowerIsBetter  Orientation = "lower"
	Unordered      Orientation = "none"
)

// Outcome tags one side of an ordered field. Ties carry OutcomeNone.
type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomeWinner Outcome = "winner"
	OutcomeLoser  Outcome = "loser"
)

type FieldComparison struct {
	Field        string      `json:"field"`
	Label        string      `json:"label"`
	Orientation  Orientation `json:"orientation"`
	Left         string      `json:"left"`
	Right        string      `json:"right"`
	LeftOutcome  Outcome     `json:"left_outcome,omitempty"`
	RightOutcome Outcome     `json:"right_outcome,omitempty"`
}

type ComparedCard struct {
	Key           string `json:"key"`
	DisplayName   string `json:"display_name"`
	RarityDisplay string `json:"rarity_display"`
	RarityColor   string `json:"rarity_color"`
	Media         Media  `json:"media"`
}

type ComparisonResult struct {
	Left   ComparedCard      `json:"left"`
	Right  ComparedCard      `json:"right"`
	Fields []FieldComparison `json:"fields"`
}
