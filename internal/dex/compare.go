package dex

import (
	"math"
	"strconv"
	"strings"

	"github.com/codyseavey/gingerdex/internal/models"
)

// comparedField is one row of a comparison. Ordered rows read value; the
// rest read text.
type comparedField struct {
	field       string
	label       string
	orientation models.Orientation
	value       func(c *models.Card) float64
	text        func(c *models.Card, totalPull float64) string
}

var comparedFields = []comparedField{
	{field: "hp", label: "HP", orientation: models.HigherIsBetter,
		value: func(c *models.Card) float64 { return float64(c.HP) }},
	{field: "rarity_tier", label: "Rarity", orientation: models.HigherIsBetter,
		value: func(c *models.Card) float64 { return float64(c.RarityTier) }},
	{field: "catch_count", label: "Times Caught", orientation: models.HigherIsBetter,
		value: func(c *models.Card) float64 { return float64(c.CatchCount) }},
	{field: "total_damage", label: "Total Damage", orientation: models.HigherIsBetter,
		value: func(c *models.Card) float64 { return float64(c.TotalDamage()) }},
	{field: "type", label: "Type", orientation: models.Unordered,
		text: func(c *models.Card, _ float64) string { return Capitalize(c.Type) }},
	{field: "weakness", label: "Weakness", orientation: models.Unordered,
		text: func(c *models.Card, _ float64) string { return c.Weakness }},
	{field: "resistance", label: "Resistance", orientation: models.Unordered,
		text: func(c *models.Card, _ float64) string { return c.Resistance }},
	{field: "pull_rate", label: "Pull Rate", orientation: models.Unordered,
		text: func(c *models.Card, total float64) string { return PullPercent(c.PullRate, total) + "%" }},
	{field: "moves", label: "Moves", orientation: models.Unordered,
		text: func(c *models.Card, _ float64) string { return formatMoves(c.Moves) }},
}

// PullPercent is 100*rate/total rounded to two decimals. Every view uses the
// catalog-wide total so percentages agree.
func PullPercent(rate, total float64) string {
	if !(total > 0) {
		return "0.00"
	}
	pct := math.Round(rate/total*100*100) / 100
	return strconv.FormatFloat(pct, 'f', 2, 64)
}

func formatMoves(moves []models.Move) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, m.Name+" ("+strconv.Itoa(m.Damage)+")")
	}
	return strings.Join(parts, ", ")
}

// outcomes tags each side of an ordered field; equal values are untagged.
func outcomes(left, right float64, o models.Orientation) (models.Outcome, models.Outcome) {
	if left == right || o == models.Unordered {
		return models.OutcomeNone, models.OutcomeNone
	}
	leftWins := left > right
	if o == models.LowerIsBetter {
		leftWins = !leftWins
	}
	if leftWins {
		return models.OutcomeWinner, models.OutcomeLoser
	}
	return models.OutcomeLoser, models.OutcomeWinner
}

// Compare lines up two cards field by field. totalPull is the catalog-wide
// pull-rate sum.
func Compare(a, b *models.Card, totalPull float64) models.ComparisonResult {
	res := models.ComparisonResult{
		Left:   comparedCard(a),
		Right:  comparedCard(b),
		Fields: make([]models.FieldComparison, 0, len(comparedFields)),
	}
	for _, f := range comparedFields {
		fc := models.FieldComparison{Field: f.field, Label: f.label, Orientation: f.orientation}
		if f.value != nil {
			l, r := f.value(a), f.value(b)
			fc.Left = strconv.FormatFloat(l, 'f', -1, 64)
			fc.Right = strconv.FormatFloat(r, 'f', -1, 64)
			fc.LeftOutcome, fc.RightOutcome = outcomes(l, r, f.orientation)
		} else {
			fc.Left, fc.Right = f.text(a, totalPull), f.text(b, totalPull)
		}
		res.Fields = append(res.Fields, fc)
	}
	return res
}

func comparedCard(c *models.Card) models.ComparedCard {
	return models.ComparedCard{
		Key:           c.Key(),
		DisplayName:   c.DisplayName,
		RarityDisplay: c.RarityDisplay,
		RarityColor:   c.RarityColor,
		Media:         ResolveMedia(c, true, nil),
	}
}

// Compare looks both cards up by identity key and compares them.
func (c *Catalog) Compare(keyA, keyB string) (models.ComparisonResult, error) {
	a, err := c.Card(keyA)
	if err != nil {
		return models.ComparisonResult{}, err
	}
	b, err := c.Card(keyB)
	if err != nil {
		return models.ComparisonResult{}, err
	}
	return Compare(a, b, c.totalPull), nil
}
