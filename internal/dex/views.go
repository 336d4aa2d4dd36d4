package dex

import (
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/codyseavey/gingerdex/internal/models"
)

// Gallery filters the catalog and groups it by region. A card counts as
// owned in the gallery once anyone has caught it.
func (c *Catalog) Gallery(f models.Filters) models.GalleryView {
	filtered := Filter(c.cards, f)
	view := models.GalleryView{
		Filters: f,
		Total:   len(filtered),
		Regions: make([]models.RegionGroup, 0),
	}
	for _, g := range GroupByRegion(filtered, c.regionOrder) {
		group := c.regionGroup(g)
		for i := range g.Cards {
			card := &g.Cards[i]
			group.Cards = append(group.Cards, tile(card, card.CatchCount > 0, nil, true))
		}
		view.Regions = append(view.Regions, group)
	}
	return view
}

// TrainerView groups the filtered catalog for one trainer, owned cards first.
func (c *Catalog) TrainerView(username string, f models.Filters) (models.TrainerView, error) {
	t, err := c.Trainer(username)
	if err != nil {
		return models.TrainerView{}, err
	}
	owned := NewOwnedSet(t.Cards)
	catches := NewCatchIndex(t.CatchImages)

	view := models.TrainerView{
		Trainer: models.TrainerHeader{
			Username:      t.Username,
			DisplayName:   t.DisplayName,
			UniqueCount:   t.UniqueCount,
			TotalCards:    t.TotalCards,
			CompletionPct: t.CompletionPct,
		},
		Regions: make([]models.RegionGroup, 0),
	}
	for _, g := range GroupForTrainer(Filter(c.cards, f), c.regionOrder, owned) {
		group := c.regionGroup(g)
		for i := range g.Cards {
			card := &g.Cards[i]
			has := Owns(card, owned)
			var ci *models.CatchImage
			if has {
				ci = catches.Lookup(card)
			}
			group.Cards = append(group.Cards, tile(card, has, ci, false))
		}
		view.Regions = append(view.Regions, group)
	}
	return view, nil
}

func (c *Catalog) regionGroup(g RegionCards) models.RegionGroup {
	emoji, label, count := c.RegionInfo(g.Region, len(g.Cards))
	return models.RegionGroup{
		Region:    g.Region,
		Emoji:     emoji,
		Label:     label,
		CardCount: count,
		Cards:     make([]models.CardTile, 0, len(g.Cards)),
	}
}

// CardDetail returns everything about one card for the detail view. A card
// nobody has caught stays hidden: only its key and silhouette are returned.
func (c *Catalog) CardDetail(key string) (models.CardDetail, error) {
	card, err := c.Card(key)
	if err != nil {
		return models.CardDetail{}, err
	}
	if card.CatchCount == 0 {
		return models.CardDetail{
			Key:      key,
			Hidden:   true,
			Card:     models.Card{DisplayName: models.HiddenName},
			Media:    ResolveMedia(card, false, nil),
			Catches:  []models.CatchImage{},
			CaughtBy: []models.CaughtByEntry{},
		}, nil
	}

	catches := append([]models.CatchImage(nil), card.CatchImages...)
	sort.SliceStable(catches, func(i, j int) bool {
		return catches[i].Timestamp < catches[j].Timestamp
	})

	caughtBy := make([]models.CaughtByEntry, 0, len(card.CaughtBy))
	for _, name := range card.CaughtBy {
		caughtBy = append(caughtBy, models.CaughtByEntry{DisplayName: name, Username: c.UsernameFor(name)})
	}

	detail := models.CardDetail{
		Key:      key,
		Card:     *card,
		PullPct:  PullPercent(card.PullRate, c.totalPull),
		Media:    ResolveMedia(card, true, nil),
		Catches:  catches,
		CaughtBy: caughtBy,
	}
	if card.Region != "" {
		num := "?"
		if card.CardNumber != 0 {
			num = strconv.Itoa(card.CardNumber)
		}
		detail.RegionTag = card.Region + " #" + num
	}
	return detail, nil
}

var medals = []string{"gold", "silver", "bronze"}

// Leaderboard ranks trainers in snapshot order and summarizes completion.
func (c *Catalog) Leaderboard() models.Leaderboard {
	trainers := c.snapshot.Leaderboard
	lb := models.Leaderboard{Entries: make([]models.LeaderboardEntry, 0, len(trainers))}
	pcts := make(stats.Float64Data, 0, len(trainers))
	for i := range trainers {
		t := &trainers[i]
		entry := models.LeaderboardEntry{
			Rank:          i + 1,
			Username:      t.Username,
			DisplayName:   t.DisplayName,
			UniqueCount:   t.UniqueCount,
			TotalCards:    t.TotalCards,
			CompletionPct: t.CompletionPct,
		}
		if i < len(medals) {
			entry.Medal = medals[i]
		}
		lb.Entries = append(lb.Entries, entry)
		pcts = append(pcts, float64(t.CompletionPct))
	}
	lb.Summary = summarize(pcts)
	return lb
}

func summarize(pcts stats.Float64Data) models.CompletionSummary {
	summary := models.CompletionSummary{Trainers: pcts.Len()}
	if pcts.Len() == 0 {
		return summary
	}
	if mean, err := pcts.Mean(); err == nil {
		summary.Mean, _ = stats.Round(mean, 2)
	}
	if median, err := pcts.Median(); err == nil {
		summary.Median, _ = stats.Round(median, 2)
	}
	if sd, err := pcts.StandardDeviation(); err == nil {
		summary.StdDev, _ = stats.Round(sd, 2)
	}
	return summary
}
