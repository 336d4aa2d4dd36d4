package dex

import (
	"github.com/codyseavey/gingerdex/internal/models"
)

const cardMediaDir = "cards/"

// ResolveMedia picks what to show for a card. Unowned cards get a silhouette
// of the default image or a "?" placeholder. Owned cards prefer the trainer's
// own catch, then the card's latest catch, then its default video and image.
func ResolveMedia(card *models.Card, owned bool, trainerCatch *models.CatchImage) models.Media {
	if !owned {
		if card.ImageFile != "" {
			return models.Media{Kind: models.MediaImage, File: cardMediaDir + card.ImageFile, Silhouette: true}
		}
		return models.Media{Kind: models.MediaPlaceholder, Text: "?", Silhouette: true}
	}

	if trainerCatch != nil {
		return catchMedia(trainerCatch)
	}
	if latest := card.LatestCatch(); latest != nil {
		return catchMedia(latest)
	}
	return defaultMedia(card)
}

func catchMedia(ci *models.CatchImage) models.Media {
	if ci.IsVideo {
		return models.Media{Kind: models.MediaVideo, File: ci.File}
	}
	return models.Media{Kind: models.MediaImage, File: ci.File}
}

func defaultMedia(card *models.Card) models.Media {
	switch {
	case card.VideoFile != "":
		return models.Media{Kind: models.MediaVideo, File: cardMediaDir + card.VideoFile}
	case card.ImageFile != "":
		return models.Media{Kind: models.MediaImage, File: cardMediaDir + card.ImageFile}
	}
	text := ""
	if r := []rune(card.DisplayName); len(r) > 0 {
		text = string(r[0])
	}
	return models.Media{Kind: models.MediaPlaceholder, Text: text}
}

// tile builds a grid entry. Unowned tiles expose only the key, the hidden
// name and a silhouette.
func tile(card *models.Card, owned bool, trainerCatch *models.CatchImage, showCatchCount bool) models.CardTile {
	if !owned {
		return models.CardTile{
			Key:         card.Key(),
			DisplayName: models.HiddenName,
			Media:       ResolveMedia(card, false, nil),
		}
	}
	t := models.CardTile{
		Key:           card.Key(),
		Owned:         true,
		DisplayName:   card.DisplayName,
		Media:         ResolveMedia(card, true, trainerCatch),
		CardNumber:    card.CardNumber,
		Type:          card.Type,
		HP:            card.HP,
		Rarity:        card.Rarity,
		RarityDisplay: card.RarityDisplay,
		RarityColor:   card.RarityColor,
	}
	if showCatchCount {
		t.CatchCount = card.CatchCount
	}
	return t
}
