package models

import (
	"time"
)

// PackOpening is a recorded pack draw.
type PackOpening struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Trainer   string    `json:"trainer" gorm:"index"`
	CardKeys  []string  `json:"card_keys" gorm:"serializer:json"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

type OpenPackRequest struct {
	Trainer string `json:"trainer"`
	Count   int    `json:"count"`
}

// PackResult is the API response for an opened pack.
type PackResult struct {
	ID        string     `json:"id"`
	Trainer   string     `json:"trainer,omitempty"`
	Cards     []CardTile `json:"cards"`
	CreatedAt time.Time  `json:"created_at"`
}
