package models

import "github.com/shopspring/decimal"

// Card is an immutable catalog fact. Listings reference cards, never own them.
type Card struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"not null;index"`
	Collection       string
	Rarity           string
	ImageURL         string
	RecommendedPrice decimal.Decimal `gorm:"type:decimal(10,2)"`
}
