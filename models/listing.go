package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingCondition string
type ListingStatus string

const (
	ConditionMint             ListingCondition = "Mint"
	ConditionNearMint         ListingCondition = "Near Mint"
	ConditionLightlyPlayed    ListingCondition = "Lightly Played"
	ConditionModeratelyPlayed ListingCondition = "Moderately Played"
	ConditionHeavilyPlayed    ListingCondition = "Heavily Played"
	ConditionDamaged          ListingCondition = "Damaged"

	ListingStatusAvailable ListingStatus = "Available"
	ListingStatusSold      ListingStatus = "Sold"
	ListingStatusRemoved   ListingStatus = "Removed"
)

// Listing is a seller's offer to sell a quantity of a card. Only the seller
// may mutate it; only Available listings can enter a cart.
type Listing struct {
	ID          uint             `gorm:"primaryKey"`
	SellerID    uint             `gorm:"not null;index"`
	Seller      User             `gorm:"foreignKey:SellerID"`
	CardID      uint             `gorm:"not null;index"`
	Card        Card             `gorm:"foreignKey:CardID"`
	Price       decimal.Decimal  `gorm:"not null;type:decimal(10,2)"`
	Quantity    int              `gorm:"not null"`
	Condition   ListingCondition `gorm:"type:VARCHAR(20);not null"`
	Status      ListingStatus    `gorm:"type:VARCHAR(20);default:'Available'"`
	Description string
	CreatedAt   time.Time
}
