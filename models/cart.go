package models

import "time"

// CartItem is one (user, listing) row in a cart. The composite unique index
// is what makes add-to-cart merge instead of duplicating the row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_listing"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_cart_user_listing"`
	Listing   Listing   `gorm:"foreignKey:ListingID"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time
}
