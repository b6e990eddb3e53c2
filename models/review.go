package models

import "time"

// Review is the buyer's one-shot rating of an order. The unique index on
// OrderID enforces at most one review per order.
type Review struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uint      `gorm:"uniqueIndex;not null"`
	Order     Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Rating    int       `gorm:"not null"`
	Comment   string
	CreatedAt time.Time
}
