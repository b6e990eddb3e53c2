package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is an immutable record of a checkout with locked-in pricing.
type Order struct {
	ID         uint            `gorm:"primaryKey"`
	BuyerID    uint            `gorm:"not null;index"`
	Buyer      User            `gorm:"foreignKey:BuyerID"`
	TotalPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Status     OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'"`
	Details    []OrderDetail   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// OrderDetail is one order line. UnitPrice snapshots the listing price at
// order time and never tracks later listing mutations.
type OrderDetail struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ListingID uint            `gorm:"not null"`
	Listing   Listing         `gorm:"foreignKey:ListingID"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
}
