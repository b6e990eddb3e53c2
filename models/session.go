package models

import "time"

// Session is the server-side half of a login token. The token carries the
// session ID as its jti; deleting the row kills the token before expiry.
type Session struct {
	ID        string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
