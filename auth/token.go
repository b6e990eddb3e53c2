package auth

import (
	"errors"
	"os"
	"time"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const SessionTTL = 7 * 24 * time.Hour

var ErrInvalidSession = errors.New("invalid or expired session")

type sessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueSession creates a session row and returns a signed token whose jti is
// the session ID.
func IssueSession(db *gorm.DB, user *models.User) (string, error) {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}

	claims := sessionClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ResolveSession validates a token and returns the owning user's ID. A token
// whose session row has been deleted (logout) is rejected even if unexpired.
func ResolveSession(db *gorm.DB, tokenString string) (uint, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	var session models.Session
	if err := db.First(&session, "id = ?", claims.ID).Error; err != nil {
		return 0, ErrInvalidSession
	}
	if time.Now().After(session.ExpiresAt) {
		db.Delete(&session)
		return 0, ErrInvalidSession
	}
	return session.UserID, nil
}

// RevokeSession deletes the session behind the token. Unknown or mangled
// tokens are ignored so logout stays idempotent.
func RevokeSession(db *gorm.DB, tokenString string) error {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return nil
	}
	return db.Delete(&models.Session{}, "id = ?", claims.ID).Error
}

func parseClaims(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
