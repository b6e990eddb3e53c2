package middleware

import (
	"net/http"
	"strings"

	"github.com/cxsxrrrr/PokeMart/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionCookie is set on login as an alternative to the Authorization header.
const SessionCookie = "pokemart_session"

// RequireAuth resolves the caller's session and stores the user ID in the
// request context under "user_id".
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			c.Abort()
			return
		}

		userID, err := auth.ResolveSession(db, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session."})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// TokenFromRequest pulls the session token from the Authorization header
// (with or without the Bearer prefix) or from the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}
