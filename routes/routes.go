package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the /users and /store
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupUserRoutes(r, db)
	SetupStoreRoutes(r, db)
}
