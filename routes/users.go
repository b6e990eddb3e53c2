package routes

import (
	userControllers "github.com/cxsxrrrr/PokeMart/controllers/user"
	"github.com/cxsxrrrr/PokeMart/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/create/", userControllers.CreateUser(db))
		users.POST("/login/", userControllers.LoginUser(db))
		users.POST("/logout/", middleware.RequireAuth(db), userControllers.LogoutUser(db))
		users.GET("/me/", middleware.RequireAuth(db), userControllers.CurrentUser(db))
		users.GET("/:user_id/", userControllers.GetUser(db))
	}
}
