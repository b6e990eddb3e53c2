package routes

import (
	"net/http"

	cardControllers "github.com/cxsxrrrr/PokeMart/controllers/card"
	cartControllers "github.com/cxsxrrrr/PokeMart/controllers/cart"
	listingControllers "github.com/cxsxrrrr/PokeMart/controllers/listing"
	orderControllers "github.com/cxsxrrrr/PokeMart/controllers/order"
	reviewControllers "github.com/cxsxrrrr/PokeMart/controllers/review"
	"github.com/cxsxrrrr/PokeMart/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers all "/store/*" endpoints. Catalog and review
// reads are public; cart and order endpoints require a session.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	store := r.Group("/store")
	{
		store.GET("/health/", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		// ──────────────── Cards ────────────────
		store.GET("/cards/", cardControllers.GetCards(db))
		store.GET("/cards/search/", cardControllers.SearchCards(db))
		store.GET("/cards/:card_id/", cardControllers.GetCard(db))

		// ──────────────── Listings ────────────────
		store.GET("/listings/", listingControllers.GetListings(db))
		store.GET("/listings/:listing_id/", listingControllers.GetListing(db))
		store.POST("/listings/create/", middleware.RequireAuth(db), listingControllers.CreateListing(db))
		store.PUT("/listings/:listing_id/update/", middleware.RequireAuth(db), listingControllers.UpdateListing(db))
		store.DELETE("/listings/:listing_id/delete/", middleware.RequireAuth(db), listingControllers.DeleteListing(db))

		// ──────────────── Cart ────────────────
		cart := store.Group("/cart")
		cart.Use(middleware.RequireAuth(db))
		{
			cart.GET("/", cartControllers.GetCartItems(db))
			cart.POST("/add/", cartControllers.AddCartItem(db))
			cart.PUT("/:cart_item_id/update/", cartControllers.UpdateCartItem(db))
			cart.DELETE("/:cart_item_id/delete/", cartControllers.DeleteCartItem(db))
		}

		// ──────────────── Orders ────────────────
		orders := store.Group("/orders")
		orders.Use(middleware.RequireAuth(db))
		{
			orders.GET("/", orderControllers.GetOrders(db))
			orders.POST("/create/", orderControllers.CreateOrderHandler(db))
			orders.GET("/:order_id/", orderControllers.GetOrder(db))
		}

		// ──────────────── Reviews ────────────────
		store.POST("/reviews/create/", middleware.RequireAuth(db), reviewControllers.CreateReview(db))
		store.GET("/reviews/:order_id/", reviewControllers.GetReview(db))
	}
}
