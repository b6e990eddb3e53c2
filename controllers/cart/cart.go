package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ListingID uint `json:"listing_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type cartItemResponse struct {
	CartItemID uint                `json:"cart_item_id"`
	Quantity   int                 `json:"quantity"`
	AddedAt    time.Time           `json:"added_at"`
	Listing    cartListingResponse `json:"listing"`
}

type cartListingResponse struct {
	ListingID   uint                    `json:"listing_id"`
	Price       string                  `json:"price"`
	Condition   models.ListingCondition `json:"condition"`
	Status      models.ListingStatus    `json:"status"`
	Description string                  `json:"description"`
	Card        cartCardResponse        `json:"card"`
}

type cartCardResponse struct {
	CardID           uint   `json:"card_id"`
	Name             string `json:"name"`
	Collection       string `json:"collection"`
	Rarity           string `json:"rarity"`
	ImageURL         string `json:"image_url"`
	RecommendedPrice string `json:"recommended_price"`
}

func toCartItemResponse(item *models.CartItem) cartItemResponse {
	return cartItemResponse{
		CartItemID: item.ID,
		Quantity:   item.Quantity,
		AddedAt:    item.AddedAt,
		Listing: cartListingResponse{
			ListingID:   item.Listing.ID,
			Price:       item.Listing.Price.StringFixed(2),
			Condition:   item.Listing.Condition,
			Status:      item.Listing.Status,
			Description: item.Listing.Description,
			Card: cartCardResponse{
				CardID:           item.Listing.Card.ID,
				Name:             item.Listing.Card.Name,
				Collection:       item.Listing.Card.Collection,
				Rarity:           item.Listing.Card.Rarity,
				ImageURL:         item.Listing.Card.ImageURL,
				RecommendedPrice: item.Listing.Card.RecommendedPrice.StringFixed(2),
			},
		},
	}
}

// GET /store/cart/
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var items []models.CartItem
		if err := db.
			Preload("Listing").
			Preload("Listing.Card").
			Where("user_id = ?", userID).
			Order("added_at").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		out := make([]cartItemResponse, 0, len(items))
		for i := range items {
			out = append(out, toCartItemResponse(&items[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// POST /store/cart/add/
// Adding a listing already in the cart merges by incrementing the quantity;
// there is never more than one row per (user, listing).
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: listing_id, quantity."})
			return
		}

		var listing models.Listing
		if err := db.First(&listing, input.ListingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found."})
			return
		}
		if listing.Status != models.ListingStatusAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Listing is not available."})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND listing_id = ?", userID, listing.ID).First(&item).Error
		if err == nil {
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"cart_item_id": item.ID,
				"listing_id":   item.ListingID,
				"quantity":     item.Quantity,
				"added_at":     item.AddedAt,
			})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item = models.CartItem{
			UserID:    userID,
			ListingID: listing.ID,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"cart_item_id": item.ID,
			"listing_id":   item.ListingID,
			"quantity":     item.Quantity,
			"added_at":     item.AddedAt,
		})
	}
}

// PUT /store/cart/:cart_item_id/update/
// The owner scope is part of the lookup; another user's row is a plain 404.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		id, err := strconv.Atoi(c.Param("cart_item_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found."})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found."})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: quantity."})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"cart_item_id": item.ID,
			"listing_id":   item.ListingID,
			"quantity":     item.Quantity,
		})
	}
}

// DELETE /store/cart/:cart_item_id/delete/
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		id, err := strconv.Atoi(c.Param("cart_item_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found."})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully."})
	}
}
