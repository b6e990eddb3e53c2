package listingControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateListingInput struct {
	CardID      uint   `json:"card_id" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Condition   string `json:"condition" binding:"required"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type UpdateListingInput struct {
	Price       *string `json:"price"`
	Quantity    *int    `json:"quantity"`
	Condition   *string `json:"condition"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// -------- Helpers --------

// Map string to ListingCondition
func mapCondition(condition string) (models.ListingCondition, error) {
	switch models.ListingCondition(condition) {
	case models.ConditionMint,
		models.ConditionNearMint,
		models.ConditionLightlyPlayed,
		models.ConditionModeratelyPlayed,
		models.ConditionHeavilyPlayed,
		models.ConditionDamaged:
		return models.ListingCondition(condition), nil
	default:
		return "", errors.New("invalid condition")
	}
}

// Map string to ListingStatus
func mapListingStatus(status string) (models.ListingStatus, error) {
	switch models.ListingStatus(status) {
	case models.ListingStatusAvailable,
		models.ListingStatusSold,
		models.ListingStatusRemoved:
		return models.ListingStatus(status), nil
	default:
		return "", errors.New("invalid status")
	}
}

type sellerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type cardResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Collection       string `json:"collection"`
	Rarity           string `json:"rarity"`
	ImageURL         string `json:"image_url"`
	RecommendedPrice string `json:"recommended_price"`
}

type listingResponse struct {
	ID          uint                    `json:"id"`
	Seller      sellerResponse          `json:"seller"`
	Card        cardResponse            `json:"card"`
	Price       string                  `json:"price"`
	Quantity    int                     `json:"quantity"`
	Condition   models.ListingCondition `json:"condition"`
	Status      models.ListingStatus    `json:"status"`
	Description string                  `json:"description"`
	CreatedAt   time.Time               `json:"created_at"`
}

func toListingResponse(listing *models.Listing) listingResponse {
	return listingResponse{
		ID: listing.ID,
		Seller: sellerResponse{
			ID:       listing.Seller.ID,
			Username: listing.Seller.Username,
		},
		Card: cardResponse{
			ID:               listing.Card.ID,
			Name:             listing.Card.Name,
			Collection:       listing.Card.Collection,
			Rarity:           listing.Card.Rarity,
			ImageURL:         listing.Card.ImageURL,
			RecommendedPrice: listing.Card.RecommendedPrice.StringFixed(2),
		},
		Price:       listing.Price.StringFixed(2),
		Quantity:    listing.Quantity,
		Condition:   listing.Condition,
		Status:      listing.Status,
		Description: listing.Description,
		CreatedAt:   listing.CreatedAt,
	}
}

// -------- Handlers --------

// GET /store/listings/
func GetListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Listing
		if err := db.
			Preload("Seller").
			Preload("Card").
			Where("status = ?", models.ListingStatusAvailable).
			Order("created_at DESC").
			Find(&listings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
			return
		}

		out := make([]listingResponse, 0, len(listings))
		for i := range listings {
			out = append(out, toListingResponse(&listings[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /store/listings/:listing_id/
func GetListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("listing_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found."})
			return
		}

		var listing models.Listing
		if err := db.Preload("Seller").Preload("Card").First(&listing, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found."})
			return
		}
		c.JSON(http.StatusOK, toListingResponse(&listing))
	}
}

// POST /store/listings/create/
func CreateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetUint("user_id")

		var input CreateListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: card_id, price, quantity, condition."})
			return
		}

		price, err := decimal.NewFromString(input.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a decimal string."})
			return
		}

		condition, err := mapCondition(input.Condition)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition."})
			return
		}

		status := models.ListingStatusAvailable
		if input.Status != "" {
			status, err = mapListingStatus(input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status."})
				return
			}
		}

		var card models.Card
		if err := db.First(&card, input.CardID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found."})
			return
		}

		listing := models.Listing{
			SellerID:    sellerID,
			CardID:      card.ID,
			Price:       price,
			Quantity:    input.Quantity,
			Condition:   condition,
			Status:      status,
			Description: input.Description,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&listing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":          listing.ID,
			"seller_id":   listing.SellerID,
			"card_id":     listing.CardID,
			"price":       listing.Price.StringFixed(2),
			"quantity":    listing.Quantity,
			"condition":   listing.Condition,
			"status":      listing.Status,
			"description": listing.Description,
			"created_at":  listing.CreatedAt,
		})
	}
}

// PUT /store/listings/:listing_id/update/
// The seller scope is part of the lookup so a foreign listing looks exactly
// like a missing one.
func UpdateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetUint("user_id")

		listing, ok := findOwnListing(c, db, sellerID)
		if !ok {
			return
		}

		var input UpdateListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload."})
			return
		}

		if input.Price != nil {
			price, err := decimal.NewFromString(*input.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a decimal string."})
				return
			}
			listing.Price = price
		}
		if input.Quantity != nil {
			listing.Quantity = *input.Quantity
		}
		if input.Condition != nil {
			condition, err := mapCondition(*input.Condition)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition."})
				return
			}
			listing.Condition = condition
		}
		if input.Status != nil {
			status, err := mapListingStatus(*input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status."})
				return
			}
			listing.Status = status
		}
		if input.Description != nil {
			listing.Description = *input.Description
		}

		if err := db.Save(listing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          listing.ID,
			"price":       listing.Price.StringFixed(2),
			"quantity":    listing.Quantity,
			"condition":   listing.Condition,
			"status":      listing.Status,
			"description": listing.Description,
		})
	}
}

// DELETE /store/listings/:listing_id/delete/
func DeleteListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetUint("user_id")

		listing, ok := findOwnListing(c, db, sellerID)
		if !ok {
			return
		}

		if err := db.Delete(listing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully."})
	}
}

func findOwnListing(c *gin.Context, db *gorm.DB, sellerID uint) (*models.Listing, bool) {
	id, err := strconv.Atoi(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found or not owned by you."})
		return nil, false
	}

	var listing models.Listing
	if err := db.Where("id = ? AND seller_id = ?", id, sellerID).First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found or not owned by you."})
		return nil, false
	}
	return &listing, true
}
