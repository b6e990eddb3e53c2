package reviewControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID        uint      `json:"id"`
	OrderID   uint      `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(review *models.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		OrderID:   review.OrderID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// POST /store/reviews/create/
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetUint("user_id")

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: order_id, rating."})
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer between 1 and 5."})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND buyer_id = ?", input.OrderID, buyerID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or not owned by you."})
			return
		}

		var count int64
		db.Model(&models.Review{}).Where("order_id = ?", order.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Review already exists for this order."})
			return
		}

		review := models.Review{
			OrderID:   order.ID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			// Unique index on order_id backs up the existence check.
			c.JSON(http.StatusConflict, gin.H{"error": "Review already exists for this order."})
			return
		}

		c.JSON(http.StatusCreated, toReviewResponse(&review))
	}
}

// GET /store/reviews/:order_id/
func GetReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found for this order."})
			return
		}

		var review models.Review
		if err := db.First(&review, "order_id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found for this order."})
			return
		}
		c.JSON(http.StatusOK, toReviewResponse(&review))
	}
}
