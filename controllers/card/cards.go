package cardControllers

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type cardResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Collection       string `json:"collection"`
	Rarity           string `json:"rarity"`
	ImageURL         string `json:"image_url"`
	RecommendedPrice string `json:"recommended_price"`
}

func toCardResponse(card *models.Card) cardResponse {
	return cardResponse{
		ID:               card.ID,
		Name:             card.Name,
		Collection:       card.Collection,
		Rarity:           card.Rarity,
		ImageURL:         card.ImageURL,
		RecommendedPrice: card.RecommendedPrice.StringFixed(2),
	}
}

// GET /store/cards/
// Returns up to 30 cards from a randomly positioned window over the catalog.
func GetCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		if err := db.Model(&models.Card{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
			return
		}
		if total == 0 {
			c.JSON(http.StatusOK, []cardResponse{})
			return
		}

		sampleSize := 30
		if int(total) < sampleSize {
			sampleSize = int(total)
		}
		start := rand.Intn(int(total) - sampleSize + 1)

		var cards []models.Card
		if err := db.Order("id").Offset(start).Limit(sampleSize).Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
			return
		}

		out := make([]cardResponse, 0, len(cards))
		for i := range cards {
			out = append(out, toCardResponse(&cards[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /store/cards/search/?q=
func SearchCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required."})
			return
		}

		var cards []models.Card
		if err := db.
			Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
			Order("name").
			Limit(50).
			Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cards"})
			return
		}

		out := make([]cardResponse, 0, len(cards))
		for i := range cards {
			out = append(out, toCardResponse(&cards[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /store/cards/:card_id/
func GetCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("card_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found."})
			return
		}

		var card models.Card
		if err := db.First(&card, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found."})
			return
		}
		c.JSON(http.StatusOK, toCardResponse(&card))
	}
}
