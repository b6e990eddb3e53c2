package orderControllers

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

// ErrEmptyCart is returned when checkout finds no cart rows for the buyer,
// including the case where a concurrent checkout consumed them first.
var ErrEmptyCart = errors.New("cart is empty")

type orderSummary struct {
	ID         uint               `json:"id"`
	BuyerID    uint               `json:"buyer_id"`
	TotalPrice string             `json:"total_price"`
	Status     models.OrderStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

func toOrderSummary(order *models.Order) orderSummary {
	return orderSummary{
		ID:         order.ID,
		BuyerID:    order.BuyerID,
		TotalPrice: order.TotalPrice.StringFixed(2),
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}
}

// -------- Core Logic --------

// CreateOrder materializes the buyer's cart into an order inside a single
// transaction: snapshot the cart rows with their listings, total the listing
// prices in exact decimal, write the order and one detail row per cart row
// with the unit price captured now, then clear the cart. Any failure rolls
// the whole thing back.
//
// The final delete doubles as the concurrency guard: if another checkout of
// the same cart committed first, the delete consumes fewer rows than were
// snapshotted and this transaction rolls back with ErrEmptyCart, so the same
// cart rows can never produce two orders.
func CreateOrder(db *gorm.DB, buyerID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", buyerID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		details := make([]models.OrderDetail, 0, len(items))
		for _, item := range items {
			var listing models.Listing
			if err := tx.First(&listing, item.ListingID).Error; err != nil {
				return err
			}

			total = total.Add(listing.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			details = append(details, models.OrderDetail{
				ListingID: listing.ID,
				Quantity:  item.Quantity,
				UnitPrice: listing.Price,
			})
		}

		order = models.Order{
			BuyerID:    buyerID,
			TotalPrice: total,
			Status:     models.OrderStatusPending,
			Details:    details,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Where("user_id = ?", buyerID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(items)) {
			return ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /store/orders/create/
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetUint("user_id")

		order, err := CreateOrder(db, buyerID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, toOrderSummary(order))
	}
}

// GET /store/orders/
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.
			Where("buyer_id = ?", buyerID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		out := make([]orderSummary, 0, len(orders))
		for i := range orders {
			out = append(out, toOrderSummary(&orders[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /store/orders/:order_id/
// Scoped to the buyer; someone else's order is indistinguishable from a
// missing one.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetUint("user_id")

		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
			return
		}

		var order models.Order
		if err := db.
			Preload("Details").
			Preload("Details.Listing").
			Preload("Details.Listing.Card").
			Where("id = ? AND buyer_id = ?", id, buyerID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
			return
		}

		details := make([]gin.H, 0, len(order.Details))
		for _, detail := range order.Details {
			details = append(details, gin.H{
				"id": detail.ID,
				"listing": gin.H{
					"id":        detail.Listing.ID,
					"price":     detail.Listing.Price.StringFixed(2),
					"condition": detail.Listing.Condition,
					"card": gin.H{
						"id":        detail.Listing.Card.ID,
						"name":      detail.Listing.Card.Name,
						"image_url": detail.Listing.Card.ImageURL,
					},
				},
				"quantity":   detail.Quantity,
				"unit_price": detail.UnitPrice.StringFixed(2),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          order.ID,
			"buyer_id":    order.BuyerID,
			"total_price": order.TotalPrice.StringFixed(2),
			"status":      order.Status,
			"created_at":  order.CreatedAt,
			"details":     details,
		})
	}
}
