package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/cxsxrrrr/PokeMart/auth"
	orderControllers "github.com/cxsxrrrr/PokeMart/controllers/order"
	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/cxsxrrrr/PokeMart/routes"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type OrderSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *OrderSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:ordertest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), db.AutoMigrate(
		&models.User{}, &models.Session{}, &models.Card{}, &models.Listing{},
		&models.CartItem{}, &models.Order{}, &models.OrderDetail{}, &models.Review{},
	))

	router := gin.New()
	routes.SetupRoutes(router, db)

	s.db = db
	s.router = router
}

func (s *OrderSuite) SetupTest() {
	for _, table := range []string{"reviews", "order_details", "orders", "cart_items", "listings", "sessions", "cards", "users"} {
		s.db.Exec("DELETE FROM " + table)
	}
}

func (s *OrderSuite) createUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         models.RoleCustomer,
	}
	s.Require().NoError(s.db.Create(user).Error)
	return user
}

func (s *OrderSuite) token(user *models.User) string {
	token, err := auth.IssueSession(s.db, user)
	s.Require().NoError(err)
	return token
}

func (s *OrderSuite) createListing(seller *models.User, price string, quantity int) *models.Listing {
	card := &models.Card{Name: "Pikachu", Collection: "Base Set", Rarity: "Rare"}
	s.Require().NoError(s.db.Create(card).Error)

	p, err := decimal.NewFromString(price)
	s.Require().NoError(err)

	listing := &models.Listing{
		SellerID:  seller.ID,
		CardID:    card.ID,
		Price:     p,
		Quantity:  quantity,
		Condition: models.ConditionNearMint,
		Status:    models.ListingStatusAvailable,
		CreatedAt: time.Now(),
	}
	s.Require().NoError(s.db.Create(listing).Error)
	return listing
}

func (s *OrderSuite) addToCart(user *models.User, listing *models.Listing, quantity int) {
	item := &models.CartItem{
		UserID:    user.ID,
		ListingID: listing.ID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	s.Require().NoError(s.db.Create(item).Error)
}

func (s *OrderSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *OrderSuite) TestCreateOrderComputesExactTotalAndClearsCart() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	listingA := s.createListing(seller, "25.50", 5)
	listingB := s.createListing(seller, "10.00", 3)
	s.addToCart(buyer, listingA, 2)
	s.addToCart(buyer, listingB, 1)

	w := s.request(http.MethodPost, "/store/orders/create/", s.token(buyer), nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("61.00", body["total_price"])
	s.Equal("Pending", body["status"])
	s.Equal(float64(buyer.ID), body["buyer_id"])

	var cartCount int64
	s.db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cartCount)
	s.Equal(int64(0), cartCount)

	var details []models.OrderDetail
	s.Require().NoError(s.db.Order("id").Find(&details).Error)
	s.Require().Len(details, 2)
	s.Equal("25.50", details[0].UnitPrice.StringFixed(2))
	s.Equal(2, details[0].Quantity)
	s.Equal("10.00", details[1].UnitPrice.StringFixed(2))
	s.Equal(1, details[1].Quantity)
}

func (s *OrderSuite) TestUnitPriceSurvivesListingPriceChange() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	listing := s.createListing(seller, "25.50", 5)
	s.addToCart(buyer, listing, 2)
	token := s.token(buyer)

	w := s.request(http.MethodPost, "/store/orders/create/", token, nil)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	orderID := int(created["id"].(float64))

	// Reprice the listing after checkout; the snapshot must not move.
	s.Require().NoError(s.db.Model(&models.Listing{}).
		Where("id = ?", listing.ID).
		Update("price", decimal.RequireFromString("99.99")).Error)

	w = s.request(http.MethodGet, "/store/orders/"+itoa(orderID)+"/", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		TotalPrice string `json:"total_price"`
		Details    []struct {
			UnitPrice string `json:"unit_price"`
		} `json:"details"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("51.00", body.TotalPrice)
	s.Require().Len(body.Details, 1)
	s.Equal("25.50", body.Details[0].UnitPrice)
}

func (s *OrderSuite) TestCreateOrderEmptyCartHasNoEffects() {
	buyer := s.createUser("buyer")

	w := s.request(http.MethodPost, "/store/orders/create/", s.token(buyer), nil)
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Cart is empty.", body["error"])

	var orderCount, detailCount int64
	s.db.Model(&models.Order{}).Count(&orderCount)
	s.db.Model(&models.OrderDetail{}).Count(&detailCount)
	s.Equal(int64(0), orderCount)
	s.Equal(int64(0), detailCount)
}

func (s *OrderSuite) TestCreateOrderDirectEmptyCart() {
	buyer := s.createUser("buyer")

	_, err := orderControllers.CreateOrder(s.db, buyer.ID)
	s.Require().ErrorIs(err, orderControllers.ErrEmptyCart)
}

func (s *OrderSuite) TestCreateOrderRequiresSession() {
	w := s.request(http.MethodPost, "/store/orders/create/", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *OrderSuite) TestGetOrderScopedToBuyer() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	other := s.createUser("other")
	listing := s.createListing(seller, "5.00", 1)
	s.addToCart(buyer, listing, 1)

	order, err := orderControllers.CreateOrder(s.db, buyer.ID)
	s.Require().NoError(err)

	w := s.request(http.MethodGet, "/store/orders/"+itoa(int(order.ID))+"/", s.token(other), nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/store/orders/"+itoa(int(order.ID))+"/", s.token(buyer), nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OrderSuite) TestListOrdersNewestFirst() {
	seller := s.createUser("seller")
	buyer := s.createUser("buyer")
	token := s.token(buyer)

	for _, price := range []string{"1.00", "2.00"} {
		listing := s.createListing(seller, price, 1)
		s.addToCart(buyer, listing, 1)
		_, err := orderControllers.CreateOrder(s.db, buyer.ID)
		s.Require().NoError(err)
	}

	w := s.request(http.MethodGet, "/store/orders/", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body, 2)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}
