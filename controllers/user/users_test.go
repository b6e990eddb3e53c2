package userControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/cxsxrrrr/PokeMart/models"
	"github.com/cxsxrrrr/PokeMart/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type UserSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *UserSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:usertest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), db.AutoMigrate(&models.User{}, &models.Session{}))

	router := gin.New()
	routes.SetupRoutes(router, db)

	s.db = db
	s.router = router
}

func (s *UserSuite) SetupTest() {
	s.db.Exec("DELETE FROM sessions")
	s.db.Exec("DELETE FROM users")
}

func (s *UserSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
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

func (s *UserSuite) register(username, email string) *httptest.ResponseRecorder {
	return s.request(http.MethodPost, "/users/create/", "", gin.H{
		"username": username,
		"email":    email,
		"password": "pikapika123",
	})
}

func (s *UserSuite) login(username string) string {
	w := s.request(http.MethodPost, "/users/login/", "", gin.H{
		"username": username,
		"password": "pikapika123",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	token, _ := body["token"].(string)
	s.Require().NotEmpty(token)
	return token
}

func (s *UserSuite) TestCreateUser() {
	w := s.register("misty", "misty@example.com")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("misty", body["username"])
	s.Equal("customer", body["role"])
}

func (s *UserSuite) TestDuplicateUsernameConflicts() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)

	w := s.register("misty", "other@example.com")
	s.Require().Equal(http.StatusConflict, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Username already exists.", body["error"])
}

func (s *UserSuite) TestDuplicateEmailConflicts() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)

	w := s.register("brock", "misty@example.com")
	s.Require().Equal(http.StatusConflict, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Email already exists.", body["error"])
}

func (s *UserSuite) TestLoginWrongPassword() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)

	w := s.request(http.MethodPost, "/users/login/", "", gin.H{
		"username": "misty",
		"password": "wrong-password",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *UserSuite) TestCurrentUser() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)
	token := s.login("misty")

	w := s.request(http.MethodGet, "/users/me/", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("misty", body["username"])

	w = s.request(http.MethodGet, "/users/me/", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *UserSuite) TestLogoutKillsSession() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)
	token := s.login("misty")

	w := s.request(http.MethodPost, "/users/logout/", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/users/me/", token, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *UserSuite) TestGetUserPublic() {
	s.Require().Equal(http.StatusCreated, s.register("misty", "misty@example.com").Code)

	var user models.User
	s.Require().NoError(s.db.First(&user, "username = ?", "misty").Error)

	w := s.request(http.MethodGet, "/users/"+strconv.Itoa(int(user.ID))+"/", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("misty", body["username"])

	w = s.request(http.MethodGet, "/users/424242/", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestUserSuite(t *testing.T) {
	suite.Run(t, new(UserSuite))
}
