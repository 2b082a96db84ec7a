// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/wholesalenaija/admin-gateway/internal/config"
	"github.com/wholesalenaija/admin-gateway/internal/controller"
	"github.com/wholesalenaija/admin-gateway/internal/middleware"
	"github.com/wholesalenaija/admin-gateway/internal/services"
	"github.com/wholesalenaija/admin-gateway/internal/upstream"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	backend *httptest.Server
	token   string
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("handler-test-secret")

	mux := http.NewServeMux()
	mux.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"p1","name":"Solar Lamp","status":"pending","seller":"Ada Traders","price":4500},
			{"id":"p2","name":"Phone Case","status":"approved","seller":"Lagos Gadgets","price":1200}
		]}`))
	})
	mux.HandleFunc("/admin/products/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"p1","name":"Solar Lamp","status":"approved","seller":"Ada Traders","price":4500}}`))
	})
	s.backend = httptest.NewServer(mux)

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: s.backend.URL, ServiceToken: "svc", Timeout: 5})
	feed := controller.NewFeed(10)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	s.Require().NoError(err)

	cfg := &config.Config{}
	cfg.Admin.Email = "admin@wholesalenaija.com"
	cfg.Admin.PasswordHash = string(hash)
	cfg.JWT.AccessTokenTTL = 1
	cfg.JWT.RefreshTokenTTL = 24

	authHandler := NewAuthHandler(services.NewAuthService(cfg))
	productHandler := NewProductHandler(services.NewProductService(client, feed))
	dashboardHandler := NewDashboardHandler(nil, feed)

	r := gin.New()
	r.POST("/v1/auth/login", authHandler.Login)
	r.POST("/v1/auth/refresh", authHandler.Refresh)

	admin := r.Group("/v1/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/products", productHandler.ListProducts)
		admin.PATCH("/products/:id/status", productHandler.UpdateProductStatus)
		admin.GET("/notifications", dashboardHandler.ListNotifications)
	}
	s.router = r

	token, err := utils.GenerateJWT("admin@wholesalenaija.com", "admin", 1)
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlersTestSuite) TearDownTest() {
	s.backend.Close()
}

func (s *HandlersTestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) TestLoginSuccess() {
	w := s.request(http.MethodPost, "/v1/auth/login", gin.H{
		"email":    "admin@wholesalenaija.com",
		"password": "correct-horse",
	}, "")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.NotEmpty(resp.Data.AccessToken)
	s.NotEmpty(resp.Data.RefreshToken)
}

func (s *HandlersTestSuite) TestLoginWrongPassword() {
	w := s.request(http.MethodPost, "/v1/auth/login", gin.H{
		"email":    "admin@wholesalenaija.com",
		"password": "wrong",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestLoginValidation() {
	w := s.request(http.MethodPost, "/v1/auth/login", gin.H{"email": "not-an-email"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestRefreshRoundTrip() {
	login := s.request(http.MethodPost, "/v1/auth/login", gin.H{
		"email":    "admin@wholesalenaija.com",
		"password": "correct-horse",
	}, "")
	s.Require().Equal(http.StatusOK, login.Code)

	var resp struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(login.Body.Bytes(), &resp))

	w := s.request(http.MethodPost, "/v1/auth/refresh", gin.H{"refresh_token": resp.Data.RefreshToken}, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestProductsRequireAuth() {
	w := s.request(http.MethodGet, "/v1/admin/products", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/v1/admin/products", nil, "garbage-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestProductsRejectNonAdmin() {
	token, err := utils.GenerateJWT("buyer@example.com", "buyer", 1)
	s.Require().NoError(err)

	w := s.request(http.MethodGet, "/v1/admin/products", nil, token)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestListProducts() {
	w := s.request(http.MethodGet, "/v1/admin/products?limit=1&page=2", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("2", w.Header().Get("X-Total-Count"))
	s.Equal("2", w.Header().Get("X-Page"))

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Require().Len(resp.Data, 1)
	s.Equal("p2", resp.Data[0].ID)
	s.Equal("Approved", resp.Data[0].Status)
}

func (s *HandlersTestSuite) TestApproveProduct() {
	// Prime the held list.
	w := s.request(http.MethodGet, "/v1/admin/products", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPatch, "/v1/admin/products/p1/status", gin.H{"status": "approved"}, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Approved", resp.Data.Status)
}

func (s *HandlersTestSuite) TestApproveProductRejectsBadStatus() {
	w := s.request(http.MethodPatch, "/v1/admin/products/p1/status", gin.H{"status": "archived"}, s.token)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestApproveUnknownProduct() {
	w := s.request(http.MethodGet, "/v1/admin/products", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPatch, "/v1/admin/products/nope/status", gin.H{"status": "approved"}, s.token)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestNotificationsFeed() {
	w := s.request(http.MethodGet, "/v1/admin/notifications", nil, s.token)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
