package itemController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/auth"
	orderControllers "github.com/charandeep-reddy/food-login/controllers/order"
	"github.com/charandeep-reddy/food-login/models"
	"github.com/charandeep-reddy/food-login/routes"
)

const testJWTSecret = "test-jwt-secret"

func setup(t *testing.T) (*httptest.Server, *gorm.DB, string, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.CartItem{}, &models.Item{},
		&models.Order{}, &models.OrderItem{},
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		Hub:       orderControllers.NewHub(),
		JWTSecret: testJWTSecret,
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	admin := models.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)
	adminToken, err := auth.IssueToken(testJWTSecret, admin)
	require.NoError(t, err)

	user := models.User{Name: "User", Email: "user@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	userToken, err := auth.IssueToken(testJWTSecret, user)
	require.NoError(t, err)

	return srv, db, adminToken, userToken
}

func request(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func itemBody(name string, price float64) map[string]interface{} {
	return map[string]interface{}{"name": name, "price": price, "image": "/img/x.jpg"}
}

func TestListItemsIsPublic(t *testing.T) {
	srv, db, _, _ := setup(t)
	require.NoError(t, db.Create(&models.Item{Name: "Idli", Price: 40, Image: "/img/i.jpg"}).Error)

	resp := request(t, http.MethodGet, srv.URL+"/items", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 1)
}

func TestCreateItemAdminOnly(t *testing.T) {
	srv, _, adminToken, userToken := setup(t)

	resp := request(t, http.MethodPost, srv.URL+"/items", userToken, itemBody("Dosa", 90))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, http.MethodPost, srv.URL+"/items", adminToken, itemBody("Dosa", 90))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateItemDuplicateNameRejected(t *testing.T) {
	srv, _, adminToken, _ := setup(t)

	resp := request(t, http.MethodPost, srv.URL+"/items", adminToken, itemBody("Dosa", 90))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, http.MethodPost, srv.URL+"/items", adminToken, itemBody("Dosa", 110))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "validation", body["error"])
}

func TestCreateItemZeroPriceAllowed(t *testing.T) {
	srv, _, adminToken, _ := setup(t)

	resp := request(t, http.MethodPost, srv.URL+"/items", adminToken, itemBody("Free Papad", 0))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateItemNegativePriceRejected(t *testing.T) {
	srv, _, adminToken, _ := setup(t)

	resp := request(t, http.MethodPost, srv.URL+"/items", adminToken, itemBody("Bad", -5))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAndDeleteItem(t *testing.T) {
	srv, db, adminToken, _ := setup(t)
	item := models.Item{Name: "Vada", Price: 30, Image: "/img/v.jpg"}
	require.NoError(t, db.Create(&item).Error)
	url := fmt.Sprintf("%s/items/%d", srv.URL, item.ID)

	resp := request(t, http.MethodPut, url, adminToken, map[string]interface{}{"price": 35})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 35.0, got.Price)
	assert.Equal(t, "Vada", got.Name)

	resp = request(t, http.MethodDelete, url, adminToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, http.MethodGet, url, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMissingItem(t *testing.T) {
	srv, _, adminToken, _ := setup(t)

	resp := request(t, http.MethodDelete, srv.URL+"/items/9999", adminToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
