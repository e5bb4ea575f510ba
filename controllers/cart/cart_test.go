package cartControllers_test

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

type cartEntry struct {
	Item     *models.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

func setup(t *testing.T) (*httptest.Server, *gorm.DB, string) {
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

	user := models.User{Name: "Cart User", Email: "cart@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(testJWTSecret, user)
	require.NoError(t, err)

	return srv, db, token
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

func getCart(t *testing.T, srv *httptest.Server, token string) []cartEntry {
	t.Helper()
	resp := request(t, http.MethodGet, srv.URL+"/user/cart", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []cartEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	return entries
}

func TestAddOrSetReplacesExistingEntry(t *testing.T) {
	srv, db, token := setup(t)
	item := models.Item{Name: "Paneer Tikka", Price: 220, Image: "/img/pt.jpg"}
	require.NoError(t, db.Create(&item).Error)

	resp := request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": item.ID, "quantity": 2})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": item.ID, "quantity": 5})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := getCart(t, srv, token)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestAddUnknownItemRejected(t *testing.T) {
	srv, _, token := setup(t)

	resp := request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": 999, "quantity": 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddZeroQuantityRejected(t *testing.T) {
	srv, db, token := setup(t)
	item := models.Item{Name: "Samosa", Price: 20, Image: "/img/s.jpg"}
	require.NoError(t, db.Create(&item).Error)

	resp := request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": item.ID, "quantity": 0})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveMissingEntryIsNoOp(t *testing.T) {
	srv, _, token := setup(t)

	resp := request(t, http.MethodDelete, srv.URL+"/user/cart/424242", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRemoveEntry(t *testing.T) {
	srv, db, token := setup(t)
	item := models.Item{Name: "Masala Dosa", Price: 90, Image: "/img/md.jpg"}
	require.NoError(t, db.Create(&item).Error)

	resp := request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": item.ID, "quantity": 1})
	resp.Body.Close()

	resp = request(t, http.MethodDelete, fmt.Sprintf("%s/user/cart/%d", srv.URL, item.ID), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Empty(t, getCart(t, srv, token))
}

func TestCartResolvesDanglingItem(t *testing.T) {
	srv, db, token := setup(t)
	item := models.Item{Name: "Gulab Jamun", Price: 60, Image: "/img/gj.jpg"}
	require.NoError(t, db.Create(&item).Error)

	resp := request(t, http.MethodPost, srv.URL+"/user/cart", token,
		map[string]interface{}{"item_id": item.ID, "quantity": 3})
	resp.Body.Close()

	require.NoError(t, db.Delete(&models.Item{}, item.ID).Error)

	entries := getCart(t, srv, token)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Item)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestCartRequiresAuth(t *testing.T) {
	srv, _, _ := setup(t)

	resp := request(t, http.MethodGet, srv.URL+"/user/cart", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
