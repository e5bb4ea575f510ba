package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Address:      "12 MG Road, Bengaluru",
		Phone:        "9876543210",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createItem(t *testing.T, db *gorm.DB, name string, price float64) models.Item {
	t.Helper()
	item := models.Item{Name: name, Price: price, Image: "/img/" + name + ".jpg"}
	require.NoError(t, db.Create(&item).Error)
	return item
}
