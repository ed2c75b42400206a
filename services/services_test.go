package services

import (
	"fmt"
	"math"
	"testing"

	"pizza-storefront-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with the full schema.
// Each test gets its own named memory DB so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderDetail{},
		&models.OrderStatusHistory{},
		&models.Banner{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id uint) models.User {
	t.Helper()
	user := models.User{
		ID:           id,
		Name:         fmt.Sprintf("User %d", id),
		Email:        fmt.Sprintf("user%d@example.com", id),
		PasswordHash: "x",
		Role:         models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedFood(t *testing.T, db *gorm.DB, id uint, name, category string, price float64, available bool) models.FoodItem {
	t.Helper()
	item := models.FoodItem{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     price,
		Available: available,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed food item: %v", err)
	}
	return item
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
