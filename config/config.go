package config

import (
	"log"
	"os"

	"pizza-storefront-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "pizza_storefront_super_secret_2024"))

// UploadDir is the root of the shared upload area; food and banner images live
// in subdirectories.
var UploadDir = getEnv("UPLOAD_DIR", "uploads")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FoodUploadDir is where processed food images are written.
func FoodUploadDir() string { return UploadDir + "/food" }

// BannerUploadDir is where processed banner images are written.
func BannerUploadDir() string { return UploadDir + "/banners" }

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "pizza_storefront.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderDetail{},
		&models.OrderStatusHistory{},
		&models.Banner{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
