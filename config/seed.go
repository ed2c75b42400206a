package config

import (
	"log"

	"pizza-storefront-api/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the admin account and a starter menu on first run. Registration
// only ever creates customers, so the seeded admin is the only one.
func Seed() {
	seedAdmin()
	seedCatalog()
}

func seedAdmin() {
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Phone:        "1234567890",
		Address:      "Admin Address",
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Println("✅ Admin account seeded:", email)
}

func seedCatalog() {
	var count int64
	DB.Model(&models.FoodItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.FoodItem{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and basil", Price: 9.99, Category: "pizza", Available: true},
		{Name: "Pepperoni Pizza", Description: "Pizza topped with pepperoni slices and cheese", Price: 11.99, Category: "pizza", Available: true},
		{Name: "Vegetarian Pizza", Description: "Pizza loaded with bell peppers, onions, mushrooms, and olives", Price: 10.99, Category: "pizza", Available: true},
		{Name: "Hawaiian Pizza", Description: "Pizza with ham and pineapple toppings", Price: 12.99, Category: "pizza", Available: true},
		{Name: "BBQ Chicken Pizza", Description: "Pizza with BBQ sauce, chicken, red onions, and cilantro", Price: 13.99, Category: "pizza", Available: true},
		{Name: "Classic Burger", Description: "Beef patty with lettuce, tomato, onion, and special sauce", Price: 8.99, Category: "burger", Available: true},
		{Name: "Cheeseburger", Description: "Beef patty with American cheese, lettuce, tomato, and onion", Price: 9.99, Category: "burger", Available: true},
		{Name: "Bacon Burger", Description: "Beef patty with bacon, cheese, lettuce, and tomato", Price: 10.99, Category: "burger", Available: true},
		{Name: "Veggie Burger", Description: "Plant-based patty with lettuce, tomato, and special sauce", Price: 9.99, Category: "burger", Available: true},
		{Name: "Chicken Burger", Description: "Grilled chicken breast with lettuce, tomato, and mayo", Price: 9.99, Category: "burger", Available: true},
		{Name: "Cola", Description: "Refreshing cola drink", Price: 1.99, Category: "colddrink", Available: true},
		{Name: "Diet Cola", Description: "Sugar-free cola drink", Price: 1.99, Category: "colddrink", Available: true},
		{Name: "Lemon Soda", Description: "Refreshing lemon-flavored soda", Price: 1.99, Category: "colddrink", Available: true},
		{Name: "Orange Juice", Description: "Freshly squeezed orange juice", Price: 2.99, Category: "colddrink", Available: true},
		{Name: "Bottled Water", Description: "Pure mineral water", Price: 1.49, Category: "colddrink", Available: true},
	}
	if err := DB.Create(&items).Error; err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}
	log.Println("✅ Starter menu seeded")
}
