package models

import "time"

// CartLine is one (user, food item, quantity) row. The unique index enforces at
// most one line per (user, food) pair; re-adding an item increments Quantity.
type CartLine struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_food"`
	FoodID    uint      `json:"food_id" gorm:"not null;uniqueIndex:idx_cart_user_food"`
	Food      FoodItem  `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartLine) TableName() string { return "cart" }
