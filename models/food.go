package models

import "time"

// FoodItem is a catalog entry. Items referenced by historical order details are
// never hard-deleted, only switched to Available=false.
type FoodItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
