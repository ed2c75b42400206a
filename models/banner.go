package models

import "time"

// Banner is promotional image metadata shown on the storefront. StartDate and
// EndDate bound an optional active window; Position orders the carousel.
type Banner struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"not null"`
	ImagePath string     `json:"image_path" gorm:"not null"`
	Link      string     `json:"link"`
	Position  int        `json:"position" gorm:"default:0"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
