package services

import (
	"errors"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
)

// CatalogService is read-only access to the food catalog.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListAvailable returns available items ordered by category then name. An
// empty category means no filter.
func (s *CatalogService) ListAvailable(category string) ([]models.FoodItem, error) {
	query := s.DB.Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []models.FoodItem
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		return nil, errs.Translate(err)
	}
	return items, nil
}

// GetByID returns one catalog entry, available or not.
func (s *CatalogService) GetByID(foodID uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.DB.First(&item, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Translate(err)
	}
	return &item, nil
}

// Categories returns the distinct categories of available items.
func (s *CatalogService) Categories() ([]string, error) {
	var categories []string
	err := s.DB.Model(&models.FoodItem{}).
		Where("available = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errs.Translate(err)
	}
	return categories, nil
}
