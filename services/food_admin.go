package services

import (
	"errors"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
)

// FoodAdminService is the admin-side catalog CRUD.
type FoodAdminService struct {
	DB *gorm.DB
}

func NewFoodAdminService(db *gorm.DB) *FoodAdminService {
	return &FoodAdminService{DB: db}
}

// ListAll returns the whole catalog, available or not.
func (s *FoodAdminService) ListAll() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.DB.Order("category, name").Find(&items).Error; err != nil {
		return nil, errs.Translate(err)
	}
	return items, nil
}

func (s *FoodAdminService) Create(item *models.FoodItem) error {
	return errs.Translate(s.DB.Create(item).Error)
}

func (s *FoodAdminService) Update(item *models.FoodItem) error {
	return errs.Translate(s.DB.Save(item).Error)
}

// Delete removes a catalog entry. An item referenced by historical order
// details must survive for order history, so it is soft-disabled instead of
// deleted; the boolean reports whether a hard delete happened. Cart lines
// referencing a hard-deleted item are removed with it.
func (s *FoodAdminService) Delete(foodID uint) (hardDeleted bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.FoodItem
		if err := tx.First(&item, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.OrderDetail{}).Where("food_id = ?", foodID).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return tx.Model(&item).Update("available", false).Error
		}

		if err := tx.Where("food_id = ?", foodID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		hardDeleted = true
		return nil
	})
	if err != nil {
		return false, errs.Translate(err)
	}
	return hardDeleted, nil
}
