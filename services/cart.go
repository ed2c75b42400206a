package services

import (
	"errors"
	"math"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService mutates and reads a user's cart. Every operation takes the
// acting user explicitly; ownership checks run against that id before any
// write.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

// CartEntry is one cart line joined with its catalog item and priced at the
// current menu price. Orders freeze prices; carts never do.
type CartEntry struct {
	Line     models.CartLine `json:"line"`
	Subtotal float64         `json:"subtotal"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AddItem puts qty units of a food item into the user's cart. An existing line
// for the same item is incremented, never duplicated. Returns the user's new
// cart count (sum of quantities).
func (s *CartService) AddItem(userID, foodID uint, qty int) (int, error) {
	if qty < 1 {
		return 0, errs.ErrInvalidQuantity
	}

	var food models.FoodItem
	if err := s.DB.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.ErrItemNotAvailable
		}
		return 0, errs.Translate(err)
	}
	if !food.Available {
		return 0, errs.ErrItemNotAvailable
	}

	// Single upsert: the unique (user_id, food_id) index turns a rival
	// first-add into an increment instead of a constraint violation.
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "food_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", qty)}),
	}).Create(&models.CartLine{UserID: userID, FoodID: foodID, Quantity: qty}).Error
	if err != nil {
		return 0, errs.Translate(err)
	}
	return s.Count(userID)
}

// SetQuantity changes the quantity of a cart line the user owns. Quantities
// below 1 are rejected; callers remove lines explicitly. Returns the new line
// subtotal and the new cart grand total.
func (s *CartService) SetQuantity(userID, lineID uint, qty int) (subtotal, total float64, err error) {
	if qty < 1 {
		return 0, 0, errs.ErrInvalidQuantity
	}

	var line models.CartLine
	err = s.DB.Preload("Food").Where("id = ? AND user_id = ?", lineID, userID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, errs.ErrNotFound
		}
		return 0, 0, errs.Translate(err)
	}

	if err = s.DB.Model(&line).Update("quantity", qty).Error; err != nil {
		return 0, 0, errs.Translate(err)
	}

	total, err = s.Total(userID)
	if err != nil {
		return 0, 0, err
	}
	return round2(float64(qty) * line.Food.Price), total, nil
}

// RemoveItem deletes a cart line the user owns. Removing a line that does not
// exist (or belongs to someone else) reports ErrNotFound.
func (s *CartService) RemoveItem(userID, lineID uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartLine{})
	if res.Error != nil {
		return errs.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GetCart returns the user's cart lines with live catalog prices plus the
// grand total.
func (s *CartService) GetCart(userID uint) ([]CartEntry, float64, error) {
	var lines []models.CartLine
	err := s.DB.Preload("Food").Where("user_id = ?", userID).Order("id").Find(&lines).Error
	if err != nil {
		return nil, 0, errs.Translate(err)
	}

	entries := make([]CartEntry, 0, len(lines))
	var total float64
	for _, line := range lines {
		subtotal := round2(float64(line.Quantity) * line.Food.Price)
		total += subtotal
		entries = append(entries, CartEntry{Line: line, Subtotal: subtotal})
	}
	return entries, round2(total), nil
}

// Total sums quantity times current catalog price across the user's cart.
func (s *CartService) Total(userID uint) (float64, error) {
	var total float64
	err := s.DB.Model(&models.CartLine{}).
		Select("COALESCE(SUM(cart.quantity * food_items.price), 0)").
		Joins("JOIN food_items ON food_items.id = cart.food_id").
		Where("cart.user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, errs.Translate(err)
	}
	return round2(total), nil
}

// Count is the sum of quantities across the user's cart lines, used for the
// cart badge.
func (s *CartService) Count(userID uint) (int, error) {
	var count int
	err := s.DB.Model(&models.CartLine{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("user_id = ?", userID).
		Scan(&count).Error
	if err != nil {
		return 0, errs.Translate(err)
	}
	return count, nil
}
