package services

import (
	"errors"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
)

// CheckoutService converts a cart into an immutable order. The whole
// conversion runs inside one transaction: no observer may ever see an order
// without its details, or a cleared cart without its order.
type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

// PlaceOrder snapshots the user's cart into an Order + OrderDetail set at
// current catalog prices and clears the cart, atomically. A conflicting
// concurrent checkout aborts the transaction and is retried once before the
// conflict is surfaced.
func (s *CheckoutService) PlaceOrder(userID uint) (*models.Order, error) {
	var count int64
	if err := s.DB.Model(&models.CartLine{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, errs.Translate(err)
	}
	if count == 0 {
		return nil, errs.ErrEmptyCart
	}

	order, err := s.placeOnce(userID)
	if errors.Is(err, errs.ErrStorageConflict) {
		order, err = s.placeOnce(userID)
	}
	return order, err
}

func (s *CheckoutService) placeOnce(userID uint) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Preload("Food").Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			// Another checkout consumed the cart between the precondition
			// check and this transaction.
			return errs.ErrStorageConflict
		}

		var total float64
		details := make([]models.OrderDetail, 0, len(lines))
		for _, line := range lines {
			total += float64(line.Quantity) * line.Food.Price
			details = append(details, models.OrderDetail{
				FoodID:   line.FoodID,
				Quantity: line.Quantity,
				Price:    line.Food.Price,
			})
		}

		order = models.Order{
			UserID:      userID,
			Status:      models.StatusPending,
			TotalAmount: round2(total),
			Details:     details,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: userID,
			Note:      "Order placed by customer",
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		// Conditional bulk delete: a row count short of the snapshot means a
		// concurrent checkout already consumed part of this cart, so the
		// whole attempt rolls back instead of double-charging.
		res := tx.Where("user_id = ?", userID).Delete(&models.CartLine{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(lines)) {
			return errs.ErrStorageConflict
		}
		return nil
	})
	if err != nil {
		return nil, errs.Translate(err)
	}
	return &order, nil
}
