package services

import (
	"errors"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"
	"pizza-storefront-api/statemachine"

	"gorm.io/gorm"
)

// OrderService reads order history and drives the admin status workflow.
// Customer-facing reads filter by the requesting user; admin reads do not.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, errs.Translate(err)
	}
	return orders, nil
}

// DetailForUser returns one of the user's orders with its detail lines. An
// order belonging to someone else is indistinguishable from a missing one.
func (s *OrderService) DetailForUser(userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Details.Food").Preload("StatusHistory").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Translate(err)
	}
	return &order, nil
}

// ListAll returns every order, optionally filtered by status or user. Admin
// only; the caller's role is enforced at the route boundary.
func (s *OrderService) ListAll(status models.OrderStatus, userID uint) ([]models.Order, error) {
	query := s.DB.Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	var orders []models.Order
	if err := query.Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, errs.Translate(err)
	}
	return orders, nil
}

// Detail returns any order with its detail lines, without an ownership gate.
func (s *OrderService) Detail(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Details.Food").Preload("StatusHistory").Preload("User").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Translate(err)
	}
	return &order, nil
}

// UpdateStatus moves an order along the status workflow and appends an audit
// trail row. The write is guarded by the previously read status so two
// concurrent transitions cannot both succeed; the history row commits with it
// or not at all.
func (s *OrderService) UpdateStatus(orderID uint, next models.OrderStatus, changedBy uint, note string) (*models.Order, error) {
	if !statemachine.IsValidStatus(next) {
		return nil, errs.ErrInvalidTransition
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Translate(err)
	}

	if err := statemachine.CanTransition(order.Status, next); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, order.Status).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrStorageConflict
		}

		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: order.Status,
			ToStatus:   next,
			ChangedBy:  changedBy,
			Note:       note,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, errs.Translate(err)
	}

	order.Status = next
	return &order, nil
}
