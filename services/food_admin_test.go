package services

import (
	"errors"
	"testing"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"
)

func TestDeleteFoodWithOrderHistoryDisablesInstead(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)
	item := seedFood(t, db, 1, "Bacon Burger", "burger", 10.99, true)

	order := models.Order{UserID: 1, Status: models.StatusDelivered, TotalAmount: 10.99}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	detail := models.OrderDetail{OrderID: order.ID, FoodID: item.ID, Quantity: 1, Price: 10.99}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("failed to seed detail: %v", err)
	}

	hardDeleted, err := NewFoodAdminService(db).Delete(item.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if hardDeleted {
		t.Fatal("expected soft-disable, got hard delete")
	}

	var stored models.FoodItem
	if err := db.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("item must survive for order history: %v", err)
	}
	if stored.Available {
		t.Fatal("expected item to be disabled")
	}
	var details int64
	db.Model(&models.OrderDetail{}).Where("food_id = ?", item.ID).Count(&details)
	if details != 1 {
		t.Fatalf("order history lost its detail row: %d", details)
	}
}

func TestDeleteUnreferencedFoodRemovesCartLines(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)
	item := seedFood(t, db, 1, "Lemon Soda", "colddrink", 1.99, true)

	if _, err := NewCartService(db).AddItem(1, item.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	hardDeleted, err := NewFoodAdminService(db).Delete(item.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !hardDeleted {
		t.Fatal("expected hard delete for unreferenced item")
	}

	var items, lines int64
	db.Model(&models.FoodItem{}).Count(&items)
	db.Model(&models.CartLine{}).Count(&lines)
	if items != 0 || lines != 0 {
		t.Fatalf("expected item and cart lines gone, got %d items, %d lines", items, lines)
	}
}

func TestDeleteMissingFood(t *testing.T) {
	db := newTestDB(t)
	if _, err := NewFoodAdminService(db).Delete(999); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
