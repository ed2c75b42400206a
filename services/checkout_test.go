package services

import (
	"errors"
	"testing"

	"pizza-storefront-api/errs"
	"pizza-storefront-api/models"

	"gorm.io/gorm"
)

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 7)
	seedFood(t, db, 3, "Margherita Pizza", "pizza", 9.99, true)
	seedFood(t, db, 5, "Pepperoni Pizza", "pizza", 11.99, true)

	cart := NewCartService(db)
	if _, err := cart.AddItem(7, 3, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cart.AddItem(7, 5, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := NewCheckoutService(db).PlaceOrder(7)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if order.UserID != 7 {
		t.Fatalf("expected order for user 7, got %d", order.UserID)
	}
	if order.Status != models.StatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if !almostEqual(order.TotalAmount, 31.97) {
		t.Fatalf("expected total 31.97, got %v", order.TotalAmount)
	}

	var details []models.OrderDetail
	if err := db.Where("order_id = ?", order.ID).Order("food_id").Find(&details).Error; err != nil {
		t.Fatalf("failed to read details: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 detail rows, got %d", len(details))
	}
	if details[0].FoodID != 3 || details[0].Quantity != 2 || !almostEqual(details[0].Price, 9.99) {
		t.Fatalf("unexpected first detail: %+v", details[0])
	}
	if details[1].FoodID != 5 || details[1].Quantity != 1 || !almostEqual(details[1].Price, 11.99) {
		t.Fatalf("unexpected second detail: %+v", details[1])
	}

	var cartCount int64
	db.Model(&models.CartLine{}).Where("user_id = ?", 7).Count(&cartCount)
	if cartCount != 0 {
		t.Fatalf("expected empty cart after checkout, got %d lines", cartCount)
	}

	// Placing the order writes the initial audit trail row
	var trail []models.OrderStatusHistory
	db.Where("order_id = ?", order.ID).Find(&trail)
	if len(trail) != 1 {
		t.Fatalf("expected 1 initial history row, got %d", len(trail))
	}
	if trail[0].ToStatus != models.StatusPending || trail[0].ChangedBy != 7 {
		t.Fatalf("unexpected initial history row: %+v", trail[0])
	}
}

func TestPlaceOrderFreezesPrices(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)
	food := seedFood(t, db, 1, "Veggie Burger", "burger", 9.99, true)

	cart := NewCartService(db)
	if _, err := cart.AddItem(1, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := NewCheckoutService(db).PlaceOrder(1)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	// A later menu price change must not touch the recorded order
	if err := db.Model(&food).Update("price", 19.99).Error; err != nil {
		t.Fatalf("failed to change price: %v", err)
	}

	var detail models.OrderDetail
	if err := db.Where("order_id = ?", order.ID).First(&detail).Error; err != nil {
		t.Fatalf("failed to read detail: %v", err)
	}
	if !almostEqual(detail.Price, 9.99) {
		t.Fatalf("expected frozen price 9.99, got %v", detail.Price)
	}
	var stored models.Order
	db.First(&stored, order.ID)
	if !almostEqual(stored.TotalAmount, 9.99) {
		t.Fatalf("expected frozen total 9.99, got %v", stored.TotalAmount)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)

	_, err := NewCheckoutService(db).PlaceOrder(1)
	if !errors.Is(err, errs.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("expected no orders after empty-cart checkout, got %d", orders)
	}
}

func TestPlaceOrderIsAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)
	seedFood(t, db, 1, "Cheeseburger", "burger", 9.99, true)

	cart := NewCartService(db)
	if _, err := cart.AddItem(1, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Sabotage the detail insert so the transaction fails mid-flight
	if err := db.Migrator().DropTable(&models.OrderDetail{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if _, err := NewCheckoutService(db).PlaceOrder(1); err == nil {
		t.Fatal("expected PlaceOrder to fail")
	}

	// Nothing partial may survive the rollback: no order, cart untouched
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("expected no committed orders, got %d", orders)
	}
	var lines []models.CartLine
	db.Where("user_id = ?", 1).Find(&lines)
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected cart left exactly as before, got %+v", lines)
	}
}

// stealCartLines registers a hook that fires a rival delete against the
// user's cart right before checkout's own bulk delete, inside the same
// transaction. The bulk delete then affects fewer rows than the snapshot.
func stealCartLines(t *testing.T, db *gorm.DB, name, sql string, once bool) {
	t.Helper()
	fired := false
	err := db.Callback().Delete().Before("gorm:delete").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table != "cart" {
			return
		}
		if once && fired {
			return
		}
		fired = true
		if _, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context, sql); err != nil {
			t.Errorf("rival delete failed: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}
}

func TestPlaceOrderConflictRollsBackCleanly(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 7)
	seedFood(t, db, 3, "Margherita Pizza", "pizza", 9.99, true)
	seedFood(t, db, 5, "Pepperoni Pizza", "pizza", 11.99, true)

	cart := NewCartService(db)
	if _, err := cart.AddItem(7, 3, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cart.AddItem(7, 5, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// The rival wins on every attempt, so the conflict must surface
	stealCartLines(t, db, "rival_checkout", "DELETE FROM cart WHERE user_id = 7 AND food_id = 5", false)

	if _, err := NewCheckoutService(db).PlaceOrder(7); !errors.Is(err, errs.ErrStorageConflict) {
		t.Fatalf("expected ErrStorageConflict, got %v", err)
	}

	// Every attempt rolled back whole: no order, no details, no history,
	// and the cart restored to exactly its pre-checkout state
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Fatalf("expected no committed orders, got %d", orders)
	}
	var details int64
	db.Model(&models.OrderDetail{}).Count(&details)
	if details != 0 {
		t.Fatalf("expected no detail rows, got %d", details)
	}
	var trail int64
	db.Model(&models.OrderStatusHistory{}).Count(&trail)
	if trail != 0 {
		t.Fatalf("expected no history rows, got %d", trail)
	}
	var cartCount int64
	db.Model(&models.CartLine{}).Where("user_id = ?", 7).Count(&cartCount)
	if cartCount != 2 {
		t.Fatalf("expected both cart lines restored, got %d", cartCount)
	}
}

func TestPlaceOrderRetriesTransientConflict(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 1)
	seedFood(t, db, 1, "Cheeseburger", "burger", 9.99, true)

	cart := NewCartService(db)
	if _, err := cart.AddItem(1, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// The rival wins once; the automatic retry must absorb the conflict
	stealCartLines(t, db, "transient_rival", "DELETE FROM cart WHERE user_id = 1", true)

	order, err := NewCheckoutService(db).PlaceOrder(1)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if !almostEqual(order.TotalAmount, 19.98) {
		t.Fatalf("expected total 19.98, got %v", order.TotalAmount)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Fatalf("expected exactly 1 order, got %d", orders)
	}
	var cartCount int64
	db.Model(&models.CartLine{}).Where("user_id = ?", 1).Count(&cartCount)
	if cartCount != 0 {
		t.Fatalf("expected empty cart after checkout, got %d lines", cartCount)
	}
}
