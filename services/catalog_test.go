package services

import (
	"errors"
	"testing"

	"pizza-storefront-api/errs"
)

func TestListAvailableOrderingAndFilter(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db, 1, "Pepperoni Pizza", "pizza", 11.99, true)
	seedFood(t, db, 2, "Classic Burger", "burger", 8.99, true)
	seedFood(t, db, 3, "BBQ Chicken Pizza", "pizza", 13.99, true)
	seedFood(t, db, 4, "Hawaiian Pizza", "pizza", 12.99, false)

	svc := NewCatalogService(db)
	items, err := svc.ListAvailable("")
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 available items, got %d", len(items))
	}
	// category then name, case-sensitive lexicographic
	want := []string{"Classic Burger", "BBQ Chicken Pizza", "Pepperoni Pizza"}
	for i, name := range want {
		if items[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}

	pizzas, err := svc.ListAvailable("pizza")
	if err != nil {
		t.Fatalf("ListAvailable with filter failed: %v", err)
	}
	if len(pizzas) != 2 {
		t.Fatalf("expected 2 available pizzas, got %d", len(pizzas))
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	item := seedFood(t, db, 1, "Cola", "colddrink", 1.99, true)

	svc := NewCatalogService(db)
	got, err := svc.GetByID(item.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Cola" {
		t.Fatalf("expected Cola, got %q", got.Name)
	}

	if _, err := svc.GetByID(999); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	db := newTestDB(t)
	seedFood(t, db, 1, "Pepperoni Pizza", "pizza", 11.99, true)
	seedFood(t, db, 2, "Classic Burger", "burger", 8.99, true)
	seedFood(t, db, 3, "Margherita Pizza", "pizza", 9.99, true)
	seedFood(t, db, 4, "Cola", "colddrink", 1.99, false)

	categories, err := NewCatalogService(db).Categories()
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	want := []string{"burger", "pizza"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, categories)
		}
	}
}
