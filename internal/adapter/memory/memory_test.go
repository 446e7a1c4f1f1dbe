package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitfuel/internal/adapter/storetest"
	"fitfuel/internal/domain"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.Store {
		db := New()
		t.Cleanup(func() { db.Close() })
		return db
	})
}

func TestListMealsReturnsCopies(t *testing.T) {
	db := New()
	ctx := context.Background()

	id, err := db.InsertMeal(ctx, domain.Meal{Name: "Oats", Type: domain.MealBreakfast, Calories: 400, Timestamp: time.Now()})
	if err != nil {
		t.Fatalf("InsertMeal: %v", err)
	}

	meals, _ := db.ListMeals(ctx)
	meals[0].Calories = 1

	got, err := db.GetMeal(ctx, id)
	if err != nil {
		t.Fatalf("GetMeal: %v", err)
	}
	if got.Calories != 400 {
		t.Errorf("expected stored meal to be unchanged, got %d calories", got.Calories)
	}
}

func TestTimestampsStoredAsUTC(t *testing.T) {
	db := New()
	ctx := context.Background()

	local := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	id, _ := db.InsertSession(ctx, domain.TrainingSession{Title: "Bike", Type: domain.TrainingCardio, Intensity: domain.IntensityLow, Duration: 30, Timestamp: local})

	got, err := db.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Timestamp.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Timestamp.Location())
	}
	if !got.Timestamp.Equal(local) {
		t.Errorf("expected %v, got %v", local, got.Timestamp)
	}
}

func TestClearPurchasedWithoutMatchesDoesNotNotify(t *testing.T) {
	db := New()
	ch, cancel := db.Subscribe(domain.KindGrocery)
	defer cancel()

	n, err := db.DeletePurchasedGroceryItems(context.Background())
	if err != nil {
		t.Fatalf("DeletePurchasedGroceryItems: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 removed, got %d", n)
	}
	if len(ch) != 0 {
		t.Error("expected no notification")
	}
}

func TestListByCategoryPropagatesListError(t *testing.T) {
	db := New()
	if _, err := db.InsertGroceryItem(context.Background(), domain.GroceryItem{Name: "Tea", Category: domain.GroceryBeverages}); err != nil {
		t.Fatalf("InsertGroceryItem: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := db.ListGroceryItemsByCategory(ctx, domain.GroceryBeverages)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if items != nil {
		t.Errorf("expected no items on error, got %v", items)
	}
}
