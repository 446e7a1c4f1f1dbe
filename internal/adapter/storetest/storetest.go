// Package storetest holds behaviour checks shared by every domain.Store
// implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"fitfuel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises s against the repository contracts. s must be empty.
func Run(t *testing.T, newStore func(t *testing.T) domain.Store) {
	t.Run("meals", func(t *testing.T) { testMeals(t, newStore(t)) })
	t.Run("sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("groceries", func(t *testing.T) { testGroceries(t, newStore(t)) })
	t.Run("bulk purchase", func(t *testing.T) { testBulkPurchase(t, newStore(t)) })
	t.Run("profile", func(t *testing.T) { testProfile(t, newStore(t)) })
	t.Run("flags", func(t *testing.T) { testFlags(t, newStore(t)) })
	t.Run("notifications", func(t *testing.T) { testNotifications(t, newStore(t)) })
}

var day = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

func testMeals(t *testing.T, s domain.Store) {
	ctx := context.Background()

	all, err := s.ListMeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	breakfast := domain.Meal{Name: "Oats", Type: domain.MealBreakfast, Calories: 400, Protein: 20.5, Carbs: 60, Fat: 8, Timestamp: day.Add(7 * time.Hour)}
	lunch := domain.Meal{Name: "Rice", Type: domain.MealLunch, Calories: 650, Protein: 45, Carbs: 70, Fat: 12.5, Timestamp: day.Add(13 * time.Hour), Notes: "post workout"}
	midnight := domain.Meal{Name: "Toast", Type: domain.MealSnack, Calories: 150, Timestamp: day.Add(24 * time.Hour)}

	id1, err := s.InsertMeal(ctx, breakfast)
	require.NoError(t, err)
	id2, err := s.InsertMeal(ctx, lunch)
	require.NoError(t, err)
	_, err = s.InsertMeal(ctx, midnight)
	require.NoError(t, err)
	assert.NotZero(t, id1)
	assert.NotEqual(t, id1, id2)

	got, err := s.GetMeal(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Name)
	assert.Equal(t, domain.MealLunch, got.Type)
	assert.InDelta(t, 12.5, got.Fat, 1e-9)
	assert.Equal(t, "post workout", got.Notes)
	assert.True(t, lunch.Timestamp.Equal(got.Timestamp))

	inDay, err := s.ListMealsBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, inDay, 2, "upper bound is exclusive")
	assert.Equal(t, id2, inDay[0].ID, "newest first")
	assert.Equal(t, id1, inDay[1].ID)

	all, err = s.ListMeals(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got.Calories = 700
	require.NoError(t, s.UpdateMeal(ctx, *got))
	got, err = s.GetMeal(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, 700, got.Calories)

	require.NoError(t, s.DeleteMeal(ctx, id1))
	_, err = s.GetMeal(ctx, id1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteMeal(ctx, id1), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateMeal(ctx, domain.Meal{ID: 9999, Name: "x", Type: domain.MealSnack}), domain.ErrNotFound)
}

func testSessions(t *testing.T, s domain.Store) {
	ctx := context.Background()

	morning := domain.TrainingSession{Title: "Squats", Type: domain.TrainingStrength, Intensity: domain.IntensityHigh, Duration: 60, Timestamp: day.Add(6 * time.Hour)}
	evening := domain.TrainingSession{Title: "Run", Type: domain.TrainingCardio, Intensity: domain.IntensityModerate, Duration: 30, Timestamp: day.Add(18 * time.Hour), Completed: true}
	yesterday := domain.TrainingSession{Title: "Yoga", Type: domain.TrainingFlexibility, Intensity: domain.IntensityLow, Duration: 45, Timestamp: day.Add(-2 * time.Hour)}

	id1, err := s.InsertSession(ctx, morning)
	require.NoError(t, err)
	id2, err := s.InsertSession(ctx, evening)
	require.NoError(t, err)
	_, err = s.InsertSession(ctx, yesterday)
	require.NoError(t, err)

	inDay, err := s.ListSessionsBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, inDay, 2)
	assert.Equal(t, id2, inDay[0].ID)
	assert.True(t, inDay[0].Completed)
	assert.Equal(t, domain.IntensityModerate, inDay[0].Intensity)

	got, err := s.GetSession(ctx, id1)
	require.NoError(t, err)
	got.Duration = 75
	require.NoError(t, s.UpdateSession(ctx, *got))
	got, err = s.GetSession(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, 75, got.Duration)

	all, err := s.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, s.DeleteSession(ctx, id1))
	_, err = s.GetSession(ctx, id1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testGroceries(t *testing.T, s domain.Store) {
	ctx := context.Background()

	items := []domain.GroceryItem{
		{Name: "Milk", Quantity: "1 l", Category: domain.GroceryDairy, Purchased: true},
		{Name: "Eggs", Quantity: "12", Category: domain.GroceryProtein},
		{Name: "Chicken", Quantity: "2 lbs", Category: domain.GroceryProtein, Purchased: true},
		{Name: "Apples", Quantity: "6", Category: domain.GroceryFruits},
	}
	for _, it := range items {
		_, err := s.InsertGroceryItem(ctx, it)
		require.NoError(t, err)
	}

	all, err := s.ListGroceryItems(ctx)
	require.NoError(t, err)
	var names []string
	for _, it := range all {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Milk", "Apples", "Chicken", "Eggs"}, names, "ordered by category, then name")

	protein, err := s.ListGroceryItemsByCategory(ctx, domain.GroceryProtein)
	require.NoError(t, err)
	require.Len(t, protein, 2)
	assert.Equal(t, "Chicken", protein[0].Name)

	none, err := s.ListGroceryItemsByCategory(ctx, domain.GroceryBeverages)
	require.NoError(t, err)
	assert.Empty(t, none)

	eggs := protein[1]
	eggs.Quantity = "24"
	require.NoError(t, s.UpdateGroceryItem(ctx, eggs))
	got, err := s.GetGroceryItem(ctx, eggs.ID)
	require.NoError(t, err)
	assert.Equal(t, "24", got.Quantity)

	n, err := s.DeletePurchasedGroceryItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err = s.ListGroceryItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err = s.DeletePurchasedGroceryItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.DeleteGroceryItem(ctx, eggs.ID))
	assert.ErrorIs(t, s.DeleteGroceryItem(ctx, eggs.ID), domain.ErrNotFound)
}

func testProfile(t *testing.T, s domain.Store) {
	ctx := context.Background()

	p, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	want := domain.UserProfile{
		Name:              "Alex",
		Goal:              domain.GoalBuildMuscle,
		TrainingFrequency: domain.FrequencyFourToFive,
		DietaryPreference: domain.DietVegetarian,
	}
	want.SetTargets(domain.DefaultTargets(want.Goal, want.TrainingFrequency))
	require.NoError(t, s.SaveProfile(ctx, want))

	p, err = s.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, want, *p)

	want.Name = "Sam"
	want.OnboardingCompleted = true
	require.NoError(t, s.SaveProfile(ctx, want))
	p, err = s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *p, "save replaces the single profile")
}

func testFlags(t *testing.T, s domain.Store) {
	ctx := context.Background()

	id, err := s.InsertGroceryItem(ctx, domain.GroceryItem{Name: "Oats", Quantity: "1 kg", Category: domain.GroceryGrains})
	require.NoError(t, err)
	require.NoError(t, s.SetFlag(ctx, domain.KindGrocery, id, domain.FlagPurchased, true))
	it, err := s.GetGroceryItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, it.Purchased)
	assert.Equal(t, "1 kg", it.Quantity, "other fields untouched")

	sid, err := s.InsertSession(ctx, domain.TrainingSession{Title: "Row", Type: domain.TrainingCardio, Intensity: domain.IntensityLow, Duration: 20, Timestamp: day})
	require.NoError(t, err)
	require.NoError(t, s.SetFlag(ctx, domain.KindTraining, sid, domain.FlagCompleted, true))
	sess, err := s.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.True(t, sess.Completed)

	assert.ErrorIs(t, s.SetFlag(ctx, domain.KindProfile, domain.ProfileID, domain.FlagOnboardingCompleted, true), domain.ErrNotFound)
	require.NoError(t, s.SaveProfile(ctx, domain.UserProfile{Name: "Alex", Goal: domain.GoalLoseWeight, TrainingFrequency: domain.FrequencySixPlus, DietaryPreference: domain.DietKeto}))
	require.NoError(t, s.SetFlag(ctx, domain.KindProfile, domain.ProfileID, domain.FlagOnboardingCompleted, true))
	p, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.True(t, p.OnboardingCompleted)
	assert.Equal(t, "Alex", p.Name)

	assert.ErrorIs(t, s.SetFlag(ctx, domain.KindGrocery, 9999, domain.FlagPurchased, true), domain.ErrNotFound)
	assert.ErrorIs(t, s.SetFlag(ctx, domain.KindMeal, 1, domain.FlagCompleted, true), domain.ErrUnsupportedFlag)
	assert.ErrorIs(t, s.SetFlag(ctx, domain.KindGrocery, id, domain.FlagCompleted, true), domain.ErrUnsupportedFlag)
}

func testBulkPurchase(t *testing.T, s domain.Store) {
	ctx := context.Background()

	n, err := s.SetAllGroceryItemsPurchased(ctx, true)
	require.NoError(t, err)
	assert.Zero(t, n, "empty list")

	for _, it := range []domain.GroceryItem{
		{Name: "Oats", Category: domain.GroceryGrains},
		{Name: "Kale", Category: domain.GroceryVegetables, Purchased: true},
		{Name: "Rice", Category: domain.GroceryGrains},
	} {
		_, err := s.InsertGroceryItem(ctx, it)
		require.NoError(t, err)
	}

	groceries, cancel := s.Subscribe(domain.KindGrocery)
	defer cancel()

	n, err = s.SetAllGroceryItemsPurchased(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "only items that changed are counted")
	select {
	case <-groceries:
	case <-time.After(time.Second):
		t.Fatal("no notification after bulk purchase")
	}

	all, err := s.ListGroceryItems(ctx)
	require.NoError(t, err)
	for _, it := range all {
		assert.True(t, it.Purchased, it.Name)
	}

	n, err = s.SetAllGroceryItemsPurchased(ctx, true)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, groceries, "no-op bulk update does not notify")

	n, err = s.SetAllGroceryItemsPurchased(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	all, err = s.ListGroceryItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, domain.CountUnpurchased(all))
}

func testNotifications(t *testing.T, s domain.Store) {
	ctx := context.Background()

	meals, cancel := s.Subscribe(domain.KindMeal)
	defer cancel()

	_, err := s.InsertGroceryItem(ctx, domain.GroceryItem{Name: "Tea", Category: domain.GroceryBeverages})
	require.NoError(t, err)
	assert.Empty(t, meals, "grocery writes do not reach meal subscribers")

	_, err = s.InsertMeal(ctx, domain.Meal{Name: "Soup", Type: domain.MealDinner, Timestamp: day})
	require.NoError(t, err)
	select {
	case k := <-meals:
		assert.Equal(t, domain.KindMeal, k)
	case <-time.After(time.Second):
		t.Fatal("no notification after meal insert")
	}
}
