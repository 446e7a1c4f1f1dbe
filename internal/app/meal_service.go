package app

import (
	"context"
	"time"

	"fitfuel/internal/domain"
)

// MealService encapsulates meal logging and the daily meal plan.
type MealService struct {
	repo   domain.MealRepository
	events domain.Notifier
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository, events domain.Notifier) *MealService {
	return &MealService{repo: repo, events: events}
}

// DayPlan is the meal plan for one local day.
type DayPlan struct {
	Date      string           `json:"date"`
	Meals     []domain.Meal    `json:"meals"`
	Nutrition domain.Nutrition `json:"nutrition"`
}

func validateMeal(m domain.Meal) error {
	switch {
	case blank(m.Name):
		return invalid("meal name is required")
	case !m.Type.Valid():
		return invalid("unknown meal type %q", m.Type)
	case m.Calories < 0:
		return invalid("calories must not be negative")
	case m.Protein < 0 || m.Carbs < 0 || m.Fat < 0:
		return invalid("macros must not be negative")
	}
	return nil
}

// Add validates and stores a meal. A zero timestamp means now.
func (s *MealService) Add(ctx context.Context, m domain.Meal) (int64, error) {
	if err := validateMeal(m); err != nil {
		return 0, err
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	m.ID = 0
	return s.repo.InsertMeal(ctx, m)
}

// Update validates and replaces a stored meal.
func (s *MealService) Update(ctx context.Context, m domain.Meal) error {
	if m.ID <= 0 {
		return invalid("meal id is required")
	}
	if err := validateMeal(m); err != nil {
		return err
	}
	if m.Timestamp.IsZero() {
		return invalid("meal timestamp is required")
	}
	return s.repo.UpdateMeal(ctx, m)
}

// Delete removes a meal.
func (s *MealService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteMeal(ctx, id)
}

// Get returns a meal by ID.
func (s *MealService) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	return s.repo.GetMeal(ctx, id)
}

// ForDate returns the meals of date's local day in meal-type order, with
// the day's nutrition totals.
func (s *MealService) ForDate(ctx context.Context, date time.Time) (DayPlan, error) {
	start, end := domain.DayBounds(date)
	meals, err := s.repo.ListMealsBetween(ctx, start, end)
	if err != nil {
		return DayPlan{}, err
	}
	meals = domain.SortMealsByType(domain.FilterByDate(meals, date))
	return DayPlan{
		Date:      start.Format(time.DateOnly),
		Meals:     meals,
		Nutrition: domain.SummarizeNutrition(meals, start, end),
	}, nil
}

// ByType returns every meal of type t, newest first. An empty t returns all
// meals.
func (s *MealService) ByType(ctx context.Context, t domain.MealType) ([]domain.Meal, error) {
	if t != "" && !t.Valid() {
		return nil, invalid("unknown meal type %q", t)
	}
	meals, err := s.repo.ListMeals(ctx)
	if err != nil {
		return nil, err
	}
	if t == "" {
		return meals, nil
	}
	return domain.FilterMealsByType(meals, t), nil
}

// ObserveAll streams the full meal list on every meal change.
func (s *MealService) ObserveAll(ctx context.Context) <-chan Snapshot[[]domain.Meal] {
	return Watch(ctx, s.events, s.repo.ListMeals, domain.KindMeal)
}

// ObserveBetween streams meals with start <= timestamp < end on every meal change.
func (s *MealService) ObserveBetween(ctx context.Context, start, end time.Time) <-chan Snapshot[[]domain.Meal] {
	return Watch(ctx, s.events, func(ctx context.Context) ([]domain.Meal, error) {
		return s.repo.ListMealsBetween(ctx, start, end)
	}, domain.KindMeal)
}

// WatchDay streams the day plan for date on every meal change.
func (s *MealService) WatchDay(ctx context.Context, date time.Time) <-chan Snapshot[DayPlan] {
	return Watch(ctx, s.events, func(ctx context.Context) (DayPlan, error) {
		return s.ForDate(ctx, date)
	}, domain.KindMeal)
}
