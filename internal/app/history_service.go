package app

import (
	"context"
	"time"

	"fitfuel/internal/domain"
)

// HistoryService encapsulates per-day history retrieval.
type HistoryService struct {
	meals    domain.MealRepository
	sessions domain.TrainingRepository
}

// NewHistoryService creates a HistoryService backed by the given repositories.
func NewHistoryService(mr domain.MealRepository, tr domain.TrainingRepository) *HistoryService {
	return &HistoryService{meals: mr, sessions: tr}
}

// DayPoint is a single data point returned by Daily.
type DayPoint struct {
	Day       string               `json:"day"`
	Nutrition domain.Nutrition     `json:"nutrition"`
	Training  domain.TrainingStats `json:"training"`
}

// MaxHistoryDays bounds the days argument of Daily.
const MaxHistoryDays = 366

// Daily returns one point per local day for the last days days ending on
// now's day, oldest first.
func (s *HistoryService) Daily(ctx context.Context, now time.Time, days int) ([]DayPoint, error) {
	days = min(max(days, 1), MaxHistoryDays)

	first, _ := domain.DayBounds(now.AddDate(0, 0, -(days - 1)))
	_, last := domain.DayBounds(now)

	meals, err := s.meals.ListMealsBetween(ctx, first, last)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListSessionsBetween(ctx, first, last)
	if err != nil {
		return nil, err
	}

	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		start, end := domain.DayBounds(now.AddDate(0, 0, -i))
		points = append(points, DayPoint{
			Day:       start.Format(time.DateOnly),
			Nutrition: domain.SummarizeNutrition(meals, start, end),
			Training:  domain.SummarizeTraining(sessions, start, end),
		})
	}
	return points, nil
}
