package app

import (
	"context"
	"time"

	"fitfuel/internal/domain"
)

// DashboardService combines a day's nutrition, training and targets.
type DashboardService struct {
	profiles domain.ProfileRepository
	meals    domain.MealRepository
	sessions domain.TrainingRepository
	events   domain.Notifier
}

// NewDashboardService creates a DashboardService backed by the given repositories.
func NewDashboardService(pr domain.ProfileRepository, mr domain.MealRepository, tr domain.TrainingRepository, events domain.Notifier) *DashboardService {
	return &DashboardService{profiles: pr, meals: mr, sessions: tr, events: events}
}

// Dashboard is the overview of one local day.
type Dashboard struct {
	Date      string                   `json:"date"`
	Profile   *domain.UserProfile      `json:"profile"`
	Nutrition domain.Nutrition         `json:"nutrition"`
	Progress  *domain.TargetProgress   `json:"progress"`
	Training  domain.TrainingStats     `json:"training"`
	Meals     []domain.Meal            `json:"meals"`
	Sessions  []domain.TrainingSession `json:"sessions"`
}

// Today returns the dashboard for now's local day.
func (s *DashboardService) Today(ctx context.Context, now time.Time) (Dashboard, error) {
	return s.ForDate(ctx, now)
}

// ForDate returns the dashboard for date's local day. Progress is only set
// once a profile exists.
func (s *DashboardService) ForDate(ctx context.Context, date time.Time) (Dashboard, error) {
	start, end := domain.DayBounds(date)

	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	meals, err := s.meals.ListMealsBetween(ctx, start, end)
	if err != nil {
		return Dashboard{}, err
	}
	sessions, err := s.sessions.ListSessionsBetween(ctx, start, end)
	if err != nil {
		return Dashboard{}, err
	}

	meals = domain.FilterByDate(meals, date)
	sessions = domain.FilterByDate(sessions, date)
	d := Dashboard{
		Date:      start.Format(time.DateOnly),
		Profile:   profile,
		Nutrition: domain.SummarizeNutrition(meals, start, end),
		Training:  domain.SummarizeTraining(sessions, start, end),
		Meals:     domain.SortMealsByType(meals),
		Sessions:  sessions,
	}
	if profile != nil {
		p := domain.CompareToTargets(d.Nutrition, profile.Targets())
		d.Progress = &p
	}
	return d, nil
}

// Watch streams the dashboard for date on every meal, training or profile change.
func (s *DashboardService) Watch(ctx context.Context, date time.Time) <-chan Snapshot[Dashboard] {
	return Watch(ctx, s.events, func(ctx context.Context) (Dashboard, error) {
		return s.ForDate(ctx, date)
	}, domain.KindMeal, domain.KindTraining, domain.KindProfile)
}
