package app

import (
	"context"
	"errors"
	"strings"

	"fitfuel/internal/domain"
)

// ProfileService encapsulates onboarding and profile edits.
type ProfileService struct {
	repo  domain.ProfileRepository
	flags domain.FlagSetter
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository, flags domain.FlagSetter) *ProfileService {
	return &ProfileService{repo: repo, flags: flags}
}

// Get returns the profile, or domain.ErrNotFound before onboarding.
func (s *ProfileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// IsOnboardingComplete reports whether the user has finished onboarding.
func (s *ProfileService) IsOnboardingComplete(ctx context.Context) (bool, error) {
	p, err := s.repo.GetProfile(ctx)
	if err != nil {
		return false, err
	}
	return p != nil && p.OnboardingCompleted, nil
}

func validateChoices(goal domain.Goal, freq domain.TrainingFrequency) error {
	switch {
	case !goal.Valid():
		return invalid("unknown goal %q", goal)
	case !freq.Valid():
		return invalid("unknown training frequency %q", freq)
	}
	return nil
}

// PreviewTargets returns the default targets onboarding would assign.
func (s *ProfileService) PreviewTargets(goal domain.Goal, freq domain.TrainingFrequency) (domain.Targets, error) {
	if err := validateChoices(goal, freq); err != nil {
		return domain.Targets{}, err
	}
	return domain.DefaultTargets(goal, freq), nil
}

// CompleteOnboarding creates (or replaces) the profile with default targets
// for goal and freq and marks onboarding as done.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, name string, goal domain.Goal, freq domain.TrainingFrequency, pref domain.DietaryPreference) (domain.UserProfile, error) {
	if blank(name) {
		return domain.UserProfile{}, invalid("name is required")
	}
	if err := validateChoices(goal, freq); err != nil {
		return domain.UserProfile{}, err
	}
	if !pref.Valid() {
		return domain.UserProfile{}, invalid("unknown dietary preference %q", pref)
	}

	p := domain.UserProfile{
		Name:                strings.TrimSpace(name),
		Goal:                goal,
		TrainingFrequency:   freq,
		DietaryPreference:   pref,
		OnboardingCompleted: true,
	}
	p.SetTargets(domain.DefaultTargets(goal, freq))
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return domain.UserProfile{}, err
	}
	return p, nil
}

func validateProfile(p domain.UserProfile) error {
	switch {
	case blank(p.Name):
		return invalid("name is required")
	case p.DailyCalorieTarget <= 0:
		return invalid("calorie target must be positive")
	case p.DailyProteinTarget <= 0, p.DailyCarbTarget <= 0, p.DailyFatTarget <= 0:
		return invalid("macro targets must be positive")
	case !p.DietaryPreference.Valid():
		return invalid("unknown dietary preference %q", p.DietaryPreference)
	}
	return validateChoices(p.Goal, p.TrainingFrequency)
}

// Update validates and saves an edited profile. Targets are kept as given,
// not recomputed, and the onboarding flag is left as stored.
func (s *ProfileService) Update(ctx context.Context, p domain.UserProfile) (domain.UserProfile, error) {
	if err := validateProfile(p); err != nil {
		return domain.UserProfile{}, err
	}
	cur, err := s.Get(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}
	p.Name = strings.TrimSpace(p.Name)
	p.OnboardingCompleted = cur.OnboardingCompleted
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return domain.UserProfile{}, err
	}
	return p, nil
}

// ResetOnboarding clears the onboarding flag and keeps the rest of the
// profile. It is a no-op when no profile exists.
func (s *ProfileService) ResetOnboarding(ctx context.Context) error {
	err := s.flags.SetFlag(ctx, domain.KindProfile, domain.ProfileID, domain.FlagOnboardingCompleted, false)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
