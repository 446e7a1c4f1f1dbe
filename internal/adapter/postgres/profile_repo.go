package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitfuel/internal/domain"
)

// GetProfile returns the stored profile or nil if none exists.
func (d *DB) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := d.sql.QueryRowContext(ctx,
		`SELECT name, goal, training_frequency, dietary_preference,
			daily_calorie_target, daily_protein_target, daily_carb_target, daily_fat_target,
			onboarding_completed
		FROM user_profile WHERE id=$1;`, domain.ProfileID,
	).Scan(&p.Name, &p.Goal, &p.TrainingFrequency, &p.DietaryPreference,
		&p.DailyCalorieTarget, &p.DailyProteinTarget, &p.DailyCarbTarget, &p.DailyFatTarget,
		&p.OnboardingCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile inserts or replaces the profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO user_profile(id, name, goal, training_frequency, dietary_preference,
			daily_calorie_target, daily_protein_target, daily_carb_target, daily_fat_target,
			onboarding_completed)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT(id) DO UPDATE SET
			name=EXCLUDED.name,
			goal=EXCLUDED.goal,
			training_frequency=EXCLUDED.training_frequency,
			dietary_preference=EXCLUDED.dietary_preference,
			daily_calorie_target=EXCLUDED.daily_calorie_target,
			daily_protein_target=EXCLUDED.daily_protein_target,
			daily_carb_target=EXCLUDED.daily_carb_target,
			daily_fat_target=EXCLUDED.daily_fat_target,
			onboarding_completed=EXCLUDED.onboarding_completed;`,
		domain.ProfileID, p.Name, p.Goal, p.TrainingFrequency, p.DietaryPreference,
		p.DailyCalorieTarget, p.DailyProteinTarget, p.DailyCarbTarget, p.DailyFatTarget,
		p.OnboardingCompleted)
	if err != nil {
		return err
	}
	d.Publish(domain.KindProfile)
	return nil
}
