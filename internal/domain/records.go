// Package domain contains the core entities, the repository ports and the
// pure nutrition and training calculations.
package domain

import "time"

// ProfileID is the fixed key of the single user profile.
const ProfileID int64 = 1

// Meal is a logged meal with its macro breakdown.
type Meal struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      MealType  `json:"type"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

// When returns the time the meal was eaten.
func (m Meal) When() time.Time { return m.Timestamp }

// TrainingSession is a planned or completed workout.
type TrainingSession struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Type      TrainingType `json:"type"`
	Intensity Intensity    `json:"intensity"`
	Duration  int          `json:"duration"` // minutes
	Timestamp time.Time    `json:"timestamp"`
	Completed bool         `json:"completed"`
	Notes     string       `json:"notes,omitempty"`
}

// When returns the time the session is scheduled for.
func (s TrainingSession) When() time.Time { return s.Timestamp }

// GroceryItem is an entry on the shopping list.
type GroceryItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  string          `json:"quantity"` // free text, e.g. "2 lbs"
	Category  GroceryCategory `json:"category"`
	Purchased bool            `json:"purchased"`
	Notes     string          `json:"notes,omitempty"`
}

// UserProfile holds the user's goals and daily nutrition targets. Exactly
// one exists, keyed by ProfileID.
type UserProfile struct {
	Name                string            `json:"name"`
	Goal                Goal              `json:"goal"`
	TrainingFrequency   TrainingFrequency `json:"trainingFrequency"`
	DietaryPreference   DietaryPreference `json:"dietaryPreference"`
	DailyCalorieTarget  int               `json:"dailyCalorieTarget"`
	DailyProteinTarget  float64           `json:"dailyProteinTarget"`
	DailyCarbTarget     float64           `json:"dailyCarbTarget"`
	DailyFatTarget      float64           `json:"dailyFatTarget"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
}

// Targets returns the profile's daily targets.
func (p UserProfile) Targets() Targets {
	return Targets{
		Calories: p.DailyCalorieTarget,
		Protein:  p.DailyProteinTarget,
		Carbs:    p.DailyCarbTarget,
		Fat:      p.DailyFatTarget,
	}
}

// SetTargets overwrites the profile's daily targets.
func (p *UserProfile) SetTargets(t Targets) {
	p.DailyCalorieTarget = t.Calories
	p.DailyProteinTarget = t.Protein
	p.DailyCarbTarget = t.Carbs
	p.DailyFatTarget = t.Fat
}
