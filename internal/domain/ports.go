package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupportedFlag indicates a flag that the record kind does not carry.
	ErrUnsupportedFlag = errors.New("unsupported flag")
)

// Kind names a record kind held by the store.
type Kind string

// Record kinds.
const (
	KindMeal     Kind = "meal"
	KindTraining Kind = "training_session"
	KindGrocery  Kind = "grocery_item"
	KindProfile  Kind = "user_profile"
)

// Flag names a boolean field that can be flipped without rewriting the record.
type Flag string

// Flags.
const (
	FlagPurchased           Flag = "purchased"
	FlagCompleted           Flag = "completed"
	FlagOnboardingCompleted Flag = "onboarding_completed"
)

// CheckFlag returns ErrUnsupportedFlag unless kind carries flag.
func CheckFlag(kind Kind, flag Flag) error {
	switch {
	case kind == KindGrocery && flag == FlagPurchased,
		kind == KindTraining && flag == FlagCompleted,
		kind == KindProfile && flag == FlagOnboardingCompleted:
		return nil
	}
	return ErrUnsupportedFlag
}

// MealRepository is the port for meal persistence. Lists are ordered by
// timestamp, newest first.
type MealRepository interface {
	ListMeals(ctx context.Context) ([]Meal, error)
	// ListMealsBetween returns meals with start <= timestamp < end.
	ListMealsBetween(ctx context.Context, start, end time.Time) ([]Meal, error)
	GetMeal(ctx context.Context, id int64) (*Meal, error)
	InsertMeal(ctx context.Context, m Meal) (int64, error)
	UpdateMeal(ctx context.Context, m Meal) error
	DeleteMeal(ctx context.Context, id int64) error
}

// TrainingRepository is the port for training session persistence. Lists
// are ordered by timestamp, newest first.
type TrainingRepository interface {
	ListSessions(ctx context.Context) ([]TrainingSession, error)
	// ListSessionsBetween returns sessions with start <= timestamp < end.
	ListSessionsBetween(ctx context.Context, start, end time.Time) ([]TrainingSession, error)
	GetSession(ctx context.Context, id int64) (*TrainingSession, error)
	InsertSession(ctx context.Context, s TrainingSession) (int64, error)
	UpdateSession(ctx context.Context, s TrainingSession) error
	DeleteSession(ctx context.Context, id int64) error
}

// GroceryRepository is the port for grocery list persistence. Lists are
// ordered by category, then name.
type GroceryRepository interface {
	ListGroceryItems(ctx context.Context) ([]GroceryItem, error)
	ListGroceryItemsByCategory(ctx context.Context, c GroceryCategory) ([]GroceryItem, error)
	GetGroceryItem(ctx context.Context, id int64) (*GroceryItem, error)
	InsertGroceryItem(ctx context.Context, it GroceryItem) (int64, error)
	UpdateGroceryItem(ctx context.Context, it GroceryItem) error
	DeleteGroceryItem(ctx context.Context, id int64) error
	// DeletePurchasedGroceryItems removes every purchased item and reports
	// how many were removed.
	DeletePurchasedGroceryItems(ctx context.Context) (int64, error)
	// SetAllGroceryItemsPurchased sets the purchased flag on every item and
	// reports how many items changed.
	SetAllGroceryItemsPurchased(ctx context.Context, purchased bool) (int64, error)
}

// ProfileRepository is the port for the singleton user profile.
type ProfileRepository interface {
	// GetProfile returns nil, nil when no profile has been saved yet.
	GetProfile(ctx context.Context) (*UserProfile, error)
	// SaveProfile inserts or replaces the profile.
	SaveProfile(ctx context.Context, p UserProfile) error
}

// FlagSetter flips a single boolean field in place.
type FlagSetter interface {
	SetFlag(ctx context.Context, kind Kind, id int64, flag Flag, value bool) error
}

// Notifier delivers change notifications for record kinds. The returned
// channel receives the kind that changed; cancel releases the subscription
// and closes the channel.
type Notifier interface {
	Subscribe(kinds ...Kind) (events <-chan Kind, cancel func())
}

// Store is the full record store consumed by the application.
type Store interface {
	MealRepository
	TrainingRepository
	GroceryRepository
	ProfileRepository
	FlagSetter
	Notifier
	Close() error
}
