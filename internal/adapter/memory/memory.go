// Package memory implements an in-memory record store for development and testing.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"fitfuel/internal/adapter/broker"
	"fitfuel/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	*broker.Broker

	mu        sync.Mutex
	meals     []domain.Meal
	sessions  []domain.TrainingSession
	groceries []domain.GroceryItem
	profile   *domain.UserProfile

	mealIDCounter    int64
	sessionIDCounter int64
	groceryIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{Broker: broker.New()}
}

// Ensure interfaces are met.
var _ domain.Store = (*DB)(nil)

// Close releases subscribers.
func (db *DB) Close() error {
	db.Broker.Close()
	return nil
}

func newestFirst[T domain.Timestamped](a, b T) int {
	return b.When().Compare(a.When())
}

func between[T domain.Timestamped](records []T, start, end time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !r.When().Before(start) && r.When().Before(end) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, newestFirst[T])
	return out
}

func find[T any](records []T, id func(T) int64, want int64) int {
	return slices.IndexFunc(records, func(r T) bool { return id(r) == want })
}

func mealID(m domain.Meal) int64               { return m.ID }
func sessionID(s domain.TrainingSession) int64 { return s.ID }
func groceryID(g domain.GroceryItem) int64     { return g.ID }

// --- MealRepository ---

// ListMeals returns every meal, newest first.
func (db *DB) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	return db.ListMealsBetween(ctx, time.Time{}, maxTime)
}

var maxTime = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ListMealsBetween returns meals with start <= timestamp < end, newest first.
func (db *DB) ListMealsBetween(ctx context.Context, start, end time.Time) ([]domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.meals, start, end), nil
}

// GetMeal retrieves a meal by ID.
func (db *DB) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := find(db.meals, mealID, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	m := db.meals[i]
	return &m, nil
}

// InsertMeal stores a meal and returns its new ID.
func (db *DB) InsertMeal(ctx context.Context, m domain.Meal) (int64, error) {
	db.mu.Lock()
	db.mealIDCounter++
	m.ID = db.mealIDCounter
	m.Timestamp = m.Timestamp.UTC()
	db.meals = append(db.meals, m)
	db.mu.Unlock()

	db.Publish(domain.KindMeal)
	return m.ID, nil
}

// UpdateMeal replaces a stored meal.
func (db *DB) UpdateMeal(ctx context.Context, m domain.Meal) error {
	db.mu.Lock()
	i := find(db.meals, mealID, m.ID)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	m.Timestamp = m.Timestamp.UTC()
	db.meals[i] = m
	db.mu.Unlock()

	db.Publish(domain.KindMeal)
	return nil
}

// DeleteMeal removes a meal by ID.
func (db *DB) DeleteMeal(ctx context.Context, id int64) error {
	db.mu.Lock()
	i := find(db.meals, mealID, id)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	db.meals = slices.Delete(db.meals, i, i+1)
	db.mu.Unlock()

	db.Publish(domain.KindMeal)
	return nil
}

// --- TrainingRepository ---

// ListSessions returns every training session, newest first.
func (db *DB) ListSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	return db.ListSessionsBetween(ctx, time.Time{}, maxTime)
}

// ListSessionsBetween returns sessions with start <= timestamp < end, newest first.
func (db *DB) ListSessionsBetween(ctx context.Context, start, end time.Time) ([]domain.TrainingSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return between(db.sessions, start, end), nil
}

// GetSession retrieves a training session by ID.
func (db *DB) GetSession(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := find(db.sessions, sessionID, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	s := db.sessions[i]
	return &s, nil
}

// InsertSession stores a training session and returns its new ID.
func (db *DB) InsertSession(ctx context.Context, s domain.TrainingSession) (int64, error) {
	db.mu.Lock()
	db.sessionIDCounter++
	s.ID = db.sessionIDCounter
	s.Timestamp = s.Timestamp.UTC()
	db.sessions = append(db.sessions, s)
	db.mu.Unlock()

	db.Publish(domain.KindTraining)
	return s.ID, nil
}

// UpdateSession replaces a stored training session.
func (db *DB) UpdateSession(ctx context.Context, s domain.TrainingSession) error {
	db.mu.Lock()
	i := find(db.sessions, sessionID, s.ID)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	s.Timestamp = s.Timestamp.UTC()
	db.sessions[i] = s
	db.mu.Unlock()

	db.Publish(domain.KindTraining)
	return nil
}

// DeleteSession removes a training session by ID.
func (db *DB) DeleteSession(ctx context.Context, id int64) error {
	db.mu.Lock()
	i := find(db.sessions, sessionID, id)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	db.sessions = slices.Delete(db.sessions, i, i+1)
	db.mu.Unlock()

	db.Publish(domain.KindTraining)
	return nil
}

// --- GroceryRepository ---

func byCategoryThenName(a, b domain.GroceryItem) int {
	return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
}

// ListGroceryItems returns every grocery item ordered by category, then name.
func (db *DB) ListGroceryItems(ctx context.Context) ([]domain.GroceryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	out := slices.Clone(db.groceries)
	if out == nil {
		out = []domain.GroceryItem{}
	}
	slices.SortStableFunc(out, byCategoryThenName)
	return out, nil
}

// ListGroceryItemsByCategory returns the items in c ordered by name.
func (db *DB) ListGroceryItemsByCategory(ctx context.Context, c domain.GroceryCategory) ([]domain.GroceryItem, error) {
	items, err := db.ListGroceryItems(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(items, &c), nil
}

// GetGroceryItem retrieves a grocery item by ID.
func (db *DB) GetGroceryItem(ctx context.Context, id int64) (*domain.GroceryItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := find(db.groceries, groceryID, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	it := db.groceries[i]
	return &it, nil
}

// InsertGroceryItem stores a grocery item and returns its new ID.
func (db *DB) InsertGroceryItem(ctx context.Context, it domain.GroceryItem) (int64, error) {
	db.mu.Lock()
	db.groceryIDCounter++
	it.ID = db.groceryIDCounter
	db.groceries = append(db.groceries, it)
	db.mu.Unlock()

	db.Publish(domain.KindGrocery)
	return it.ID, nil
}

// UpdateGroceryItem replaces a stored grocery item.
func (db *DB) UpdateGroceryItem(ctx context.Context, it domain.GroceryItem) error {
	db.mu.Lock()
	i := find(db.groceries, groceryID, it.ID)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	db.groceries[i] = it
	db.mu.Unlock()

	db.Publish(domain.KindGrocery)
	return nil
}

// DeleteGroceryItem removes a grocery item by ID.
func (db *DB) DeleteGroceryItem(ctx context.Context, id int64) error {
	db.mu.Lock()
	i := find(db.groceries, groceryID, id)
	if i < 0 {
		db.mu.Unlock()
		return domain.ErrNotFound
	}
	db.groceries = slices.Delete(db.groceries, i, i+1)
	db.mu.Unlock()

	db.Publish(domain.KindGrocery)
	return nil
}

// DeletePurchasedGroceryItems removes every purchased item.
func (db *DB) DeletePurchasedGroceryItems(ctx context.Context) (int64, error) {
	db.mu.Lock()
	before := len(db.groceries)
	db.groceries = slices.DeleteFunc(db.groceries, func(it domain.GroceryItem) bool { return it.Purchased })
	n := int64(before - len(db.groceries))
	db.mu.Unlock()

	if n > 0 {
		db.Publish(domain.KindGrocery)
	}
	return n, nil
}

// SetAllGroceryItemsPurchased sets the purchased flag on every item.
func (db *DB) SetAllGroceryItemsPurchased(ctx context.Context, purchased bool) (int64, error) {
	db.mu.Lock()
	var n int64
	for i := range db.groceries {
		if db.groceries[i].Purchased != purchased {
			db.groceries[i].Purchased = purchased
			n++
		}
	}
	db.mu.Unlock()

	if n > 0 {
		db.Publish(domain.KindGrocery)
	}
	return n, nil
}

// --- ProfileRepository ---

// GetProfile returns the stored profile or nil if none exists.
func (db *DB) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.profile == nil {
		return nil, nil
	}
	p := *db.profile
	return &p, nil
}

// SaveProfile inserts or replaces the profile.
func (db *DB) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	db.mu.Lock()
	db.profile = &p
	db.mu.Unlock()

	db.Publish(domain.KindProfile)
	return nil
}

// --- FlagSetter ---

// SetFlag flips a single boolean field under the store lock, so it never
// overwrites the other fields of a concurrent full update.
func (db *DB) SetFlag(ctx context.Context, kind domain.Kind, id int64, flag domain.Flag, value bool) error {
	if err := domain.CheckFlag(kind, flag); err != nil {
		return err
	}

	db.mu.Lock()
	found := false
	switch kind {
	case domain.KindGrocery:
		if i := find(db.groceries, groceryID, id); i >= 0 {
			db.groceries[i].Purchased = value
			found = true
		}
	case domain.KindTraining:
		if i := find(db.sessions, sessionID, id); i >= 0 {
			db.sessions[i].Completed = value
			found = true
		}
	case domain.KindProfile:
		if id == domain.ProfileID && db.profile != nil {
			db.profile.OnboardingCompleted = value
			found = true
		}
	}
	db.mu.Unlock()

	if !found {
		return domain.ErrNotFound
	}
	db.Publish(kind)
	return nil
}
