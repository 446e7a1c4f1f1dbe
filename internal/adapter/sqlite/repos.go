package sqlite

import (
	"context"
	"errors"
	"time"

	"fitfuel/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func toMealRow(m domain.Meal) mealRow {
	return mealRow{
		ID: m.ID, Name: m.Name, Type: string(m.Type),
		Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat,
		Timestamp: m.Timestamp.UTC(), Notes: m.Notes,
	}
}

func (r mealRow) toDomain() domain.Meal {
	return domain.Meal{
		ID: r.ID, Name: r.Name, Type: domain.MealType(r.Type),
		Calories: r.Calories, Protein: r.Protein, Carbs: r.Carbs, Fat: r.Fat,
		Timestamp: r.Timestamp.UTC(), Notes: r.Notes,
	}
}

func toSessionRow(s domain.TrainingSession) sessionRow {
	return sessionRow{
		ID: s.ID, Title: s.Title, Type: string(s.Type), Intensity: string(s.Intensity),
		Duration: s.Duration, Timestamp: s.Timestamp.UTC(), Completed: s.Completed, Notes: s.Notes,
	}
}

func (r sessionRow) toDomain() domain.TrainingSession {
	return domain.TrainingSession{
		ID: r.ID, Title: r.Title, Type: domain.TrainingType(r.Type), Intensity: domain.Intensity(r.Intensity),
		Duration: r.Duration, Timestamp: r.Timestamp.UTC(), Completed: r.Completed, Notes: r.Notes,
	}
}

func toGroceryRow(it domain.GroceryItem) groceryRow {
	return groceryRow{
		ID: it.ID, Name: it.Name, Quantity: it.Quantity, Category: string(it.Category),
		Purchased: it.Purchased, Notes: it.Notes,
	}
}

func (r groceryRow) toDomain() domain.GroceryItem {
	return domain.GroceryItem{
		ID: r.ID, Name: r.Name, Quantity: r.Quantity, Category: domain.GroceryCategory(r.Category),
		Purchased: r.Purchased, Notes: r.Notes,
	}
}

func mapRows[R interface{ toDomain() T }, T any](rows []R) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// --- MealRepository ---

// ListMeals returns every meal, newest first.
func (d *DB) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	var rows []mealRow
	if err := d.gorm.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows[mealRow, domain.Meal](rows), nil
}

// ListMealsBetween returns meals with start <= timestamp < end, newest first.
func (d *DB) ListMealsBetween(ctx context.Context, start, end time.Time) ([]domain.Meal, error) {
	var rows []mealRow
	err := d.gorm.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", start.UTC(), end.UTC()).
		Order("timestamp DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows[mealRow, domain.Meal](rows), nil
}

// GetMeal retrieves a meal by ID.
func (d *DB) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	var r mealRow
	if err := d.gorm.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	m := r.toDomain()
	return &m, nil
}

// InsertMeal stores a meal and returns its new ID.
func (d *DB) InsertMeal(ctx context.Context, m domain.Meal) (int64, error) {
	r := toMealRow(m)
	r.ID = 0
	if err := d.gorm.WithContext(ctx).Create(&r).Error; err != nil {
		return 0, err
	}
	d.Publish(domain.KindMeal)
	return r.ID, nil
}

// UpdateMeal replaces a stored meal.
func (d *DB) UpdateMeal(ctx context.Context, m domain.Meal) error {
	r := toMealRow(m)
	tx := d.gorm.WithContext(ctx).Model(&mealRow{ID: r.ID}).Select("*").Omit("id").Updates(&r)
	if err := affected(tx); err != nil {
		return err
	}
	d.Publish(domain.KindMeal)
	return nil
}

// DeleteMeal removes a meal by ID.
func (d *DB) DeleteMeal(ctx context.Context, id int64) error {
	if err := affected(d.gorm.WithContext(ctx).Delete(&mealRow{}, id)); err != nil {
		return err
	}
	d.Publish(domain.KindMeal)
	return nil
}

// --- TrainingRepository ---

// ListSessions returns every training session, newest first.
func (d *DB) ListSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	var rows []sessionRow
	if err := d.gorm.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows[sessionRow, domain.TrainingSession](rows), nil
}

// ListSessionsBetween returns sessions with start <= timestamp < end, newest first.
func (d *DB) ListSessionsBetween(ctx context.Context, start, end time.Time) ([]domain.TrainingSession, error) {
	var rows []sessionRow
	err := d.gorm.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", start.UTC(), end.UTC()).
		Order("timestamp DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows[sessionRow, domain.TrainingSession](rows), nil
}

// GetSession retrieves a training session by ID.
func (d *DB) GetSession(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	var r sessionRow
	if err := d.gorm.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	s := r.toDomain()
	return &s, nil
}

// InsertSession stores a training session and returns its new ID.
func (d *DB) InsertSession(ctx context.Context, s domain.TrainingSession) (int64, error) {
	r := toSessionRow(s)
	r.ID = 0
	if err := d.gorm.WithContext(ctx).Create(&r).Error; err != nil {
		return 0, err
	}
	d.Publish(domain.KindTraining)
	return r.ID, nil
}

// UpdateSession replaces a stored training session.
func (d *DB) UpdateSession(ctx context.Context, s domain.TrainingSession) error {
	r := toSessionRow(s)
	tx := d.gorm.WithContext(ctx).Model(&sessionRow{ID: r.ID}).Select("*").Omit("id").Updates(&r)
	if err := affected(tx); err != nil {
		return err
	}
	d.Publish(domain.KindTraining)
	return nil
}

// DeleteSession removes a training session by ID.
func (d *DB) DeleteSession(ctx context.Context, id int64) error {
	if err := affected(d.gorm.WithContext(ctx).Delete(&sessionRow{}, id)); err != nil {
		return err
	}
	d.Publish(domain.KindTraining)
	return nil
}

// --- GroceryRepository ---

// ListGroceryItems returns every grocery item ordered by category, then name.
func (d *DB) ListGroceryItems(ctx context.Context) ([]domain.GroceryItem, error) {
	var rows []groceryRow
	if err := d.gorm.WithContext(ctx).Order("category, name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows[groceryRow, domain.GroceryItem](rows), nil
}

// ListGroceryItemsByCategory returns the items in c ordered by name.
func (d *DB) ListGroceryItemsByCategory(ctx context.Context, c domain.GroceryCategory) ([]domain.GroceryItem, error) {
	var rows []groceryRow
	err := d.gorm.WithContext(ctx).Where("category = ?", string(c)).Order("name, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows[groceryRow, domain.GroceryItem](rows), nil
}

// GetGroceryItem retrieves a grocery item by ID.
func (d *DB) GetGroceryItem(ctx context.Context, id int64) (*domain.GroceryItem, error) {
	var r groceryRow
	if err := d.gorm.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	it := r.toDomain()
	return &it, nil
}

// InsertGroceryItem stores a grocery item and returns its new ID.
func (d *DB) InsertGroceryItem(ctx context.Context, it domain.GroceryItem) (int64, error) {
	r := toGroceryRow(it)
	r.ID = 0
	if err := d.gorm.WithContext(ctx).Create(&r).Error; err != nil {
		return 0, err
	}
	d.Publish(domain.KindGrocery)
	return r.ID, nil
}

// UpdateGroceryItem replaces a stored grocery item.
func (d *DB) UpdateGroceryItem(ctx context.Context, it domain.GroceryItem) error {
	r := toGroceryRow(it)
	tx := d.gorm.WithContext(ctx).Model(&groceryRow{ID: r.ID}).Select("*").Omit("id").Updates(&r)
	if err := affected(tx); err != nil {
		return err
	}
	d.Publish(domain.KindGrocery)
	return nil
}

// DeleteGroceryItem removes a grocery item by ID.
func (d *DB) DeleteGroceryItem(ctx context.Context, id int64) error {
	if err := affected(d.gorm.WithContext(ctx).Delete(&groceryRow{}, id)); err != nil {
		return err
	}
	d.Publish(domain.KindGrocery)
	return nil
}

// DeletePurchasedGroceryItems removes every purchased item.
func (d *DB) DeletePurchasedGroceryItems(ctx context.Context) (int64, error) {
	tx := d.gorm.WithContext(ctx).Where("purchased = ?", true).Delete(&groceryRow{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected > 0 {
		d.Publish(domain.KindGrocery)
	}
	return tx.RowsAffected, nil
}

// SetAllGroceryItemsPurchased sets the purchased flag on every item.
func (d *DB) SetAllGroceryItemsPurchased(ctx context.Context, purchased bool) (int64, error) {
	tx := d.gorm.WithContext(ctx).Model(&groceryRow{}).
		Where("purchased <> ?", purchased).
		Update("purchased", purchased)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected > 0 {
		d.Publish(domain.KindGrocery)
	}
	return tx.RowsAffected, nil
}

// --- ProfileRepository ---

// GetProfile returns the stored profile or nil if none exists.
func (d *DB) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	var r profileRow
	err := d.gorm.WithContext(ctx).First(&r, domain.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.UserProfile{
		Name:                r.Name,
		Goal:                domain.Goal(r.Goal),
		TrainingFrequency:   domain.TrainingFrequency(r.TrainingFrequency),
		DietaryPreference:   domain.DietaryPreference(r.DietaryPreference),
		DailyCalorieTarget:  r.DailyCalorieTarget,
		DailyProteinTarget:  r.DailyProteinTarget,
		DailyCarbTarget:     r.DailyCarbTarget,
		DailyFatTarget:      r.DailyFatTarget,
		OnboardingCompleted: r.OnboardingCompleted,
	}, nil
}

// SaveProfile inserts or replaces the profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	r := profileRow{
		ID:                  domain.ProfileID,
		Name:                p.Name,
		Goal:                string(p.Goal),
		TrainingFrequency:   string(p.TrainingFrequency),
		DietaryPreference:   string(p.DietaryPreference),
		DailyCalorieTarget:  p.DailyCalorieTarget,
		DailyProteinTarget:  p.DailyProteinTarget,
		DailyCarbTarget:     p.DailyCarbTarget,
		DailyFatTarget:      p.DailyFatTarget,
		OnboardingCompleted: p.OnboardingCompleted,
	}
	err := d.gorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&r).Error
	if err != nil {
		return err
	}
	d.Publish(domain.KindProfile)
	return nil
}
