package app_test

import (
	"context"
	"time"

	"fitfuel/internal/domain"
)

type mockMealRepo struct {
	listFn    func(ctx context.Context) ([]domain.Meal, error)
	betweenFn func(ctx context.Context, start, end time.Time) ([]domain.Meal, error)
	getFn     func(ctx context.Context, id int64) (*domain.Meal, error)
	insertFn  func(ctx context.Context, m domain.Meal) (int64, error)
	updateFn  func(ctx context.Context, m domain.Meal) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockMealRepo) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockMealRepo) ListMealsBetween(ctx context.Context, start, end time.Time) ([]domain.Meal, error) {
	if m.betweenFn != nil {
		return m.betweenFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockMealRepo) GetMeal(ctx context.Context, id int64) (*domain.Meal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockMealRepo) InsertMeal(ctx context.Context, meal domain.Meal) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, meal)
	}
	return 0, nil
}

func (m *mockMealRepo) UpdateMeal(ctx context.Context, meal domain.Meal) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, meal)
	}
	return nil
}

func (m *mockMealRepo) DeleteMeal(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTrainingRepo struct {
	listFn    func(ctx context.Context) ([]domain.TrainingSession, error)
	betweenFn func(ctx context.Context, start, end time.Time) ([]domain.TrainingSession, error)
	getFn     func(ctx context.Context, id int64) (*domain.TrainingSession, error)
	insertFn  func(ctx context.Context, s domain.TrainingSession) (int64, error)
	updateFn  func(ctx context.Context, s domain.TrainingSession) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockTrainingRepo) ListSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTrainingRepo) ListSessionsBetween(ctx context.Context, start, end time.Time) ([]domain.TrainingSession, error) {
	if m.betweenFn != nil {
		return m.betweenFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockTrainingRepo) GetSession(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockTrainingRepo) InsertSession(ctx context.Context, s domain.TrainingSession) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, s)
	}
	return 0, nil
}

func (m *mockTrainingRepo) UpdateSession(ctx context.Context, s domain.TrainingSession) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return nil
}

func (m *mockTrainingRepo) DeleteSession(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockGroceryRepo struct {
	listFn       func(ctx context.Context) ([]domain.GroceryItem, error)
	byCategoryFn func(ctx context.Context, c domain.GroceryCategory) ([]domain.GroceryItem, error)
	getFn        func(ctx context.Context, id int64) (*domain.GroceryItem, error)
	insertFn     func(ctx context.Context, it domain.GroceryItem) (int64, error)
	updateFn     func(ctx context.Context, it domain.GroceryItem) error
	deleteFn     func(ctx context.Context, id int64) error
	clearFn      func(ctx context.Context) (int64, error)
	setAllFn     func(ctx context.Context, purchased bool) (int64, error)
}

func (m *mockGroceryRepo) ListGroceryItems(ctx context.Context) ([]domain.GroceryItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockGroceryRepo) ListGroceryItemsByCategory(ctx context.Context, c domain.GroceryCategory) ([]domain.GroceryItem, error) {
	if m.byCategoryFn != nil {
		return m.byCategoryFn(ctx, c)
	}
	return nil, nil
}

func (m *mockGroceryRepo) GetGroceryItem(ctx context.Context, id int64) (*domain.GroceryItem, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockGroceryRepo) InsertGroceryItem(ctx context.Context, it domain.GroceryItem) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, it)
	}
	return 0, nil
}

func (m *mockGroceryRepo) UpdateGroceryItem(ctx context.Context, it domain.GroceryItem) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, it)
	}
	return nil
}

func (m *mockGroceryRepo) DeleteGroceryItem(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockGroceryRepo) DeletePurchasedGroceryItems(ctx context.Context) (int64, error) {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return 0, nil
}

func (m *mockGroceryRepo) SetAllGroceryItemsPurchased(ctx context.Context, purchased bool) (int64, error) {
	if m.setAllFn != nil {
		return m.setAllFn(ctx, purchased)
	}
	return 0, nil
}

type mockProfileRepo struct {
	getFn  func(ctx context.Context) (*domain.UserProfile, error)
	saveFn func(ctx context.Context, p domain.UserProfile) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepo) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

type flagCall struct {
	kind  domain.Kind
	id    int64
	flag  domain.Flag
	value bool
}

type mockFlags struct {
	calls []flagCall
	err   error
}

func (m *mockFlags) SetFlag(_ context.Context, kind domain.Kind, id int64, flag domain.Flag, value bool) error {
	m.calls = append(m.calls, flagCall{kind, id, flag, value})
	return m.err
}
