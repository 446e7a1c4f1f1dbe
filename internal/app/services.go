// Package app holds the use cases that sit between the driving adapters and
// the record store.
package app

import "fitfuel/internal/domain"

// Services bundles every use case wired to one store.
type Services struct {
	Meals     *MealService
	Training  *TrainingService
	Groceries *GroceryService
	Profile   *ProfileService
	Dashboard *DashboardService
	History   *HistoryService
}

// NewServices wires every service to store.
func NewServices(store domain.Store) *Services {
	return &Services{
		Meals:     NewMealService(store, store),
		Training:  NewTrainingService(store, store, store),
		Groceries: NewGroceryService(store, store, store),
		Profile:   NewProfileService(store, store),
		Dashboard: NewDashboardService(store, store, store, store),
		History:   NewHistoryService(store, store),
	}
}
