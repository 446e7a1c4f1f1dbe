package domain

import (
	"slices"
	"time"
)

// Nutrition is the summed intake over a set of meals.
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// TrainingStats summarizes the completed sessions in a range.
type TrainingStats struct {
	CompletedCount int `json:"completedCount"`
	TotalMinutes   int `json:"totalMinutes"`
}

// Timestamped is a record placed at a point in time.
type Timestamped interface {
	When() time.Time
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// DayBounds returns the half-open calendar day [start, end) containing t,
// in t's location.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// SummarizeNutrition sums the macros of meals with start <= timestamp < end.
func SummarizeNutrition(meals []Meal, start, end time.Time) Nutrition {
	var n Nutrition
	for _, m := range meals {
		if !inRange(m.Timestamp, start, end) {
			continue
		}
		n.Calories += m.Calories
		n.Protein += m.Protein
		n.Carbs += m.Carbs
		n.Fat += m.Fat
	}
	return n
}

// SummarizeTraining counts the completed sessions with start <= timestamp <
// end and sums their durations. Incomplete sessions contribute nothing.
func SummarizeTraining(sessions []TrainingSession, start, end time.Time) TrainingStats {
	var st TrainingStats
	for _, s := range sessions {
		if !s.Completed || !inRange(s.Timestamp, start, end) {
			continue
		}
		st.CompletedCount++
		st.TotalMinutes += s.Duration
	}
	return st
}

// FilterByDate returns the records that fall on the calendar day of date.
// The result preserves input order and is never nil.
func FilterByDate[T Timestamped](records []T, date time.Time) []T {
	start, end := DayBounds(date)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if inRange(r.When(), start, end) {
			out = append(out, r)
		}
	}
	return out
}

// FilterMealsByType returns the meals of type t, keeping their order.
func FilterMealsByType(meals []Meal, t MealType) []Meal {
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// SessionFilter narrows a session list. Nil fields match every session.
type SessionFilter struct {
	Type      *TrainingType
	Completed *bool
}

// FilterSessions returns the sessions matching f, keeping their order.
func FilterSessions(sessions []TrainingSession, f SessionFilter) []TrainingSession {
	out := make([]TrainingSession, 0, len(sessions))
	for _, s := range sessions {
		if f.Type != nil && s.Type != *f.Type {
			continue
		}
		if f.Completed != nil && s.Completed != *f.Completed {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SortMealsByType returns a copy of meals ordered breakfast to snack. Meals
// of the same type keep their relative order.
func SortMealsByType(meals []Meal) []Meal {
	out := slices.Clone(meals)
	if out == nil {
		out = []Meal{}
	}
	slices.SortStableFunc(out, func(a, b Meal) int {
		return slices.Index(MealTypes, a.Type) - slices.Index(MealTypes, b.Type)
	})
	return out
}

// GroupByCategory partitions items by category, preserving relative order
// within each group. Categories without items are absent.
func GroupByCategory(items []GroceryItem) map[GroceryCategory][]GroceryItem {
	groups := make(map[GroceryCategory][]GroceryItem)
	for _, it := range items {
		groups[it.Category] = append(groups[it.Category], it)
	}
	return groups
}

// GroupByAllCategories is GroupByCategory with every known category present;
// categories without items map to an empty slice.
func GroupByAllCategories(items []GroceryItem) map[GroceryCategory][]GroceryItem {
	groups := GroupByCategory(items)
	for _, c := range GroceryCategories {
		if _, ok := groups[c]; !ok {
			groups[c] = []GroceryItem{}
		}
	}
	return groups
}

// FilterByCategory returns the items in category c, or all items when c is nil.
func FilterByCategory(items []GroceryItem, c *GroceryCategory) []GroceryItem {
	out := make([]GroceryItem, 0, len(items))
	for _, it := range items {
		if c == nil || it.Category == *c {
			out = append(out, it)
		}
	}
	return out
}

// SplitByPurchased separates items still to buy from those already bought.
func SplitByPurchased(items []GroceryItem) (pending, purchased []GroceryItem) {
	pending, purchased = []GroceryItem{}, []GroceryItem{}
	for _, it := range items {
		if it.Purchased {
			purchased = append(purchased, it)
		} else {
			pending = append(pending, it)
		}
	}
	return pending, purchased
}

// CountUnpurchased returns the number of items not yet purchased.
func CountUnpurchased(items []GroceryItem) int {
	n := 0
	for _, it := range items {
		if !it.Purchased {
			n++
		}
	}
	return n
}

// Progress returns consumed/target clamped to [0, 1]. A non-positive target
// yields 0.
func Progress(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// MacroProgress pairs an intake with its target.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
}

// TargetProgress is the day's intake measured against the profile targets.
type TargetProgress struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
}

func macro(consumed, target float64) MacroProgress {
	return MacroProgress{Consumed: consumed, Target: target, Percent: Progress(consumed, target)}
}

// CompareToTargets measures n against t.
func CompareToTargets(n Nutrition, t Targets) TargetProgress {
	return TargetProgress{
		Calories: macro(float64(n.Calories), float64(t.Calories)),
		Protein:  macro(n.Protein, t.Protein),
		Carbs:    macro(n.Carbs, t.Carbs),
		Fat:      macro(n.Fat, t.Fat),
	}
}
