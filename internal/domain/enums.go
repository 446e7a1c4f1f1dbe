package domain

import "slices"

// Goal is the user's primary fitness goal.
type Goal string

// Goals.
const (
	GoalBuildMuscle        Goal = "BUILD_MUSCLE"
	GoalLoseWeight         Goal = "LOSE_WEIGHT"
	GoalImprovePerformance Goal = "IMPROVE_PERFORMANCE"
	GoalMaintainFitness    Goal = "MAINTAIN_FITNESS"
)

// Goals lists every Goal in declaration order.
var Goals = []Goal{GoalBuildMuscle, GoalLoseWeight, GoalImprovePerformance, GoalMaintainFitness}

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool { return slices.Contains(Goals, g) }

// TrainingFrequency is how many days per week the user trains.
type TrainingFrequency string

// Training frequencies.
const (
	FrequencyTwoToThree TrainingFrequency = "TWO_THREE_DAYS"
	FrequencyFourToFive TrainingFrequency = "FOUR_FIVE_DAYS"
	FrequencySixPlus    TrainingFrequency = "SIX_PLUS_DAYS"
)

// TrainingFrequencies lists every TrainingFrequency in declaration order.
var TrainingFrequencies = []TrainingFrequency{FrequencyTwoToThree, FrequencyFourToFive, FrequencySixPlus}

// Valid reports whether f is a known training frequency.
func (f TrainingFrequency) Valid() bool { return slices.Contains(TrainingFrequencies, f) }

// DietaryPreference is the user's diet restriction.
type DietaryPreference string

// Dietary preferences.
const (
	DietVegetarian     DietaryPreference = "VEGETARIAN"
	DietVegan          DietaryPreference = "VEGAN"
	DietGlutenFree     DietaryPreference = "GLUTEN_FREE"
	DietKeto           DietaryPreference = "KETO"
	DietNoRestrictions DietaryPreference = "NO_RESTRICTIONS"
)

// DietaryPreferences lists every DietaryPreference in declaration order.
var DietaryPreferences = []DietaryPreference{DietVegetarian, DietVegan, DietGlutenFree, DietKeto, DietNoRestrictions}

// Valid reports whether p is a known dietary preference.
func (p DietaryPreference) Valid() bool { return slices.Contains(DietaryPreferences, p) }

// MealType is the slot of the day a meal belongs to.
type MealType string

// Meal types.
const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

// MealTypes lists every MealType in the order a day is planned.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Valid reports whether t is a known meal type.
func (t MealType) Valid() bool { return slices.Contains(MealTypes, t) }

// TrainingType is the kind of a training session.
type TrainingType string

// Training types.
const (
	TrainingStrength       TrainingType = "STRENGTH"
	TrainingCardio         TrainingType = "CARDIO"
	TrainingFlexibility    TrainingType = "FLEXIBILITY"
	TrainingSportsSpecific TrainingType = "SPORTS_SPECIFIC"
	TrainingRecovery       TrainingType = "RECOVERY"
	TrainingOther          TrainingType = "OTHER"
)

// TrainingTypes lists every TrainingType in declaration order.
var TrainingTypes = []TrainingType{
	TrainingStrength, TrainingCardio, TrainingFlexibility,
	TrainingSportsSpecific, TrainingRecovery, TrainingOther,
}

// Valid reports whether t is a known training type.
func (t TrainingType) Valid() bool { return slices.Contains(TrainingTypes, t) }

// Intensity is the perceived effort of a training session.
type Intensity string

// Intensities.
const (
	IntensityLow      Intensity = "LOW"
	IntensityModerate Intensity = "MODERATE"
	IntensityHigh     Intensity = "HIGH"
	IntensityMaximum  Intensity = "MAXIMUM"
)

// Intensities lists every Intensity from lowest to highest.
var Intensities = []Intensity{IntensityLow, IntensityModerate, IntensityHigh, IntensityMaximum}

// Valid reports whether i is a known intensity.
func (i Intensity) Valid() bool { return slices.Contains(Intensities, i) }

// GroceryCategory is the aisle a grocery item is shelved under.
type GroceryCategory string

// Grocery categories.
const (
	GroceryProtein    GroceryCategory = "PROTEIN"
	GroceryDairy      GroceryCategory = "DAIRY"
	GroceryGrains     GroceryCategory = "GRAINS"
	GroceryFruits     GroceryCategory = "FRUITS"
	GroceryVegetables GroceryCategory = "VEGETABLES"
	GroceryFatsOils   GroceryCategory = "FATS_OILS"
	GroceryBeverages  GroceryCategory = "BEVERAGES"
	GrocerySnacks     GroceryCategory = "SNACKS"
	GroceryCondiments GroceryCategory = "CONDIMENTS"
	GroceryOther      GroceryCategory = "OTHER"
)

// GroceryCategories lists every GroceryCategory in declaration order.
var GroceryCategories = []GroceryCategory{
	GroceryProtein, GroceryDairy, GroceryGrains, GroceryFruits, GroceryVegetables,
	GroceryFatsOils, GroceryBeverages, GrocerySnacks, GroceryCondiments, GroceryOther,
}

// Valid reports whether c is a known grocery category.
func (c GroceryCategory) Valid() bool { return slices.Contains(GroceryCategories, c) }
