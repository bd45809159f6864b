package meal

import (
	"math"
	"sort"
	"time"

	"nutrilog/domain"
	"nutrilog/entities"
)

// Display order: Breakfast < Lunch < Dinner < Snack.
var categoryRank = map[string]int{
	entities.CategoryBreakfast: 1,
	entities.CategoryLunch:     2,
	entities.CategoryDinner:    3,
	entities.CategorySnack:     4,
}

// CategoryForHour maps an hour of day to a meal category: 05–11 Breakfast,
// 11–16 Lunch, 16–22 Dinner, else Snack.
func CategoryForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return entities.CategoryBreakfast
	case hour >= 11 && hour < 16:
		return entities.CategoryLunch
	case hour >= 16 && hour < 22:
		return entities.CategoryDinner
	default:
		return entities.CategorySnack
	}
}

func CategoryForTime(t time.Time) string {
	return CategoryForHour(t.Hour())
}

// Normalize assigns a category to a legacy meal that has none by
// inspecting the hour of its stored timestamp. A plain calendar date (or
// anything unparseable) has hour 0 and lands on Snack. The result is for
// display and aggregation only; it is never written back to the store.
func Normalize(m entities.Meal) entities.Meal {
	if m.Category != "" {
		return m
	}
	m.Category = CategoryForHour(storedHour(m.Date))
	return m
}

func storedHour(date string) int {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.UTC().Hour()
	}
	return 0
}

// SortByCategory orders meals for display; ties keep their original
// relative order.
func SortByCategory(meals []entities.Meal) {
	sort.SliceStable(meals, func(i, j int) bool {
		return categoryRank[meals[i].Category] < categoryRank[meals[j].Category]
	})
}

// Aggregate sums calories and macro grams across meals; an empty input
// yields all-zero totals.
func Aggregate(meals []entities.Meal) domain.DailyTotals {
	var totals domain.DailyTotals
	for _, m := range meals {
		totals.Calories += m.TotalCalories
		totals.Protein += m.Macros.Protein.Grams
		totals.Carbohydrates += m.Macros.Carbohydrates.Grams
		totals.Fat += m.Macros.Fat.Grams
	}
	return totals
}

// PercentOfTarget reports current as a rounded percentage of target,
// yielding 0 instead of dividing by zero.
func PercentOfTarget(current, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(target) * 100))
}

// Recalculate rebuilds a meal's totals as quantity-weighted sums of its
// ingredients; macro percentages are each macro's share of the summed
// macro grams. Meals logged without ingredients keep their submitted
// totals.
func Recalculate(m *entities.Meal) {
	if len(m.Ingredients) == 0 {
		return
	}

	var calories, protein, carbs, fat float64
	for _, ing := range m.Ingredients {
		calories += ing.Calories * ing.Quantity
		protein += ing.Protein * ing.Quantity
		carbs += ing.Carbs * ing.Quantity
		fat += ing.Fat * ing.Quantity
	}

	totalGrams := protein + carbs + fat
	share := func(v float64) int {
		if totalGrams <= 0 {
			return 0
		}
		return int(math.Round(v / totalGrams * 100))
	}

	m.TotalCalories = int(math.Round(calories))
	m.Macros = entities.Macros{
		Protein:       entities.MacroInfo{Grams: int(math.Round(protein)), Percentage: share(protein)},
		Carbohydrates: entities.MacroInfo{Grams: int(math.Round(carbs)), Percentage: share(carbs)},
		Fat:           entities.MacroInfo{Grams: int(math.Round(fat)), Percentage: share(fat)},
	}
}
