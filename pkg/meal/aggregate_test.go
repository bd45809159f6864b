package meal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nutrilog/domain"
	"nutrilog/entities"
)

func TestCategoryForHour(t *testing.T) {
	cases := map[int]string{
		0:  entities.CategorySnack,
		4:  entities.CategorySnack,
		5:  entities.CategoryBreakfast,
		10: entities.CategoryBreakfast,
		11: entities.CategoryLunch,
		15: entities.CategoryLunch,
		16: entities.CategoryDinner,
		21: entities.CategoryDinner,
		22: entities.CategorySnack,
		23: entities.CategorySnack,
	}

	for hour, want := range cases {
		assert.Equal(t, want, CategoryForHour(hour), "hour %d", hour)
	}
}

func TestNormalizeLegacyTimestamp(t *testing.T) {
	m := Normalize(entities.Meal{Date: "2024-01-01T08:15:00Z"})
	assert.Equal(t, entities.CategoryBreakfast, m.Category)
}

func TestNormalizeCalendarDateFallsBackToSnack(t *testing.T) {
	m := Normalize(entities.Meal{Date: "2024-01-01"})
	assert.Equal(t, entities.CategorySnack, m.Category)
}

func TestNormalizeKeepsExistingCategory(t *testing.T) {
	m := Normalize(entities.Meal{Date: "2024-01-01T08:15:00Z", Category: entities.CategoryDinner})
	assert.Equal(t, entities.CategoryDinner, m.Category)
}

func TestCategoryForTime(t *testing.T) {
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, entities.CategoryLunch, CategoryForTime(noon))
}

func TestSortByCategoryIsStable(t *testing.T) {
	meals := []entities.Meal{
		{ID: 1, Category: entities.CategorySnack},
		{ID: 2, Category: entities.CategoryBreakfast},
		{ID: 3, Category: entities.CategoryDinner},
		{ID: 4, Category: entities.CategoryBreakfast},
		{ID: 5, Category: entities.CategoryLunch},
	}

	SortByCategory(meals)

	order := make([]int64, 0, len(meals))
	for _, m := range meals {
		order = append(order, m.ID)
	}
	assert.Equal(t, []int64{2, 4, 5, 3, 1}, order)
}

func TestAggregateEmptyIsZero(t *testing.T) {
	assert.Equal(t, domain.DailyTotals{}, Aggregate(nil))
	assert.Equal(t, domain.DailyTotals{}, Aggregate([]entities.Meal{}))
}

func TestAggregateSums(t *testing.T) {
	meals := []entities.Meal{
		{
			TotalCalories: 500,
			Macros: entities.Macros{
				Protein:       entities.MacroInfo{Grams: 30},
				Carbohydrates: entities.MacroInfo{Grams: 50},
				Fat:           entities.MacroInfo{Grams: 20},
			},
		},
		{
			TotalCalories: 300,
			Macros: entities.Macros{
				Protein:       entities.MacroInfo{Grams: 10},
				Carbohydrates: entities.MacroInfo{Grams: 40},
				Fat:           entities.MacroInfo{Grams: 5},
			},
		},
	}

	got := Aggregate(meals)

	assert.Equal(t, domain.DailyTotals{
		Calories:      800,
		Protein:       40,
		Carbohydrates: 90,
		Fat:           25,
	}, got)
}

func TestPercentOfTarget(t *testing.T) {
	assert.Equal(t, 50, PercentOfTarget(1000, 2000))
	assert.Equal(t, 33, PercentOfTarget(1, 3))
	assert.Equal(t, 150, PercentOfTarget(3000, 2000), "overshoot is not clamped")
	assert.Equal(t, 0, PercentOfTarget(500, 0), "zero target never divides")
	assert.Equal(t, 0, PercentOfTarget(500, -10))
}

func TestRecalculateQuantityWeighted(t *testing.T) {
	m := entities.Meal{
		TotalCalories: 999,
		Ingredients: []entities.Ingredient{
			{Name: "rice", Quantity: 2, Unit: "cup", Calories: 200, Protein: 4, Carbs: 45, Fat: 0.5},
			{Name: "chicken", Quantity: 1, Unit: "piece", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
		},
	}

	Recalculate(&m)

	// calories = 200*2 + 165 = 565
	assert.Equal(t, 565, m.TotalCalories)
	// protein = 39, carbs = 90, fat = 4.6 -> grams 39/90/5
	assert.Equal(t, 39, m.Macros.Protein.Grams)
	assert.Equal(t, 90, m.Macros.Carbohydrates.Grams)
	assert.Equal(t, 5, m.Macros.Fat.Grams)
	// shares of 133.6 summed grams
	assert.Equal(t, 29, m.Macros.Protein.Percentage)
	assert.Equal(t, 67, m.Macros.Carbohydrates.Percentage)
	assert.Equal(t, 3, m.Macros.Fat.Percentage)
}

func TestRecalculateNoIngredientsKeepsTotals(t *testing.T) {
	m := entities.Meal{
		TotalCalories: 350,
		Macros:        entities.Macros{Protein: entities.MacroInfo{Grams: 12, Percentage: 40}},
	}

	Recalculate(&m)

	assert.Equal(t, 350, m.TotalCalories)
	assert.Equal(t, 12, m.Macros.Protein.Grams)
}

func TestRecalculateZeroMacroGrams(t *testing.T) {
	m := entities.Meal{
		Ingredients: []entities.Ingredient{
			{Name: "black coffee", Quantity: 1, Unit: "cup", Calories: 2},
		},
	}

	Recalculate(&m)

	assert.Equal(t, 2, m.TotalCalories)
	assert.Equal(t, 0, m.Macros.Protein.Percentage)
	assert.Equal(t, 0, m.Macros.Carbohydrates.Percentage)
	assert.Equal(t, 0, m.Macros.Fat.Percentage)
}
