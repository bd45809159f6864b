package domain

import (
	"errors"

	"nutrilog/entities"
)

var (
	MessageFailedGetMeals    = "failed to retrieve meals"
	MessageFailedLogMeal     = "failed to log meal"
	MessageFailedUpdateMeal  = "failed to update meal"
	MessageFailedDeleteMeal  = "failed to delete meal"
	MessageFailedGetProgress = "failed to retrieve progress"
	MessageMealNotFound      = "Meal not found"

	ErrMealNotFound       = errors.New("meal not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidUnitMeasure = errors.New("invalid measurement unit")
)

type (
	// LogMealRequest is the finalized draft the client submits after
	// editing the analysis result. The server assigns id, date and
	// category, and recomputes totals from the ingredients.
	LogMealRequest struct {
		MealName      string                `json:"mealName" validate:"required"`
		TotalCalories int                   `json:"totalCalories" validate:"min=0"`
		Macros        entities.Macros       `json:"macros"`
		Ingredients   []entities.Ingredient `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateMealRequest is a partial update; only supplied fields change.
	UpdateMealRequest struct {
		Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		Category string `json:"category" validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
	}

	DailyTotals struct {
		Calories      int `json:"calories"`
		Protein       int `json:"protein"`
		Carbohydrates int `json:"carbohydrates"`
		Fat           int `json:"fat"`
	}

	ProgressPercentages struct {
		Calories      int `json:"calories"`
		Protein       int `json:"protein"`
		Carbohydrates int `json:"carbohydrates"`
		Fat           int `json:"fat"`
	}

	DailyProgressResponse struct {
		Date        string              `json:"date"`
		Totals      DailyTotals         `json:"totals"`
		Targets     entities.Targets    `json:"targets"`
		Percentages ProgressPercentages `json:"percentages"`
	}
)
