package entities

const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategorySnack     = "Snack"
)

// UnitPlaceholder is assigned to ingredients until the user picks a real
// unit from MeasurementUnits.
const UnitPlaceholder = "unit"

var MeasurementUnits = []string{"g", "oz", "cup", "tbsp", "tsp", "slice", "piece", "whole", "half"}

type MacroInfo struct {
	Grams      int `json:"grams"`
	Percentage int `json:"percentage"`
}

type Macros struct {
	Protein       MacroInfo `json:"protein"`
	Carbohydrates MacroInfo `json:"carbohydrates"`
	Fat           MacroInfo `json:"fat"`
}

// Ingredient carries per-unit nutrition values; Quantity is the
// user-adjustable multiplier applied when meal totals are recomputed.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal is one logged meal. Date is the calendar form "2006-01-02" for
// everything written today; legacy records may still carry a full
// timestamp and are matched by prefix.
type Meal struct {
	ID            int64        `json:"id"`
	Date          string       `json:"date"`
	Category      string       `json:"category,omitempty"`
	MealName      string       `json:"mealName"`
	TotalCalories int          `json:"totalCalories"`
	Macros        Macros       `json:"macros"`
	Ingredients   []Ingredient `json:"ingredients"`
}
