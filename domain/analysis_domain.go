package domain

import (
	"errors"

	"nutrilog/entities"
)

var (
	MessageAnalysisInputMissing = "Please provide text or an image for analysis."
	MessageAnalysisFailed       = "Failed to analyze meal. Please check the server logs."
	MessageMissingAPIKey        = "Server is not configured with a Gemini API key."

	ErrAnalysisInputMissing = errors.New("analysis requires text or an image")
	ErrAnalysisFailed       = errors.New("analysis upstream failed")
	ErrMissingAPIKey        = errors.New("gemini API key not configured")
)

// AnalysisResult is the validated nutrition estimate for one submission.
// It is never persisted; the client edits it and logs the final meal.
type AnalysisResult struct {
	MealName      string                `json:"mealName"`
	TotalCalories int                   `json:"totalCalories"`
	Macros        entities.Macros       `json:"macros"`
	Ingredients   []entities.Ingredient `json:"ingredients"`
}

// NoFoodError is the model explicitly reporting that it could not identify
// a food item. It is a domain outcome shown inline, not a system failure.
type NoFoodError struct {
	Message string
}

func (e *NoFoodError) Error() string {
	return e.Message
}
