package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nutrilog/domain"
	"nutrilog/internal/api/presenters"
	"nutrilog/pkg/analysis"
)

type (
	AnalysisHandler interface {
		AnalyzeMeal(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService) AnalysisHandler {
	return &analysisHandler{analysisService: analysisService}
}

// AnalyzeMeal accepts a multipart form with an optional "text" field and
// an optional "image" file; at least one must be present.
func (h *analysisHandler) AnalyzeMeal(c *fiber.Ctx) error {
	text := c.FormValue("text")
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	result, err := h.analysisService.AnalyzeMeal(c.Context(), text, image)
	if err != nil {
		var noFood *domain.NoFoodError
		switch {
		case errors.Is(err, domain.ErrAnalysisInputMissing):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageAnalysisInputMissing, err)
		case errors.Is(err, domain.ErrMissingAPIKey):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageMissingAPIKey, err)
		case errors.As(err, &noFood):
			// The model recognized the input but found no food in it;
			// shown inline, not treated as a failure.
			return presenters.JSONResponse(c, fiber.StatusOK, fiber.Map{"error": noFood.Message})
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageAnalysisFailed, err)
		}
	}
	return presenters.JSONResponse(c, fiber.StatusOK, result)
}
