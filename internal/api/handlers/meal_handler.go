package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nutrilog/domain"
	"nutrilog/internal/api/presenters"
	"nutrilog/pkg/meal"
)

type (
	MealHandler interface {
		ListMeals(c *fiber.Ctx) error
		LogMeal(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
		GetProgressHistory(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) ListMeals(c *fiber.Ctx) error {
	meals, err := h.mealService.ListMeals(c.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMeals, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, meals)
}

func (h *mealHandler) LogMeal(c *fiber.Ctx) error {
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	m, err := h.mealService.LogMeal(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUnitMeasure) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogMeal, err)
	}
	return presenters.JSONResponse(c, fiber.StatusCreated, m)
}

func (h *mealHandler) UpdateMeal(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMealNotFound, err)
	}

	req := new(domain.UpdateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}

	m, err := h.mealService.UpdateMeal(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMealNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateMeal, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, m)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMealNotFound, err)
	}

	if err := h.mealService.DeleteMeal(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageMealNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMeal, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *mealHandler) GetProgress(c *fiber.Ctx) error {
	progress, err := h.mealService.GetProgress(c.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProgress, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, progress)
}

func (h *mealHandler) GetProgressHistory(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}

	history, err := h.mealService.GetProgressHistory(c.Context(), days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProgress, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, history)
}
