package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nutrilog/domain"
	"nutrilog/internal/api/presenters"
	"nutrilog/pkg/profile"
)

type (
	ProfileHandler interface {
		GetProfile(c *fiber.Ctx) error
		SaveProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
		validator      *validator.Validate
	}
)

func NewProfileHandler(profileService profile.ProfileService, validator *validator.Validate) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	p, err := h.profileService.GetProfile(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, p)
}

func (h *profileHandler) SaveProfile(c *fiber.Ctx) error {
	req := new(domain.SaveProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveProfile, err)
	}

	p, err := h.profileService.SaveProfile(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveProfile, err)
	}
	return presenters.JSONResponse(c, fiber.StatusOK, p)
}
