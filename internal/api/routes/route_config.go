package routes

import (
	"github.com/gofiber/fiber/v2"

	"nutrilog/internal/api/handlers"
	"nutrilog/internal/middleware"
)

type Config struct {
	App             *fiber.App
	ProfileHandler  handlers.ProfileHandler
	MealHandler     handlers.MealHandler
	AnalysisHandler handlers.AnalysisHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.API()
}

func (c *Config) API() {
	api := c.App.Group("/api")

	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	api.Get("/profile", c.ProfileHandler.GetProfile)
	api.Post("/profile", c.ProfileHandler.SaveProfile)

	api.Get("/meals", c.MealHandler.ListMeals)
	api.Post("/meals", c.MealHandler.LogMeal)
	api.Put("/meals/:id", c.MealHandler.UpdateMeal)
	api.Delete("/meals/:id", c.MealHandler.DeleteMeal)

	api.Get("/progress", c.MealHandler.GetProgress)
	api.Get("/progress/history", c.MealHandler.GetProgressHistory)

	api.Post("/analyze-meal", c.AnalysisHandler.AnalyzeMeal)
}
