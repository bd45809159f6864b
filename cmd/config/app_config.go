package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"nutrilog/internal/api/handlers"
	"nutrilog/internal/api/routes"
	"nutrilog/internal/middleware"
	"nutrilog/internal/storage"
	"nutrilog/internal/utils"
	s3storage "nutrilog/internal/utils/storage"
	"nutrilog/pkg/analysis"
	"nutrilog/pkg/meal"
	"nutrilog/pkg/profile"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// store
	dbFile := utils.GetConfig("DB_FILE")
	if dbFile == "" {
		dbFile = "db.json"
	}
	store, err := storage.NewJSONStore(dbFile)
	if err != nil {
		return nil, err
	}

	// utils
	s3 := s3storage.NewAwsS3()
	if s3 == nil {
		log.Info("photo archive disabled: no S3 bucket configured")
	}

	// Repository
	profileRepository := profile.NewProfileRepository(store)
	mealRepository := meal.NewMealRepository(store)

	// Service
	profileService := profile.NewProfileService(profileRepository)
	mealService := meal.NewMealService(mealRepository, profileRepository)
	analysisService := analysis.NewAnalysisService(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
		s3,
	)

	// Handler
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		ProfileHandler:  profileHandler,
		MealHandler:     mealHandler,
		AnalysisHandler: analysisHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
