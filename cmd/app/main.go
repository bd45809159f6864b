package main

import (
	"github.com/gofiber/fiber/v2/log"

	"nutrilog/cmd/config"
	"nutrilog/internal/utils"
)

func main() {
	utils.LoadConfig()

	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5001"
	}
	log.Fatal(app.Listen(":" + port))
}
