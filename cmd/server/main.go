package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sammblanc/armariointeligente2.0/internal/config"
	"github.com/sammblanc/armariointeligente2.0/internal/database"
	"github.com/sammblanc/armariointeligente2.0/internal/handlers"
	"github.com/sammblanc/armariointeligente2.0/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Armário Inteligente",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
