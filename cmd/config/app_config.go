package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Smart-Grocery-Agent/internal/api/handlers"
	"Smart-Grocery-Agent/internal/api/routes"
	"Smart-Grocery-Agent/internal/middleware"
	"Smart-Grocery-Agent/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
)

func NewApp(services *Services, log zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(log)
	validator := utils.Validate

	// setting up access logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// Handler
	catalogHandler := handlers.NewCatalogHandler(services.Catalog, validator)
	cartHandler := handlers.NewCartHandler(services.Cart, validator)
	pantryHandler := handlers.NewPantryHandler(services.Pantry, services.Notify, validator)
	chatHandler := handlers.NewChatHandler(services.Chat, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		CatalogHandler: catalogHandler,
		CartHandler:    cartHandler,
		PantryHandler:  pantryHandler,
		ChatHandler:    chatHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
