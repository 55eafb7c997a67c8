package routes

import (
	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/api/handlers"
	"Smart-Grocery-Agent/internal/api/presenters"
	"Smart-Grocery-Agent/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	CatalogHandler handlers.CatalogHandler
	CartHandler    handlers.CartHandler
	PantryHandler  handlers.PantryHandler
	ChatHandler    handlers.ChatHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestLogger())
	c.GuestRoute()
	c.Catalog()
	c.Cart()
	c.Pantry()
	c.Chat()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(ctx *fiber.Ctx) error {
		return presenters.SuccessResponse(ctx, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")
	{
		catalog.Get("", c.CatalogHandler.GetCatalog)
		catalog.Post("", c.CatalogHandler.AddProduct)
		catalog.Get("/:name", c.CatalogHandler.GetProduct)
		catalog.Put("/:name", c.CatalogHandler.UpdateProduct)
		catalog.Delete("/:name", c.CatalogHandler.DeleteProduct)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart")
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("", c.CartHandler.AddToCart)
		cart.Delete("", c.CartHandler.ClearCart)
		cart.Post("/suggestion", c.CartHandler.ResolveSuggestion)
		cart.Post("/checkout", c.CartHandler.Checkout)
		cart.Delete("/:id", c.CartHandler.RemoveLine)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")
	pantry.Get("/dashboard", c.PantryHandler.GetDashboardStats)
	pantry.Get("", c.PantryHandler.GetPantry)
	pantry.Delete("/:index", c.PantryHandler.DeleteEntry)

	notifications := c.App.Group("/api/v1/notifications")
	notifications.Get("", c.PantryHandler.GetNotifications)
	notifications.Post("/email", c.PantryHandler.SendDigest)

	simulation := c.App.Group("/api/v1/simulation")
	simulation.Get("", c.PantryHandler.GetSimulation)
	simulation.Put("", c.PantryHandler.SetSimulation)
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat")
	{
		chat.Get("", c.ChatHandler.GetTranscript)
		chat.Post("", c.ChatHandler.Send)
		chat.Delete("", c.ChatHandler.Reset)
	}
}
