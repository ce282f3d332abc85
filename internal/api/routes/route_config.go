package routes

import (
	"Recette/internal/api/handlers"
	"Recette/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	PageHandler   handlers.PageHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.SecurityHeaders())
	c.Page()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Page() {
	c.App.Get("/", c.PageHandler.Index)
	c.App.Post("/", c.PageHandler.Submit)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.CORSMiddleware())
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
