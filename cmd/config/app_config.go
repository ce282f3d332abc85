package config

import (
	"Recette/internal/api/handlers"
	"Recette/internal/api/routes"
	"Recette/internal/middleware"
	"Recette/internal/utils"
	"Recette/internal/utils/storage"
	"Recette/internal/view"
	"Recette/pkg/recipe"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// bodyLimit leaves room for an image carried twice: as the file part and as
// the base64 preview field.
const bodyLimit = 16 * 1024 * 1024

func NewApp(db *gorm.DB, s3 storage.AwsS3) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:   "Recette",
		Views:     view.NewEngine(),
		BodyLimit: bodyLimit,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	output, err := logOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     output,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, s3)

	// Handler
	pageHandler := handlers.NewPageHandler(view.NewPage(recipeService, validator))
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		PageHandler:   pageHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// logOutput writes request logs to stdout and, when path is set, to path.
func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stdout, file), nil
}
