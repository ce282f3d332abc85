package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessCreateRecipe = "recipe created successfully"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUploadImage  = "failed to upload recipe image"

	// MessageAlertCreateRecipe is the only failure text shown on the page.
	MessageAlertCreateRecipe = "Error creating recipe. Please try again."

	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	// ImageUpload is a selected image held fully in memory.
	ImageUpload struct {
		Name        string
		ContentType string
		Data        []byte
	}

	CreateRecipeRequest struct {
		Title        string       `json:"title" form:"title" validate:"required"`
		Description  string       `json:"description" form:"description"`
		Ingredients  string       `json:"ingredients" form:"ingredients" validate:"required"`
		Instructions string       `json:"instructions" form:"instructions" validate:"required"`
		Image        *ImageUpload `json:"-" form:"-"`
	}

	Recipe struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		ImageURL     string    `json:"image_url"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
