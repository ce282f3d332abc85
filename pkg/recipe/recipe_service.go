package recipe

import (
	"Recette/domain"
	"Recette/entities"
	"Recette/internal/utils/storage"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type (
	// RecipeService is everything the page and the API need from the backend.
	RecipeService interface {
		ListRecipes(ctx context.Context) ([]domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		UploadImage(ctx context.Context, image domain.ImageUpload) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toDomain(r))
	}
	return res, nil
}

// CreateRecipe uploads the optional image, then inserts the row. The two
// calls are independent: if the insert fails the uploaded object stays in
// the bucket.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	imageURL := ""
	if req.Image != nil {
		url, err := s.UploadImage(ctx, *req.Image)
		if err != nil {
			return domain.Recipe{}, err
		}
		imageURL = url
	}

	recipe := &entities.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     imageURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("insert recipe: %w", err)
	}

	return toDomain(recipe), nil
}

// UploadImage stores the image under a random key and returns its public URL.
func (s *recipeService) UploadImage(ctx context.Context, image domain.ImageUpload) (string, error) {
	contentType := image.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image.Data)
	}

	objectKey, err := s.s3.UploadFile(ctx, ObjectKey(image.Name), image.Data, contentType, storage.AllowImage...)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return s.s3.GetPublicLinkKey(objectKey), nil
}

// ObjectKey derives a random storage key that keeps the file's extension.
func ObjectKey(fileName string) string {
	key := uuid.NewString()
	if ext := strings.TrimPrefix(filepath.Ext(fileName), "."); ext != "" {
		key += "." + strings.ToLower(ext)
	}
	return key
}

func toDomain(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           r.ID.String(),
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
	}
}
