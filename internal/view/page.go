package view

import (
	"Recette/pkg/recipe"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// submittedTokens bounds how many used form tokens are remembered.
const submittedTokens = 4096

// Page drives State through the backend calls of the recipe page.
type Page struct {
	recipeService recipe.RecipeService
	validator     *validator.Validate
	submitted     *lru.Cache
}

func NewPage(recipeService recipe.RecipeService, validator *validator.Validate) *Page {
	submitted, _ := lru.New(submittedTokens)
	return &Page{
		recipeService: recipeService,
		validator:     validator,
		submitted:     submitted,
	}
}

// IssueToken gives the form a fresh submission token.
func (p *Page) IssueToken(s State) State {
	s.Form.Token = uuid.NewString()
	return s
}

// claim marks token as used. It reports false for an empty token or one
// that was claimed before, including one whose submission is still running.
func (p *Page) claim(token string) bool {
	if token == "" {
		return false
	}
	seen, _ := p.submitted.ContainsOrAdd(token, struct{}{})
	return !seen
}

// Load replaces the list with every recipe, newest first. Failures are
// logged and leave the list empty.
func (p *Page) Load(ctx context.Context, s State) State {
	s.Loading = true

	recipes, err := p.recipeService.ListRecipes(ctx)
	if err != nil {
		log.Errorw("error fetching recipes", "error", err)
	}
	return Loaded(s, recipes, err)
}

// Submit runs the creation flow once: optional upload, insert, then a fresh
// list. A state that is already uploading, or whose form token was already
// submitted, is returned unchanged.
func (p *Page) Submit(ctx context.Context, s State) State {
	if s.Uploading || !p.claim(s.Form.Token) {
		return s
	}
	s = BeginSubmit(s)

	req := s.Request()
	if err := p.validator.Struct(req); err != nil {
		log.Errorw("error creating recipe", "error", err)
		return SubmitFailed(s)
	}

	if _, err := p.recipeService.CreateRecipe(ctx, req); err != nil {
		log.Errorw("error creating recipe", "error", err)
		return SubmitFailed(s)
	}

	return p.Load(ctx, SubmitSucceeded(s))
}
