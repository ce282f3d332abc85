// Package recipetest provides in-memory stand-ins for the recipe table and
// the image bucket.
package recipetest

import (
	"Recette/entities"
	"Recette/internal/utils/storage"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository is an in-memory recipe table. Every insert gets a created_at
// one second after the previous one, so ordering is deterministic.
type Repository struct {
	mu      sync.Mutex
	rows    []entities.Recipe
	clock   time.Time
	Calls   int
	ListErr error
	// InsertErr fails every insert while set.
	InsertErr error
}

func NewRepository(seed ...entities.Recipe) *Repository {
	r := &Repository{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	for _, row := range seed {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		if row.CreatedAt.IsZero() {
			r.clock = r.clock.Add(time.Second)
			row.CreatedAt = r.clock
		}
		r.rows = append(r.rows, row)
	}
	return r
}

func (r *Repository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++

	if r.InsertErr != nil {
		return r.InsertErr
	}

	r.clock = r.clock.Add(time.Second)
	recipe.ID = uuid.New()
	recipe.CreatedAt = r.clock
	r.rows = append(r.rows, *recipe)
	return nil
}

func (r *Repository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++

	if r.ListErr != nil {
		return nil, r.ListErr
	}

	out := make([]*entities.Recipe, 0, len(r.rows))
	for i := range r.rows {
		row := r.rows[i]
		out = append(out, &row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Rows returns the stored rows in insertion order.
func (r *Repository) Rows() []entities.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Recipe(nil), r.rows...)
}

type Object struct {
	Body        []byte
	ContentType string
}

// Storage is an in-memory bucket that serves objects under BaseURL.
type Storage struct {
	mu        sync.Mutex
	BaseURL   string
	Objects   map[string]Object
	Calls     int
	UploadErr error
}

var _ storage.AwsS3 = (*Storage)(nil)

func NewStorage() *Storage {
	return &Storage{
		BaseURL: "https://storage.test/recipe-images",
		Objects: map[string]Object{},
	}
}

func (s *Storage) UploadFile(_ context.Context, objectKey string, body []byte, contentType string, _ ...string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++

	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	s.Objects[objectKey] = Object{Body: append([]byte(nil), body...), ContentType: contentType}
	return objectKey, nil
}

func (s *Storage) GetPublicLinkKey(objectKey string) string {
	return s.BaseURL + "/" + objectKey
}

// Keys returns the stored object keys.
func (s *Storage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.Objects))
	for k := range s.Objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
