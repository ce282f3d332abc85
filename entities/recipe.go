// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Ingredients  string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions string    `gorm:"type:text;not null" json:"instructions"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	Timestamp
}

func (Recipe) TableName() string {
	return "recipes"
}
