package model

import (
	"time"
)

// Recipe is a catalog entry. Ingredients, steps and tags live in their own
// tables and are joined back in when the catalog is loaded.
type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Name        string             `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Time        string             `gorm:"size:50;not null" json:"time"`
	Type        string             `gorm:"size:50;not null;index" json:"type"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Steps       []RecipeStep       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tags        []RecipeTag        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient names are stored lower-cased and trimmed.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     string     `gorm:"size:50" json:"quantity,omitempty"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type RecipeStep struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RecipeID    uint   `gorm:"not null;uniqueIndex:idx_recipe_step" json:"recipe_id"`
	StepNumber  int    `gorm:"not null;uniqueIndex:idx_recipe_step" json:"step_number"`
	Description string `gorm:"type:text;not null" json:"description"`
}

func (RecipeStep) TableName() string {
	return "recipe_steps"
}

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}

type RecipeTag struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_recipe_tag" json:"recipe_id"`
	TagID    uint `gorm:"not null;uniqueIndex:idx_recipe_tag" json:"tag_id"`
	Tag      Tag  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
