package model

import (
	"time"
)

// User is an anonymous visitor identified by a random session id.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SessionID  string         `gorm:"size:255;not null;uniqueIndex" json:"session_id"`
	CreatedAt  time.Time      `json:"created_at"`
	LastActive time.Time      `json:"last_active"`
	Favorites  []UserFavorite `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type UserFavorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_recipe_favorite" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_user_recipe_favorite;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
	Recipe    Recipe    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}

// AllModels lists every table in dependency order for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Recipe{},
		&Ingredient{},
		&Tag{},
		&RecipeIngredient{},
		&RecipeStep{},
		&RecipeTag{},
		&User{},
		&UserFavorite{},
	}
}
