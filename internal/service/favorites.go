package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/types"
)

// FavoriteService stores which recipes a session user has starred.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Toggle flips the favorite flag for the named recipe and returns the new
// state.
func (s *FavoriteService) Toggle(ctx context.Context, userID uint, recipeName string) (bool, error) {
	if strings.TrimSpace(recipeName) == "" {
		return false, ErrRecipeNameRequired
	}

	var isFavorite bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		err := tx.Where("name = ?", recipeName).First(&recipe).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		if err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).Delete(&model.UserFavorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			isFavorite = false
			return nil
		}

		fav := model.UserFavorite{UserID: userID, RecipeID: recipe.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
			return err
		}
		isFavorite = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return isFavorite, nil
}

// List returns the user's favorite recipes, oldest favorite first.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]types.Recipe, error) {
	var recipes []model.Recipe
	err := withRelations(s.db.WithContext(ctx)).
		Joins("JOIN user_favorites ON user_favorites.recipe_id = recipes.id").
		Where("user_favorites.user_id = ?", userID).
		Order("user_favorites.id").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return flatten(recipes), nil
}

// Check returns the subset of recipeNames the user has favorited.
func (s *FavoriteService) Check(ctx context.Context, userID uint, recipeNames []string) ([]string, error) {
	names := make([]string, 0)
	if len(recipeNames) == 0 {
		return names, nil
	}

	err := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Joins("JOIN user_favorites ON user_favorites.recipe_id = recipes.id").
		Where("user_favorites.user_id = ? AND recipes.name IN ?", userID, recipeNames).
		Order("recipes.id").
		Pluck("recipes.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check favorites: %w", err)
	}
	return names, nil
}
