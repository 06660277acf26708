package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/types"
)

// CatalogService loads the recipe catalog from the relational store.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ImportStats reports what an import left in the store.
type ImportStats struct {
	Recipes     int64 `json:"recipes"`
	Ingredients int64 `json:"ingredients"`
	Tags        int64 `json:"tags"`
}

// withRelations preloads ingredients, steps and tags in their stored order.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_steps.step_number") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_tags.id") }).
		Preload("Tags.Tag")
}

// ListRecipes returns every recipe in insertion order, flattened.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	var recipes []model.Recipe
	if err := withRelations(s.db.WithContext(ctx)).Order("recipes.id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	return flatten(recipes), nil
}

// ListIngredientNames returns all known ingredient names sorted ascending.
func (s *CatalogService) ListIngredientNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := s.db.WithContext(ctx).Model(&model.Ingredient{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	return names, nil
}

// GetRecipeByName looks up a recipe by its exact name.
func (s *CatalogService) GetRecipeByName(ctx context.Context, name string) (*model.Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrRecipeNameRequired
	}
	var recipe model.Recipe
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe %q: %w", name, err)
	}
	return &recipe, nil
}

// Import replaces the catalog with entries in a single transaction.
// Favorites point at recipes and are cleared with them; users are kept.
// Ingredient names are lower-cased and trimmed before de-duplication, tags
// are de-duplicated by exact name and steps are numbered from 1.
func (s *CatalogService) Import(ctx context.Context, entries []types.CatalogEntry) (*ImportStats, error) {
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
	}

	stats := &ImportStats{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resetCatalog(tx); err != nil {
			return err
		}

		ingredientIDs := make(map[string]uint)
		tagIDs := make(map[string]uint)

		for _, e := range entries {
			if err := importEntry(tx, e, ingredientIDs, tagIDs); err != nil {
				return err
			}
			logger.Debug("imported recipe", zap.String("name", e.Name))
		}

		if err := tx.Model(&model.Recipe{}).Count(&stats.Recipes).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Ingredient{}).Count(&stats.Ingredients).Error; err != nil {
			return err
		}
		return tx.Model(&model.Tag{}).Count(&stats.Tags).Error
	})
	if err != nil {
		return nil, fmt.Errorf("catalog import failed: %w", err)
	}

	logger.Info("catalog imported",
		zap.Int64("recipes", stats.Recipes),
		zap.Int64("ingredients", stats.Ingredients),
		zap.Int64("tags", stats.Tags))
	return stats, nil
}

func resetCatalog(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []interface{}{
		&model.UserFavorite{},
		&model.RecipeTag{},
		&model.RecipeStep{},
		&model.RecipeIngredient{},
		&model.Recipe{},
		&model.Ingredient{},
		&model.Tag{},
	} {
		if err := all.Delete(m).Error; err != nil {
			return fmt.Errorf("failed to reset catalog: %w", err)
		}
	}
	return nil
}

func importEntry(tx *gorm.DB, e types.CatalogEntry, ingredientIDs, tagIDs map[string]uint) error {
	recipe := model.Recipe{Name: e.Name, Time: e.Time, Type: e.Type}
	if err := tx.Create(&recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe %q: %w", e.Name, err)
	}

	linked := make(map[uint]bool)
	for _, raw := range e.Ingredients {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		id, ok := ingredientIDs[name]
		if !ok {
			ing := model.Ingredient{Name: name}
			if err := tx.Create(&ing).Error; err != nil {
				return fmt.Errorf("failed to create ingredient %q: %w", name, err)
			}
			id = ing.ID
			ingredientIDs[name] = id
		}
		if linked[id] {
			continue
		}
		linked[id] = true
		if err := tx.Create(&model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: id}).Error; err != nil {
			return fmt.Errorf("failed to link ingredient %q to %q: %w", name, e.Name, err)
		}
	}

	for i, step := range e.Steps {
		if err := tx.Create(&model.RecipeStep{RecipeID: recipe.ID, StepNumber: i + 1, Description: step}).Error; err != nil {
			return fmt.Errorf("failed to add step %d to %q: %w", i+1, e.Name, err)
		}
	}

	tagged := make(map[uint]bool)
	for _, name := range e.Tags {
		id, ok := tagIDs[name]
		if !ok {
			tag := model.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return fmt.Errorf("failed to create tag %q: %w", name, err)
			}
			id = tag.ID
			tagIDs[name] = id
		}
		if tagged[id] {
			continue
		}
		tagged[id] = true
		if err := tx.Create(&model.RecipeTag{RecipeID: recipe.ID, TagID: id}).Error; err != nil {
			return fmt.Errorf("failed to tag %q with %q: %w", e.Name, name, err)
		}
	}
	return nil
}

// DecodeCatalog parses a recipes.json document: a JSON array of entries.
func DecodeCatalog(r io.Reader) ([]types.CatalogEntry, error) {
	var entries []types.CatalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return entries, nil
}

func flatten(recipes []model.Recipe) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipe(r))
	}
	return out
}

func toRecipe(r model.Recipe) types.Recipe {
	rec := types.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Time:        r.Time,
		Type:        r.Type,
		Ingredients: make([]string, 0, len(r.Ingredients)),
		Steps:       make([]string, 0, len(r.Steps)),
		Tags:        make([]string, 0, len(r.Tags)),
	}
	for _, ri := range r.Ingredients {
		rec.Ingredients = append(rec.Ingredients, ri.Ingredient.Name)
	}
	for _, st := range r.Steps {
		rec.Steps = append(rec.Steps, st.Description)
	}
	for _, rt := range r.Tags {
		rec.Tags = append(rec.Tags, rt.Tag.Name)
	}
	return rec
}
