package service

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrRecipeNameRequired = errors.New("recipe name is required")
	// ErrInvalidCatalog wraps problems found in an import file.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
