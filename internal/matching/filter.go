package matching

import (
	"strings"

	"github.com/vegichef/backend/internal/types"
)

// AllMealTypes disables the meal-type filter.
const AllMealTypes = "All"

// filterTags maps a recognized filter key to the tag a recipe must carry.
// Both the snake_case key sent by the web client and the hyphenated form are
// accepted.
var filterTags = map[string]string{
	"no_onion_garlic": "no onion/garlic",
	"no-onion-garlic": "no onion/garlic",
	"jain":            "jain",
	"satvik":          "satvik",
	"quick":           "quick",
	"healthy":         "healthy",
}

// Filter keeps the recipes that match the meal type and carry every tag
// required by an active filter. Unknown filter keys are ignored.
func Filter(recipes []types.Recipe, filters map[string]bool, mealType string) []types.Recipe {
	required := requiredTags(filters)
	checkMeal := mealType != "" && !strings.EqualFold(mealType, AllMealTypes)

	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if checkMeal && !strings.EqualFold(r.Type, mealType) {
			continue
		}
		if !hasAllTags(r.Tags, required) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func requiredTags(filters map[string]bool) []string {
	seen := make(map[string]bool)
	var tags []string
	for key, active := range filters {
		if !active {
			continue
		}
		tag, ok := filterTags[key]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func hasAllTags(recipeTags, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(recipeTags))
	for _, t := range recipeTags {
		have[strings.ToLower(strings.TrimSpace(t))] = true
	}
	for _, t := range required {
		if !have[t] {
			return false
		}
	}
	return true
}
