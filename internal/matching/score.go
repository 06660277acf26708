package matching

import "strings"

// Score returns the share of recipeIngredients covered by userIngredients as
// a rounded percentage, and the uncovered recipe ingredients in recipe order
// with their original casing.
//
// A recipe ingredient is covered when, after lower-casing and trimming,
// either it contains a user ingredient or a user ingredient contains it.
// "onion" covers "green onion" and "green onion" covers "onion". Blank
// entries on either side are ignored; a recipe with no non-blank
// ingredients scores 0.
func Score(userIngredients, recipeIngredients []string) (int, []string) {
	missing := make([]string, 0)

	user := make([]string, 0, len(userIngredients))
	for _, u := range userIngredients {
		if n := normalize(u); n != "" {
			user = append(user, n)
		}
	}

	matched, total := 0, 0
	for _, ing := range recipeIngredients {
		n := normalize(ing)
		if n == "" {
			continue
		}
		total++
		if covered(n, user) {
			matched++
			continue
		}
		missing = append(missing, ing)
	}

	return percentage(matched, total), missing
}

func covered(recipeIng string, user []string) bool {
	for _, u := range user {
		if strings.Contains(recipeIng, u) || strings.Contains(u, recipeIng) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// percentage rounds half up: 1 of 8 is 12.5% and becomes 13.
func percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (matched*200 + total) / (2 * total)
}
