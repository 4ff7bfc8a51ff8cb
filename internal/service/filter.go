package service

import (
	"strings"

	"github.com/culina-app/backend/internal/types"
)

// FilterRecipes narrows a recipe list by the three independent criteria,
// ANDed together. The result preserves the input order; nothing is re-sorted.
//
//   - query: case-insensitive substring match on the name; empty matches all.
//   - timeLimit: exclusive upper bound in minutes; a recipe taking exactly
//     the limit is excluded. nil matches all.
//   - category: exact match; CategoryAll (or empty) matches all.
//
// The collection is small enough that a full rescan per call is the right
// amount of machinery.
func FilterRecipes(recipes []types.Recipe, query string, timeLimit *int, category types.Category) []types.Recipe {
	q := strings.ToLower(query)
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if q != "" && !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		if timeLimit != nil && r.CookingTime >= *timeLimit {
			continue
		}
		if category != "" && category != types.CategoryAll && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out
}
