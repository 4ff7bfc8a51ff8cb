package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culina-app/backend/internal/types"
)

func filterFixture() []types.Recipe {
	return []types.Recipe{
		{ID: "1", Name: "Mohinga", CookingTime: 45, Category: types.CategoryMyanmar},
		{ID: "2", Name: "Tom Yum Soup", CookingTime: 30, Category: types.CategorySoups},
		{ID: "3", Name: "Quick Fried Rice", CookingTime: 20, Category: types.CategoryOther},
		{ID: "4", Name: "Chicken Soup", CookingTime: 60, Category: types.CategorySoups},
	}
}

func ids(recipes []types.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestFilterRecipesNoCriteriaReturnsAll(t *testing.T) {
	in := filterFixture()
	out := FilterRecipes(in, "", nil, types.CategoryAll)
	assert.Equal(t, ids(in), ids(out))
}

func TestFilterRecipesTimeLimitIsExclusive(t *testing.T) {
	in := []types.Recipe{
		{ID: "a", Name: "A", CookingTime: 20},
		{ID: "b", Name: "B", CookingTime: 30},
		{ID: "c", Name: "C", CookingTime: 45},
	}
	// A recipe taking exactly the limit does not qualify as "under".
	out := FilterRecipes(in, "", intPtr(30), types.CategoryAll)
	assert.Equal(t, []string{"a"}, ids(out))
}

func TestFilterRecipesQueryIsCaseInsensitiveSubstring(t *testing.T) {
	out := FilterRecipes(filterFixture(), "soUP", nil, types.CategoryAll)
	assert.Equal(t, []string{"2", "4"}, ids(out))

	out = FilterRecipes(filterFixture(), "noodle", nil, types.CategoryAll)
	assert.Empty(t, out)
}

func TestFilterRecipesByCategory(t *testing.T) {
	out := FilterRecipes(filterFixture(), "", nil, types.CategorySoups)
	assert.Equal(t, []string{"2", "4"}, ids(out))

	// Empty category behaves like CategoryAll.
	out = FilterRecipes(filterFixture(), "", nil, "")
	assert.Len(t, out, 4)
}

func TestFilterRecipesCombinesCriteriaWithAND(t *testing.T) {
	// "soup" + Soups + under 60: Chicken Soup fails the time bound,
	// Tom Yum Soup passes everything.
	out := FilterRecipes(filterFixture(), "soup", intPtr(60), types.CategorySoups)
	assert.Equal(t, []string{"2"}, ids(out))
}

func TestFilterRecipesPreservesInputOrder(t *testing.T) {
	in := []types.Recipe{
		{ID: "z", Name: "Zebra Soup", CookingTime: 10, Category: types.CategorySoups},
		{ID: "a", Name: "Apple Soup", CookingTime: 10, Category: types.CategorySoups},
		{ID: "m", Name: "Mango Soup", CookingTime: 10, Category: types.CategorySoups},
	}
	out := FilterRecipes(in, "soup", nil, types.CategoryAll)
	assert.Equal(t, []string{"z", "a", "m"}, ids(out))
}
