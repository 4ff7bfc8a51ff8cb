package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culina-app/backend/internal/types"
)

func validRecipeBody() map[string]any {
	return map[string]any{
		"name":        "Shan Noodles",
		"ingredients": "rice noodles\nchicken\ntomato",
		"steps":       "simmer the sauce\ntoss the noodles",
		"cookingTime": 25,
		"category":    string(types.CategoryMyanmar),
	}
}

func TestListRecipesReturnsSeededCollection(t *testing.T) {
	app := newTestApp(t, nil)

	code, resp := app.do(t, "GET", "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusOK, code)
	recipes := resp["recipes"].([]any)
	assert.NotEmpty(t, recipes)
	assert.Equal(t, false, resp["loading"])
}

func TestListRecipesAppliesFilters(t *testing.T) {
	app := newTestApp(t, nil)

	total := len(app.recipes.Recipes())

	code, resp := app.do(t, "GET", "/api/v1/recipes?category=Soups", nil)
	require.Equal(t, http.StatusOK, code)
	soups := resp["recipes"].([]any)
	assert.Less(t, len(soups), total)
	for _, r := range soups {
		assert.Equal(t, "Soups", r.(map[string]any)["category"])
	}

	// The time bound is exclusive: max_time=N returns recipes strictly
	// under N minutes.
	code, resp = app.do(t, "GET", "/api/v1/recipes?max_time=30", nil)
	require.Equal(t, http.StatusOK, code)
	for _, r := range resp["recipes"].([]any) {
		assert.Less(t, r.(map[string]any)["cookingTime"].(float64), float64(30))
	}

	code, _ = app.do(t, "GET", "/api/v1/recipes?max_time=0", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateRecipe(t *testing.T) {
	app := newTestApp(t, nil)
	before := len(app.recipes.Recipes())

	code, resp := app.do(t, "POST", "/api/v1/recipes", validRecipeBody())
	require.Equal(t, http.StatusCreated, code)

	recipe := resp["recipe"].(map[string]any)
	assert.NotEmpty(t, recipe["id"])
	assert.Equal(t, "Shan Noodles", recipe["name"])
	assert.Equal(t, []any{"rice noodles", "chicken", "tomato"}, recipe["ingredients"])

	// The new recipe leads the collection.
	code, listResp := app.do(t, "GET", "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, code)
	recipes := listResp["recipes"].([]any)
	require.Len(t, recipes, before+1)
	assert.Equal(t, recipe["id"], recipes[0].(map[string]any)["id"])
}

func TestCreateRecipeValidation(t *testing.T) {
	app := newTestApp(t, nil)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing name", func(b map[string]any) { delete(b, "name") }},
		{"missing ingredients", func(b map[string]any) { delete(b, "ingredients") }},
		{"zero cooking time", func(b map[string]any) { b["cookingTime"] = 0 }},
		{"unknown category", func(b map[string]any) { b["category"] = "Dessert" }},
		{"filter sentinel as category", func(b map[string]any) { b["category"] = "All" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validRecipeBody()
			tt.mutate(body)
			code, _ := app.do(t, "POST", "/api/v1/recipes", body)
			assert.Equal(t, http.StatusBadRequest, code)
		})
	}
}

func TestGetRecipe(t *testing.T) {
	app := newTestApp(t, nil)
	existing := app.recipes.Recipes()[0]

	code, resp := app.do(t, "GET", "/api/v1/recipes/"+existing.ID, nil)
	require.Equal(t, http.StatusOK, code)
	recipe := resp["recipe"].(map[string]any)
	assert.Equal(t, existing.Name, recipe["name"])
	assert.NotEmpty(t, resp["displayImageUrl"])

	code, _ = app.do(t, "GET", "/api/v1/recipes/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUpdateRecipe(t *testing.T) {
	app := newTestApp(t, nil)
	existing := app.recipes.Recipes()[1]

	body := validRecipeBody()
	body["name"] = "Renamed Dish"
	code, _ := app.do(t, "PUT", "/api/v1/recipes/"+existing.ID, body)
	require.Equal(t, http.StatusOK, code)

	updated, ok := app.recipes.Get(existing.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed Dish", updated.Name)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
}

func TestUpdateRecipeUnknownIDSucceedsQuietly(t *testing.T) {
	app := newTestApp(t, nil)
	before := len(app.recipes.Recipes())

	code, _ := app.do(t, "PUT", "/api/v1/recipes/no-such-id", validRecipeBody())
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, app.recipes.Recipes(), before)
}

func TestDeleteRecipe(t *testing.T) {
	app := newTestApp(t, nil)
	existing := app.recipes.Recipes()[0]
	before := len(app.recipes.Recipes())

	code, _ := app.do(t, "DELETE", "/api/v1/recipes/"+existing.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, app.recipes.Recipes(), before-1)

	// Deleting again is still a 200; unknown ids are a no-op.
	code, _ = app.do(t, "DELETE", "/api/v1/recipes/"+existing.ID, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, app.recipes.Recipes(), before-1)
}

func TestGenerateRecipe(t *testing.T) {
	recipeJSON := `{"name":"Pad Thai","ingredients":"noodles\nshrimp","steps":"soak\nfry","cookingTime":25,"category":"Thai Traditional Food"}`
	app := newTestApp(t, stubGemini(recipeJSON))
	before := len(app.recipes.Recipes())

	code, resp := app.do(t, "POST", "/api/v1/recipes/generate", map[string]any{"prompt": "pad thai"})
	require.Equal(t, http.StatusOK, code)

	recipe := resp["recipe"].(map[string]any)
	assert.Equal(t, "Pad Thai", recipe["name"])
	assert.Equal(t, float64(25), recipe["cookingTime"])

	// Generation only drafts form data; nothing is saved.
	assert.Len(t, app.recipes.Recipes(), before)
}

func TestGenerateRecipeWithoutAPIKey(t *testing.T) {
	app := newTestApp(t, nil)

	code, resp := app.do(t, "POST", "/api/v1/recipes/generate", map[string]any{"prompt": "anything"})
	assert.Equal(t, http.StatusFailedDependency, code)
	assert.Contains(t, fmt.Sprint(resp["error"]), "GEMINI_API_KEY")
}

func TestGenerateRecipeUpstreamFailure(t *testing.T) {
	app := newTestApp(t, stubGemini("not json at all"))

	code, resp := app.do(t, "POST", "/api/v1/recipes/generate", map[string]any{"prompt": "anything"})
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, fmt.Sprint(resp["error"]), "try again")
}
