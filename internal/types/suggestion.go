package types

// RecipeSuggestion is an ephemeral dish recommendation produced from a list
// of pantry ingredients. Suggestions are never persisted; they live in
// session state until the next search or navigation away.
type RecipeSuggestion struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	UsedIngredients    []string `json:"usedIngredients"`
	MissingIngredients []string `json:"missingIngredients"`
}
