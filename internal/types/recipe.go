package types

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Recipe is one dish record. ID and CreatedAt are assigned by the persistence
// gateway on creation and never change afterwards.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	CookingTime int      `json:"cookingTime"` // minutes
	ImageURL    string   `json:"imageUrl,omitempty"`
	Category    Category `json:"category"`
	CreatedAt   int64    `json:"createdAt"` // milliseconds since epoch
}

// DisplayImageURL returns the recipe image, falling back to a deterministic
// placeholder derived from the name and category when none is set.
func (r Recipe) DisplayImageURL() string {
	if r.ImageURL != "" {
		return r.ImageURL
	}
	return FallbackImageURL(r.Name, r.Category)
}

// FallbackImageURL builds a stable placeholder image reference for a dish.
// The same name and category always map to the same image.
func FallbackImageURL(name string, category Category) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	h.Write([]byte("|"))
	h.Write([]byte(category))
	return fmt.Sprintf("https://picsum.photos/seed/%x/400/300", h.Sum32())
}

// RecipeFormData is the shape submitted by the create/edit form and returned
// by the generation API. Ingredients and Steps are multi-line text blocks,
// not lists; SplitLines derives the stored sequences.
type RecipeFormData struct {
	Name        string `json:"name" binding:"required"`
	Ingredients string `json:"ingredients" binding:"required"`
	Steps       string `json:"steps" binding:"required"`
	CookingTime int    `json:"cookingTime" binding:"required,min=1"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category" binding:"required,recipecategory"`
}

// SplitLines splits a text block on newlines and drops blank lines,
// preserving the order of the remaining ones.
func SplitLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
