package types

// Category classifies a recipe. The list is the single source of truth shared
// by request validation, the persistence migration default and the enum sent
// to the generation API, so the three can never drift apart.
type Category string

const (
	CategoryDrinks  Category = "Drinks"
	CategorySoups   Category = "Soups"
	CategoryGrilled Category = "Grilled Food"
	CategoryMyanmar Category = "Myanmar Traditional Food"
	CategoryThai    Category = "Thai Traditional Food"
	CategoryTaang   Category = "Ta'ang (Palaung) Traditional Food"
	CategoryOther   Category = "Other"
)

// CategoryAll is the filter sentinel that matches every category. It is not
// itself a valid recipe category.
const CategoryAll Category = "All"

// Categories returns every valid recipe category, in display order.
func Categories() []Category {
	return []Category{
		CategoryDrinks,
		CategorySoups,
		CategoryGrilled,
		CategoryMyanmar,
		CategoryThai,
		CategoryTaang,
		CategoryOther,
	}
}

// CategoryNames returns the categories as plain strings, for schema enums.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// IsValidCategory reports whether s names one of the known categories.
func IsValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}
