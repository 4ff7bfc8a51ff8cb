package service

import "github.com/culina-app/backend/internal/types"

// libraryBooks is the static catalog behind the library view. The titles are
// fixed; there is no persistence or editing.
var libraryBooks = []types.Book{
	{
		ID:          1,
		Title:       "Myanmar Classics",
		Author:      "Daw Nu",
		Description: "A collection of 50 timeless recipes from the heart of Myanmar.",
		ImageURL:    "https://images.unsplash.com/photo-1598514983318-2f64f8f4796c?q=80&w=600&auto=format&fit=crop",
	},
	{
		ID:          2,
		Title:       "Soups & Stews",
		Author:      "Culina Kitchen",
		Description: "Warm your soul with these rustic broths and hearty stews.",
		ImageURL:    "https://images.unsplash.com/photo-1547592180-85f173990554?q=80&w=600&auto=format&fit=crop",
	},
	{
		ID:          3,
		Title:       "The Art of Grilling",
		Author:      "Chef Marco",
		Description: "Master the flame with techniques for meats and vegetables.",
		ImageURL:    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?q=80&w=600&auto=format&fit=crop",
	},
	{
		ID:          4,
		Title:       "Ta'ang Tea Culture",
		Author:      "Mountain Heritage",
		Description: "Explore the culinary traditions of the tea-growing regions.",
		ImageURL:    "https://images.unsplash.com/photo-1594488516993-9c5950d877f0?q=80&w=600&auto=format&fit=crop",
	},
}

// LibraryBooks returns the library catalog.
func LibraryBooks() []types.Book {
	out := make([]types.Book, len(libraryBooks))
	copy(out, libraryBooks)
	return out
}
