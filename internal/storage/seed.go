package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/culina-app/backend/internal/types"
)

// seedRecipes builds the fixed starter collection written the first time the
// recipe key is read and found empty. One dish per category, plus a couple
// of extras, newest first.
func seedRecipes() []types.Recipe {
	now := time.Now().UnixMilli()
	seeds := []struct {
		name        string
		ingredients []string
		steps       []string
		minutes     int
		category    types.Category
	}{
		{
			name: "Mohinga",
			ingredients: []string{
				"500g catfish",
				"2 stalks lemongrass",
				"1 banana stem, sliced",
				"4 tbsp chickpea flour",
				"Fish sauce to taste",
				"Rice noodles",
			},
			steps: []string{
				"Simmer the catfish with lemongrass until tender, then flake the meat.",
				"Return the bones to the pot and boil for a rich stock, then strain.",
				"Thicken the strained broth with chickpea flour and add the banana stem.",
				"Season with fish sauce and serve over rice noodles with crispy fritters.",
			},
			minutes:  45,
			category: types.CategoryMyanmar,
		},
		{
			name: "Tom Yum Goong",
			ingredients: []string{
				"300g prawns",
				"3 cups chicken stock",
				"2 stalks lemongrass, bruised",
				"5 kaffir lime leaves",
				"200g straw mushrooms",
				"3 tbsp lime juice",
				"2 tbsp fish sauce",
				"Bird's eye chilies",
			},
			steps: []string{
				"Bring the stock to a boil with lemongrass, lime leaves and galangal.",
				"Add mushrooms and simmer for three minutes.",
				"Add the prawns and cook just until pink.",
				"Turn off the heat, season with lime juice, fish sauce and chilies.",
			},
			minutes:  30,
			category: types.CategoryThai,
		},
		{
			name: "Ta'ang Pickled Tea Salad",
			ingredients: []string{
				"4 tbsp fermented tea leaves",
				"2 tbsp fried garlic",
				"2 tbsp roasted peanuts",
				"1 tbsp toasted sesame seeds",
				"1 tomato, diced",
				"Shredded cabbage",
				"Peanut oil",
			},
			steps: []string{
				"Rinse the fermented tea leaves and squeeze them dry.",
				"Toss the leaves with peanut oil and a pinch of salt.",
				"Arrange cabbage, tomato and the crunchy toppings around the tea.",
				"Mix everything together at the table just before eating.",
			},
			minutes:  15,
			category: types.CategoryTaang,
		},
		{
			name: "Grilled Pork Skewers",
			ingredients: []string{
				"600g pork shoulder, cubed",
				"3 tbsp soy sauce",
				"2 tbsp honey",
				"4 cloves garlic, minced",
				"1 tsp ground white pepper",
				"Bamboo skewers",
			},
			steps: []string{
				"Marinate the pork in soy, honey, garlic and pepper for an hour.",
				"Thread the meat onto soaked bamboo skewers.",
				"Grill over hot charcoal, turning often, until charred at the edges.",
				"Rest briefly and serve with a sour dipping sauce.",
			},
			minutes:  25,
			category: types.CategoryGrilled,
		},
		{
			name: "Ohn No Khao Swe",
			ingredients: []string{
				"400g chicken thighs",
				"400ml coconut milk",
				"3 tbsp chickpea flour",
				"1 onion, sliced",
				"Egg noodles",
				"Boiled egg, fried noodles and lime to garnish",
			},
			steps: []string{
				"Brown the chicken with onion and a little turmeric.",
				"Whisk chickpea flour into stock and add to the pot.",
				"Pour in the coconut milk and simmer until silky.",
				"Serve over egg noodles with the garnishes.",
			},
			minutes:  50,
			category: types.CategorySoups,
		},
		{
			name: "Myanmar Milk Tea",
			ingredients: []string{
				"2 tbsp strong black tea leaves",
				"3 tbsp condensed milk",
				"1 tbsp evaporated milk",
				"Water",
			},
			steps: []string{
				"Boil the tea leaves hard until the brew is dark and bitter.",
				"Strain into a cup over the condensed milk.",
				"Top with evaporated milk and pull the tea between cups to froth.",
			},
			minutes:  10,
			category: types.CategoryDrinks,
		},
		{
			name: "Pad Kra Pao",
			ingredients: []string{
				"300g minced chicken",
				"1 cup holy basil leaves",
				"4 bird's eye chilies",
				"3 cloves garlic",
				"1 tbsp oyster sauce",
				"1 tbsp fish sauce",
				"Jasmine rice and a fried egg",
			},
			steps: []string{
				"Pound the chilies and garlic into a rough paste.",
				"Stir-fry the paste in hot oil, then add the chicken.",
				"Season with oyster and fish sauce, then fold in the basil.",
				"Serve over rice topped with a crispy fried egg.",
			},
			minutes:  20,
			category: types.CategoryThai,
		},
		{
			name: "Leftover Fried Rice",
			ingredients: []string{
				"3 cups day-old rice",
				"2 eggs",
				"Whatever vegetables are in the fridge",
				"2 tbsp soy sauce",
				"Spring onions",
			},
			steps: []string{
				"Scramble the eggs in a hot wok and set aside.",
				"Fry the vegetables, then add the rice and press it into the heat.",
				"Season with soy sauce, return the eggs and toss.",
				"Finish with sliced spring onions.",
			},
			minutes:  15,
			category: types.CategoryOther,
		},
	}

	out := make([]types.Recipe, len(seeds))
	for i, s := range seeds {
		out[i] = types.Recipe{
			ID:          uuid.NewString(),
			Name:        s.name,
			Ingredients: s.ingredients,
			Steps:       s.steps,
			CookingTime: s.minutes,
			Category:    s.category,
			// Stagger timestamps so "newest first" holds for the seeds too.
			CreatedAt: now - int64(i)*60_000,
		}
	}
	return out
}

// seedNotebook builds the starter notebook entries.
func seedNotebook() []types.NotebookEntry {
	now := time.Now().UnixMilli()
	return []types.NotebookEntry{
		{
			ID:        uuid.NewString(),
			Title:     "Grandma's fish sauce ratio",
			Source:    "Grandma",
			Content:   "One part fish sauce, one part lime, half part sugar. Never measure with spoons, measure with tasting.",
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Title:     "Tea shop noodle trick",
			Source:    types.DefaultNoteSource,
			Content:   "The noodle stall on 19th street blanches the noodles twice: once to cook, once just before serving so they never clump.",
			CreatedAt: now - 60_000,
		},
	}
}
