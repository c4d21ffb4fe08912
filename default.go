package cocktaildb

import (
	"context"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the shared client used by the package-level functions.
func Default() *Client {
	defaultOnce.Do(func() { defaultClient = newClient() })
	return defaultClient
}

// Search calls Default().Search.
func Search(ctx context.Context, name string) []Drink { return Default().Search(ctx, name) }

// SearchByLetter calls Default().SearchByLetter.
func SearchByLetter(ctx context.Context, letter string) []Drink {
	return Default().SearchByLetter(ctx, letter)
}

// SearchIngredient calls Default().SearchIngredient.
func SearchIngredient(ctx context.Context, name string) Ingredient {
	return Default().SearchIngredient(ctx, name)
}

// LookupDrink calls Default().LookupDrink.
func LookupDrink(ctx context.Context, id int) Drink { return Default().LookupDrink(ctx, id) }

// LookupIngredient calls Default().LookupIngredient.
func LookupIngredient(ctx context.Context, id int) Ingredient {
	return Default().LookupIngredient(ctx, id)
}

// Random calls Default().Random.
func Random(ctx context.Context) Drink { return Default().Random(ctx) }

// FilterByIngredient calls Default().FilterByIngredient.
func FilterByIngredient(ctx context.Context, name string) []Drink {
	return Default().FilterByIngredient(ctx, name)
}

// FilterByAlcoholic calls Default().FilterByAlcoholic.
func FilterByAlcoholic(ctx context.Context, value string) []Drink {
	return Default().FilterByAlcoholic(ctx, value)
}

// FilterByCategory calls Default().FilterByCategory.
func FilterByCategory(ctx context.Context, name string) []Drink {
	return Default().FilterByCategory(ctx, name)
}

// FilterByGlass calls Default().FilterByGlass.
func FilterByGlass(ctx context.Context, name string) []Drink {
	return Default().FilterByGlass(ctx, name)
}

// Categories calls Default().Categories.
func Categories(ctx context.Context) []string { return Default().Categories(ctx) }

// Glasses calls Default().Glasses.
func Glasses(ctx context.Context) []string { return Default().Glasses(ctx) }

// Ingredients calls Default().Ingredients.
func Ingredients(ctx context.Context) []string { return Default().Ingredients(ctx) }

// AlcoholicFilters calls Default().AlcoholicFilters.
func AlcoholicFilters(ctx context.Context) []string { return Default().AlcoholicFilters(ctx) }
