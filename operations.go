package cocktaildb

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// operation is one row of the endpoint table: how to build the request
// path, which envelope key must be populated, and what to hand back.
type operation[T any] struct {
	name    string
	path    func(arg string) string
	key     collection
	project func(*envelope) T
}

// run is the only place failures are turned into the absence value. The
// cause goes to the client's logger at debug level and the zero T (a nil
// slice or map) is returned.
func (op operation[T]) run(ctx context.Context, c *Client, arg string) T {
	var none T
	if c == nil {
		return none
	}
	path := op.path(arg)
	env, err := c.envelope(ctx, path, op.key)
	if err != nil {
		c.logger.Debugf("cocktaildb: %s %s: %v", op.name, path, err)
		return none
	}
	return op.project(env)
}

var (
	opSearch             = operation[[]Drink]{"search", textParam("search.php", "s"), drinksKey, allDrinks}
	opSearchByLetter     = operation[[]Drink]{"search by letter", textParam("search.php", "f"), drinksKey, allDrinks}
	opSearchIngredient   = operation[Ingredient]{"search ingredient", textParam("search.php", "i"), ingredientsKey, firstIngredient}
	opLookupDrink        = operation[Drink]{"lookup drink", rawParam("lookup.php", "i"), drinksKey, firstDrink}
	opLookupIngredient   = operation[Ingredient]{"lookup ingredient", rawParam("lookup.php", "iid"), ingredientsKey, firstIngredient}
	opRandom             = operation[Drink]{"random", fixed("random.php"), drinksKey, firstDrink}
	opFilterByIngredient = operation[[]Drink]{"filter by ingredient", textParam("filter.php", "i"), drinksKey, allDrinks}
	opFilterByAlcoholic  = operation[[]Drink]{"filter by alcoholic", textParam("filter.php", "a"), drinksKey, allDrinks}
	opFilterByCategory   = operation[[]Drink]{"filter by category", textParam("filter.php", "c"), drinksKey, allDrinks}
	opFilterByGlass      = operation[[]Drink]{"filter by glass", textParam("filter.php", "g"), drinksKey, allDrinks}
	opCategories         = operation[[]string]{"list categories", fixed("list.php?c=list"), drinksKey, drinkField("strCategory")}
	opGlasses            = operation[[]string]{"list glasses", fixed("list.php?g=list"), drinksKey, drinkField("strGlass")}
	opIngredients        = operation[[]string]{"list ingredients", fixed("list.php?i=list"), drinksKey, drinkField("strIngredient1")}
	opAlcoholicFilters   = operation[[]string]{"list alcoholic filters", fixed("list.php?a=list"), drinksKey, drinkField("strAlcoholic")}
)

// Search returns every drink whose name matches name.
func (c *Client) Search(ctx context.Context, name string) []Drink {
	return opSearch.run(ctx, c, name)
}

// SearchByLetter returns every drink whose name starts with letter.
func (c *Client) SearchByLetter(ctx context.Context, letter string) []Drink {
	return opSearchByLetter.run(ctx, c, letter)
}

// SearchIngredient returns the first ingredient matching name.
func (c *Client) SearchIngredient(ctx context.Context, name string) Ingredient {
	return opSearchIngredient.run(ctx, c, name)
}

// LookupDrink returns the full record of the drink with the given id.
func (c *Client) LookupDrink(ctx context.Context, id int) Drink {
	return opLookupDrink.run(ctx, c, strconv.Itoa(id))
}

// LookupIngredient returns the ingredient with the given id.
func (c *Client) LookupIngredient(ctx context.Context, id int) Ingredient {
	return opLookupIngredient.run(ctx, c, strconv.Itoa(id))
}

// Random returns one random drink.
func (c *Client) Random(ctx context.Context) Drink {
	return opRandom.run(ctx, c, "")
}

// FilterByIngredient returns the drinks that use the ingredient.
func (c *Client) FilterByIngredient(ctx context.Context, name string) []Drink {
	return opFilterByIngredient.run(ctx, c, name)
}

// FilterByAlcoholic returns the drinks matching an alcoholic filter value
// such as "Alcoholic" or "Non_Alcoholic".
func (c *Client) FilterByAlcoholic(ctx context.Context, value string) []Drink {
	return opFilterByAlcoholic.run(ctx, c, value)
}

// FilterByCategory returns the drinks in a category.
func (c *Client) FilterByCategory(ctx context.Context, name string) []Drink {
	return opFilterByCategory.run(ctx, c, name)
}

// FilterByGlass returns the drinks served in a glass.
func (c *Client) FilterByGlass(ctx context.Context, name string) []Drink {
	return opFilterByGlass.run(ctx, c, name)
}

// Categories lists the category filter values.
func (c *Client) Categories(ctx context.Context) []string {
	return opCategories.run(ctx, c, "")
}

// Glasses lists the glass filter values.
func (c *Client) Glasses(ctx context.Context) []string {
	return opGlasses.run(ctx, c, "")
}

// Ingredients lists the ingredient filter values.
func (c *Client) Ingredients(ctx context.Context) []string {
	return opIngredients.run(ctx, c, "")
}

// AlcoholicFilters lists the alcoholic filter values.
func (c *Client) AlcoholicFilters(ctx context.Context) []string {
	return opAlcoholicFilters.run(ctx, c, "")
}

// Path builders.

func fixed(path string) func(string) string {
	return func(string) string { return path }
}

func textParam(path, param string) func(string) string {
	return func(arg string) string { return path + "?" + param + "=" + escape(arg) }
}

func rawParam(path, param string) func(string) string {
	return func(arg string) string { return path + "?" + param + "=" + arg }
}

// escape percent-encodes a free-text query value. Spaces become %20 rather
// than '+', matching what the API's own links use.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Projectors. Each is only called on an envelope whose key is non-empty.

func allDrinks(env *envelope) []Drink { return env.Drinks }

func firstDrink(env *envelope) Drink { return env.Drinks[0] }

func firstIngredient(env *envelope) Ingredient { return env.Ingredients[0] }

func drinkField(name string) func(*envelope) []string {
	return func(env *envelope) []string {
		out := make([]string, 0, len(env.Drinks))
		for _, d := range env.Drinks {
			out = append(out, d.Field(name))
		}
		return out
	}
}
