package cocktaildb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// maxComponents is the number of strIngredientN/strMeasureN pairs a drink carries.
const maxComponents = 15

// collection names the top-level key an endpoint family answers with.
type collection int

const (
	drinksKey collection = iota
	ingredientsKey
)

func (k collection) String() string {
	if k == ingredientsKey {
		return "ingredients"
	}
	return "drinks"
}

// envelope mirrors every response body the API returns.
type envelope struct {
	Drinks      []Drink      `json:"drinks"`
	Ingredients []Ingredient `json:"ingredients"`
}

func (e *envelope) empty(key collection) bool {
	if e == nil {
		return true
	}
	if key == ingredientsKey {
		return len(e.Ingredients) == 0
	}
	return len(e.Drinks) == 0
}

// rawEnvelope holds both collection keys undecoded so that only the one an
// endpoint answers with is ever inspected.
type rawEnvelope struct {
	Drinks      json.RawMessage `json:"drinks"`
	Ingredients json.RawMessage `json:"ingredients"`
}

// decodeEnvelope decodes the collection named by key and ignores the other.
// It rejects empty bodies, malformed JSON and a key holding something other
// than an array (the API answers "no data found" strings for some unmatched
// filters).
func decodeEnvelope(body []byte, key collection) (*envelope, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	var env envelope
	var err error
	switch key {
	case ingredientsKey:
		err = decodeKey(raw.Ingredients, &env.Ingredients)
	default:
		err = decodeKey(raw.Drinks, &env.Drinks)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &env, nil
}

func decodeKey(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Drink is a drink record exactly as the API returned it.
type Drink map[string]any

// Field returns the named field as a string, or "" when it is missing or null.
func (d Drink) Field(name string) string {
	return field(d, name)
}

// ID returns idDrink.
func (d Drink) ID() string { return d.Field("idDrink") }

// Name returns strDrink.
func (d Drink) Name() string { return d.Field("strDrink") }

// Category returns strCategory.
func (d Drink) Category() string { return d.Field("strCategory") }

// Alcoholic returns strAlcoholic ("Alcoholic", "Non alcoholic", ...).
func (d Drink) Alcoholic() string { return d.Field("strAlcoholic") }

// Glass returns strGlass.
func (d Drink) Glass() string { return d.Field("strGlass") }

// Instructions returns strInstructions.
func (d Drink) Instructions() string { return d.Field("strInstructions") }

// Thumbnail returns strDrinkThumb.
func (d Drink) Thumbnail() string { return d.Field("strDrinkThumb") }

// Component is one ingredient line of a drink.
type Component struct {
	Ingredient string
	Measure    string
}

// Components collects the non-empty strIngredientN entries in order,
// paired with their strMeasureN.
func (d Drink) Components() []Component {
	var out []Component
	for i := 1; i <= maxComponents; i++ {
		n := strconv.Itoa(i)
		ingredient := strings.TrimSpace(d.Field("strIngredient" + n))
		if ingredient == "" {
			continue
		}
		out = append(out, Component{
			Ingredient: ingredient,
			Measure:    strings.TrimSpace(d.Field("strMeasure" + n)),
		})
	}
	return out
}

// Ingredient is an ingredient record exactly as the API returned it.
type Ingredient map[string]any

// Field returns the named field as a string, or "" when it is missing or null.
func (i Ingredient) Field(name string) string {
	return field(i, name)
}

// ID returns idIngredient.
func (i Ingredient) ID() string { return i.Field("idIngredient") }

// Name returns strIngredient.
func (i Ingredient) Name() string { return i.Field("strIngredient") }

// Description returns strDescription.
func (i Ingredient) Description() string { return i.Field("strDescription") }

// Type returns strType.
func (i Ingredient) Type() string { return i.Field("strType") }

// ABV returns strABV.
func (i Ingredient) ABV() string { return i.Field("strABV") }

// IsAlcoholic reports whether strAlcohol is "Yes".
func (i Ingredient) IsAlcoholic() bool {
	return strings.EqualFold(strings.TrimSpace(i.Field("strAlcohol")), "yes")
}

func field(record map[string]any, name string) string {
	switch v := record[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
