package cocktaildb

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeEnvelope(t *testing.T) {
	if _, err := decodeEnvelope(nil, drinksKey); !errors.Is(err, errEmptyBody) {
		t.Fatalf("decodeEnvelope(nil) error = %v, want errEmptyBody", err)
	}

	env, err := decodeEnvelope([]byte(`{"drinks": [{"idDrink": "1"}]}`), drinksKey)
	if err != nil {
		t.Fatalf("decodeEnvelope returned error: %v", err)
	}
	if env.empty(drinksKey) {
		t.Fatalf("drinks should not be empty")
	}
	if !env.empty(ingredientsKey) {
		t.Fatalf("ingredients should be empty")
	}

	if _, err := decodeEnvelope([]byte(`{"drinks": "no data found"}`), drinksKey); err == nil {
		t.Fatalf("decodeEnvelope returned nil error for a string key, want error")
	}

	var nilEnv *envelope
	if !nilEnv.empty(drinksKey) {
		t.Fatalf("nil envelope should be empty")
	}
}

func TestDecodeEnvelopeIgnoresOtherKey(t *testing.T) {
	body := []byte(`{"drinks": [{"idDrink": "1"}], "ingredients": "no data found"}`)
	env, err := decodeEnvelope(body, drinksKey)
	if err != nil {
		t.Fatalf("decodeEnvelope(drinks) returned error: %v", err)
	}
	if env.empty(drinksKey) {
		t.Fatalf("drinks should not be empty")
	}

	body = []byte(`{"drinks": "no data found", "ingredients": [{"idIngredient": "552"}]}`)
	env, err = decodeEnvelope(body, ingredientsKey)
	if err != nil {
		t.Fatalf("decodeEnvelope(ingredients) returned error: %v", err)
	}
	if env.empty(ingredientsKey) {
		t.Fatalf("ingredients should not be empty")
	}

	if _, err := decodeEnvelope(body, drinksKey); err == nil {
		t.Fatalf("decodeEnvelope(drinks) returned nil error for a string key, want error")
	}
}

func TestDrinkAccessors(t *testing.T) {
	var d Drink
	if err := json.Unmarshal([]byte(`{
  "idDrink": "11007", "strDrink": "Margarita", "strCategory": "Ordinary Drink",
  "strAlcoholic": "Alcoholic", "strGlass": "Cocktail glass",
  "strInstructions": "Rub the rim of the glass with the lime slice.",
  "strDrinkThumb": "https://example.com/margarita.jpg",
  "strIngredient1": "Tequila", "strMeasure1": "1 1/2 oz ",
  "strIngredient2": "Triple sec", "strMeasure2": null,
  "strIngredient3": "", "strMeasure3": "",
  "strIngredient4": " Salt ", "strMeasure4": "",
  "strIngredient5": null,
  "strVideo": null, "dateModified": 42
}`), &d); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	if d.ID() != "11007" || d.Name() != "Margarita" || d.Category() != "Ordinary Drink" {
		t.Fatalf("identity accessors = %q %q %q", d.ID(), d.Name(), d.Category())
	}
	if d.Alcoholic() != "Alcoholic" || d.Glass() != "Cocktail glass" {
		t.Fatalf("alcoholic/glass = %q %q", d.Alcoholic(), d.Glass())
	}
	if d.Instructions() == "" || d.Thumbnail() == "" {
		t.Fatalf("instructions/thumbnail should be set")
	}
	if d.Field("strVideo") != "" || d.Field("missing") != "" {
		t.Fatalf("null and missing fields should read as empty")
	}
	if d.Field("dateModified") != "42" {
		t.Fatalf("numeric field = %q, want 42", d.Field("dateModified"))
	}

	want := []Component{
		{Ingredient: "Tequila", Measure: "1 1/2 oz"},
		{Ingredient: "Triple sec"},
		{Ingredient: "Salt"},
	}
	if diff := cmp.Diff(want, d.Components()); diff != "" {
		t.Fatalf("Components mismatch (-want +got):\n%s", diff)
	}

	var empty Drink
	if empty.Name() != "" || empty.Components() != nil {
		t.Fatalf("nil drink accessors should be empty")
	}
}

func TestIngredientAccessors(t *testing.T) {
	i := Ingredient{
		"idIngredient":   "552",
		"strIngredient":  "Elderflower cordial",
		"strDescription": "A soft drink.",
		"strType":        "Cordial",
		"strAlcohol":     "No",
		"strABV":         nil,
	}
	if i.ID() != "552" || i.Name() != "Elderflower cordial" || i.Type() != "Cordial" {
		t.Fatalf("accessors = %q %q %q", i.ID(), i.Name(), i.Type())
	}
	if i.Description() != "A soft drink." || i.ABV() != "" {
		t.Fatalf("description/abv = %q %q", i.Description(), i.ABV())
	}
	if i.IsAlcoholic() {
		t.Fatalf("IsAlcoholic = true, want false")
	}
	i["strAlcohol"] = " yes"
	if !i.IsAlcoholic() {
		t.Fatalf("IsAlcoholic = false, want true")
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"Old Fashioned": "Old%20Fashioned",
		"Gin & Tonic":   "Gin%20%26%20Tonic",
		"plain":         "plain",
		"":              "",
	}
	for in, want := range cases {
		if got := escape(in); got != want {
			t.Fatalf("escape(%q) = %q, want %q", in, got, want)
		}
	}
}
