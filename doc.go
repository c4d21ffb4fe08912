// Package cocktaildb is a small client for TheCocktailDB JSON API.
//
// # Overview
//
// The package exposes fourteen read-only operations. Each one builds a
// query path, performs a single GET against
// https://www.thecocktaildb.com/api/json/v1/1/, decodes the JSON envelope
// and returns one field of it:
//
//   - Search, SearchByLetter: drinks by name or first letter
//   - SearchIngredient: first ingredient matching a name
//   - LookupDrink, LookupIngredient: records by numeric id
//   - Random: one random drink
//   - FilterByIngredient, FilterByAlcoholic, FilterByCategory, FilterByGlass
//   - Categories, Glasses, Ingredients, AlcoholicFilters: filter values
//
// Every operation is available as a method on *Client and as a
// package-level function using a shared default client.
//
// # Client Usage
//
//	client, err := cocktaildb.NewClient(cocktaildb.WithTimeout(5 * time.Second))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	drinks := client.Search(ctx, "Old Fashioned")
//	if drinks == nil {
//		log.Printf("nothing found")
//	}
//
//	glasses := cocktaildb.Glasses(ctx)
//
// # Absence Policy
//
// Operations never return an error. Every failure collapses to nil:
//
//   - Network errors: DNS failure, refused connection, TLS failure, timeout
//   - HTTP errors: 4xx/5xx status codes
//   - Empty or malformed bodies
//   - Envelope key ("drinks" or "ingredients") missing, null, empty, or not an array
//
// Callers therefore cannot tell "no match" from "request failed". The cause
// of each collapsed failure is sent once, at debug level, to the Logger set
// with WithLogger (apex/log's log.Log satisfies it):
//
//	cocktaildb: search search.php?s=Old%20Fashioned: execute request: dial tcp: connection refused
//
// # Records
//
// Drink and Ingredient are the upstream JSON objects, passed through
// untouched as maps. Accessors such as Drink.Name, Drink.Components and
// Ingredient.ABV read fields without modifying the record.
//
// # Request Handling
//
// Free-text arguments are percent-encoded ("Old Fashioned" becomes
// Old%20Fashioned). Numeric ids are written in base 10 verbatim. Bodies are
// read fully into memory. There is no retry and no caching.
//
// # Thread Safety
//
// A Client holds no mutable state after construction and is safe for
// concurrent use; concurrent calls are independent.
package cocktaildb
