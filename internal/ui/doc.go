// Package ui provides the Bubble Tea drink browser behind the browse command.
//
// # Layout
//
//	┌ header: title, featured drink or "API unreachable" ────────┐
//	│ search bar: [mode] query                                   │
//	├ results ─────────┬ recipe ────────────────────────────────┤
//	│ Margarita        │ Margarita                               │
//	│ Blue Margarita   │ Ordinary Drink / Cocktail glass         │
//	│ ...              │ Ingredients ...                         │
//	├──────────────────┴────────────────────────────────────────┤
//	│ footer: status and short help                              │
//	└────────────────────────────────────────────────────────────┘
//
// # Searching
//
// The search bar queries one of three endpoints, cycled with m: drink name,
// first letter, or ingredient. Ingredient results only carry id, name and
// thumbnail, so opening one fetches the full recipe by id.
//
// Every request runs as a tea.Cmd and is tagged with a sequence number.
// Replies to a request that has since been superseded are dropped, so a slow
// search can never overwrite a newer one.
//
// An empty reply means either "nothing matched" or "the API could not be
// reached"; the client does not distinguish the two and neither does the
// status line.
//
// # Featured Drink
//
// The header reads the state.Store that the app poller fills with a random
// drink. The store is polled on every tick; f shows the featured recipe.
//
// # Session Log
//
// L shows the tail of the session log file. With log_level = "debug" it
// lists the cause behind each empty reply. The overlay refreshes on every
// tick while open.
//
// # Preferences
//
// Cycling the theme (T) or submitting a search saves the theme name and
// last query to the prefs file. The last query is searched again on start.
package ui
