package recipe

import "errors"

// Sentinel errors returned by recipes and the [Store].
var (
	// ErrInvalidRecipe is returned when a recipe fails validation or cannot
	// be decoded.
	ErrInvalidRecipe = errors.New("recipe: invalid recipe")

	// ErrNotFound is returned by [Store.Get] and [Store.Delete] for an
	// unknown recipe name.
	ErrNotFound = errors.New("recipe: not found")
)
