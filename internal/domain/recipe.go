// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing internal.
package domain

// Recipe is a named, ordered list of priced ingredients.
//
// A recipe owns its ingredients: they are never shared with another
// recipe and have no lifecycle of their own. The total price is derived
// from the ingredients on every read and is never stored.
type Recipe struct {
	ID          string
	Name        string
	Ingredients []Ingredient
}

// Ingredient is one priced line of a recipe.
type Ingredient struct {
	ID     string
	Name   string
	Amount int
	Unit   string // opaque label: "gr", "ml", "tbsp", ...
	Price  float64
}

// DefaultUnits are the unit labels offered when adding an ingredient.
// Any other label is accepted verbatim.
var DefaultUnits = []string{"gr", "ml", "tbsp", "tsp", "kg", "L", "oz"}

// NewRecipe binds id to a recipe. The ingredient slice is copied so the
// caller cannot mutate the recipe afterwards.
func NewRecipe(id, name string, ingredients []Ingredient) Recipe {
	owned := make([]Ingredient, len(ingredients))
	copy(owned, ingredients)
	return Recipe{
		ID:          id,
		Name:        name,
		Ingredients: owned,
	}
}

// NewIngredient binds id to a parsed ingredient.
func NewIngredient(parsed Ingredient, id string) Ingredient {
	parsed.ID = id
	return parsed
}

// TotalPrice returns the sum of the ingredient prices.
func (r Recipe) TotalPrice() float64 {
	return ComputeTotal(r.Ingredients)
}

// SameAs reports whether r and other are the same recipe. Identity is
// the ID alone; name and ingredients are not compared.
func (r Recipe) SameAs(other Recipe) bool {
	return r.ID == other.ID
}

// SameAs reports whether i and other are the same ingredient.
func (i Ingredient) SameAs(other Ingredient) bool {
	return i.ID == other.ID
}
