package engine

import (
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
)

// Draft is a recipe being put together before it is added to the book.
type Draft struct {
	Name string

	ingredients []domain.Ingredient
	newID       func() string
}

// AddIngredient parses the entered fields and appends the ingredient.
// If amount or price do not parse, the draft is left unchanged and the
// parse error is returned.
func (d *Draft) AddIngredient(name, amountText, unit, priceText string) (domain.Ingredient, error) {
	parsed, err := domain.ParseIngredient(name, amountText, unit, priceText)
	if err != nil {
		return domain.Ingredient{}, err
	}
	ing := domain.NewIngredient(parsed, d.newID())
	d.ingredients = append(d.ingredients, ing)
	return ing, nil
}

// Ingredients returns a copy of the ingredients added so far.
func (d *Draft) Ingredients() []domain.Ingredient {
	out := make([]domain.Ingredient, len(d.ingredients))
	copy(out, d.ingredients)
	return out
}

// Total returns the running price of the draft.
func (d *Draft) Total() float64 {
	return domain.ComputeTotal(d.ingredients)
}

// Reset clears the draft for the next recipe.
func (d *Draft) Reset() {
	d.Name = ""
	d.ingredients = nil
}
