package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ParseError reports user-entered text that could not be turned into a
// field value. It matches ErrParse under errors.Is.
type ParseError struct {
	Field string // "amount", "price" or "name"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ParseIngredient builds an ingredient from user-entered text. amountText
// must be a base-10 integer >= 0 and priceText a decimal number >= 0.
// name and unit are kept verbatim, whitespace included. The result has
// no ID; bind one with NewIngredient.
func ParseIngredient(name, amountText, unit, priceText string) (Ingredient, error) {
	amount, err := parseAmount(amountText)
	if err != nil {
		return Ingredient{}, err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return Ingredient{}, err
	}
	return Ingredient{
		Name:   name,
		Amount: amount,
		Unit:   unit,
		Price:  price,
	}, nil
}

// ParseRecipeName accepts any non-empty name. No trimming is applied, so
// a name made only of spaces is valid.
func ParseRecipeName(name string) (string, error) {
	if name == "" {
		return "", &ParseError{Field: "name", Input: name, Err: errEmpty}
	}
	return name, nil
}

var (
	errEmpty      = errors.New("empty")
	errNegative   = errors.New("negative")
	errOutOfRange = errors.New("out of range")
)

func parseAmount(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Field: "amount", Input: text, Err: err}
	}
	if n < 0 {
		return 0, &ParseError{Field: "amount", Input: text, Err: errNegative}
	}
	return n, nil
}

func parsePrice(text string) (float64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, &ParseError{Field: "price", Input: text, Err: err}
	}
	if d.IsNegative() {
		return 0, &ParseError{Field: "price", Input: text, Err: errNegative}
	}
	price := d.InexactFloat64()
	if !finite(price) {
		return 0, &ParseError{Field: "price", Input: text, Err: errOutOfRange}
	}
	return price, nil
}

// Validate checks an ingredient built outside ParseIngredient, such as
// one read back from storage: the amount must be >= 0 and the price a
// finite number >= 0.
func (i Ingredient) Validate() error {
	if i.Amount < 0 {
		return &ParseError{Field: "amount", Input: strconv.Itoa(i.Amount), Err: errNegative}
	}
	priceText := strconv.FormatFloat(i.Price, 'g', -1, 64)
	if !finite(i.Price) {
		return &ParseError{Field: "price", Input: priceText, Err: errOutOfRange}
	}
	if i.Price < 0 {
		return &ParseError{Field: "price", Input: priceText, Err: errNegative}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
