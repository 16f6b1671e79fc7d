package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "IDR"

// FormatPrice renders amount in the currency's notation at its minor-unit
// precision (two decimals for IDR and USD), rounding half away from zero.
// Amounts too large for go-money's int64 minor units are laid out with
// the same currency rules from the decimal digits.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	// money.New never returns a nil currency, unlike money.GetCurrency.
	cur := money.New(0, currency).Currency()
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return money.New(minor.IntPart(), currency).Display()
	}
	return formatMinor(minor, cur)
}

// formatMinor lays out a minor-unit amount the way go-money's Formatter
// does, without the int64 limit.
func formatMinor(minor decimal.Decimal, cur *money.Currency) string {
	digits := minor.Abs().BigInt().String()
	if len(digits) <= cur.Fraction {
		digits = strings.Repeat("0", cur.Fraction-len(digits)+1) + digits
	}
	if cur.Thousand != "" {
		for i := len(digits) - cur.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + cur.Thousand + digits[i:]
		}
	}
	if cur.Fraction > 0 {
		digits = digits[:len(digits)-cur.Fraction] + cur.Decimal + digits[len(digits)-cur.Fraction:]
	}
	out := strings.Replace(cur.Template, "1", digits, 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}

// ListLines renders the recipe list: one numbered row per recipe with
// its total.
func ListLines(recipes []domain.Recipe, currency string) []string {
	if len(recipes) == 0 {
		return []string{"Recipes", "No recipes yet. Type 'add' to create one."}
	}
	lines := []string{"Recipes"}
	for i, r := range recipes {
		lines = append(lines, fmt.Sprintf("[%d] %s  %s", i+1, r.Name, FormatPrice(r.TotalPrice(), currency)))
	}
	return lines
}

// DetailLines renders one recipe with its ingredients and total.
func DetailLines(r domain.Recipe, currency string) []string {
	lines := []string{r.Name}
	if len(r.Ingredients) == 0 {
		lines = append(lines, "(no ingredients)")
	}
	for _, ing := range r.Ingredients {
		lines = append(lines, ingredientLine(ing, currency))
	}
	return append(lines, "Total: "+FormatPrice(r.TotalPrice(), currency))
}

// DraftLines renders the recipe being added.
func DraftLines(name string, ingredients []domain.Ingredient, currency string) []string {
	if name == "" {
		name = "(unnamed)"
	}
	lines := []string{"New recipe: " + name}
	for i, ing := range ingredients {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ingredientLine(ing, currency)))
	}
	return append(lines, "Total: "+FormatPrice(domain.ComputeTotal(ingredients), currency))
}

func ingredientLine(ing domain.Ingredient, currency string) string {
	return fmt.Sprintf("%s - %d %s - %s", ing.Name, ing.Amount, ing.Unit, FormatPrice(ing.Price, currency))
}
