package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// lines.go keeps every conversational string the REPL prints in one place.

func lineWelcome() string {
	return "Welcome back. Here is what is in the book."
}

func lineBye() string {
	return "Bye."
}

func lineUnknown(input string) string {
	options := []string{
		"Didn't catch %q. Type 'help' for commands.",
		"Not sure what %q means. Try 'help'.",
	}
	return fmt.Sprintf(options[rand.IntN(len(options))], input)
}

func lineLoadIssue(err error) string {
	return fmt.Sprintf("Saved recipes could not be read (%v). Starting with an empty book; nothing is overwritten until you add a recipe.", err)
}

func lineInvalidSelection(payload string, count int) string {
	if count == 0 {
		return "There are no recipes yet. Type 'add' to create one."
	}
	return fmt.Sprintf("Invalid selection: %s. Pick a number from 1 to %d.", payload, count)
}

func lineDraftStarted() string {
	return "New recipe. Type 'name <recipe name>', then 'ing <name> <amount> <unit> <price>' per ingredient, and 'save' when done."
}

func lineDraftNamed(name string) string {
	return fmt.Sprintf("Recipe name set to %q.", name)
}

func lineIngredientAdded(name string, total string) string {
	return fmt.Sprintf("Added %s. Running total: %s.", name, total)
}

func lineIngredientRejected(err error) string {
	return fmt.Sprintf("Ingredient not added: %v. Amount must be a whole number and price a number.", err)
}

func lineNeedName() string {
	return "Give the recipe a name first: 'name <recipe name>'."
}

func lineSaved(name string, total string) string {
	return fmt.Sprintf("Saved %s (%s).", name, total)
}

func lineSaveFailed(err error) string {
	return fmt.Sprintf("Could not save the recipe: %v. The draft is kept, try 'save' again.", err)
}

func lineDraftCancelled() string {
	return "Draft discarded."
}

func lineDraftHint() string {
	return "You're adding a recipe: 'name ...', 'ing ...', 'save' or 'cancel'."
}

func lineUnits(units []string) string {
	return "Units: " + strings.Join(units, ", ")
}
