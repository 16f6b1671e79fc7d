// Package engine holds the in-memory recipe book and the add-recipe flow.
//
// The Book is the single owner of the working set. It loads the stored
// recipes once when opened and saves the whole list after every change,
// so the working set and the persisted slot never drift apart.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// Option configures the book.
type Option func(*Book)

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(b *Book) {
		b.newID = fn
	}
}

// Book is the ordered working set of recipes. It depends only on a
// domain.RecipeStore and is fully testable with an in-memory slot.
type Book struct {
	store domain.RecipeStore
	log   *logger.Logger
	newID func() string

	// mu guards recipes for readers on other goroutines (the status
	// bar). Mutations happen on the caller's goroutine only.
	mu      sync.RWMutex
	recipes []domain.Recipe
	opened  bool
}

// New creates a book backed by store. Call Open before use.
func New(store domain.RecipeStore, log *logger.Logger, opts ...Option) *Book {
	b := &Book{
		store: store,
		log:   log,
		newID: generateID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open loads the stored recipes into the working set. Only the first
// call reads the store; later calls are no-ops.
func (b *Book) Open(ctx context.Context) error {
	if b.opened {
		return nil
	}
	recipes, err := b.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("opening recipe book: %w", err)
	}

	b.mu.Lock()
	b.recipes = recipes
	b.opened = true
	b.mu.Unlock()

	b.log.Info("recipe book opened with %d recipes", len(recipes))
	return nil
}

// Recipes returns a copy of the working set in insertion order.
func (b *Book) Recipes() []domain.Recipe {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.recipes)
}

// Get returns the recipe with the given ID.
func (b *Book) Get(id string) (domain.Recipe, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, r := range b.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	b.log.Debug("recipe not found: %s", id)
	return domain.Recipe{}, domain.ErrNotFound
}

// At returns the recipe at a 1-based position, as shown in listings.
func (b *Book) At(n int) (domain.Recipe, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n < 1 || n > len(b.recipes) {
		return domain.Recipe{}, fmt.Errorf("recipe #%d: %w", n, domain.ErrNotFound)
	}
	return b.recipes[n-1], nil
}

// GrandTotal returns the sum of every recipe's total price.
func (b *Book) GrandTotal() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var all []domain.Ingredient
	for _, r := range b.recipes {
		all = append(all, r.Ingredients...)
	}
	return domain.ComputeTotal(all)
}

// NewDraft starts the add-recipe flow.
func (b *Book) NewDraft() *Draft {
	return &Draft{newID: b.newID}
}

// Add validates the draft's name, appends a new recipe built from it and
// saves the book. On a parse failure nothing changes. If saving fails the
// recipe is removed again and the error is returned.
func (b *Book) Add(ctx context.Context, d *Draft) (domain.Recipe, error) {
	name, err := domain.ParseRecipeName(d.Name)
	if err != nil {
		return domain.Recipe{}, err
	}
	recipe := domain.NewRecipe(b.newID(), name, d.ingredients)

	b.mu.Lock()
	b.recipes = append(b.recipes, recipe)
	snapshot := make([]domain.Recipe, len(b.recipes))
	copy(snapshot, b.recipes)
	b.mu.Unlock()

	if err := b.store.Save(ctx, snapshot); err != nil {
		b.mu.Lock()
		b.recipes = b.recipes[:len(b.recipes)-1]
		b.mu.Unlock()
		b.log.Error("saving recipe %q failed, rolled back: %v", name, err)
		return domain.Recipe{}, err
	}

	b.log.Info("added recipe %q (%d ingredients)", recipe.Name, len(recipe.Ingredients))
	d.Reset()
	return recipe, nil
}
