// Package recipe persists the recipe list as a single blob in a slot.
package recipe

import (
	"context"
	"fmt"
	"sync"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// SlotKey is the slot holding the encoded recipe list.
const SlotKey = "recipes"

// Compile-time interface check.
var _ domain.RecipeStore = (*Store)(nil)

// Option configures the store.
type Option func(*Store)

// WithCodec sets the encoding used for the slot (default JSON).
func WithCodec(c Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// Store saves and loads the whole recipe list through a slot.
type Store struct {
	slot  domain.Slot
	codec Codec
	log   *logger.Logger

	mu        sync.Mutex
	lastIssue error
}

// NewStore creates a store writing to the "recipes" key of slot.
func NewStore(slot domain.Slot, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		codec: JSONCodec{},
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Codec returns the codec used for the slot.
func (s *Store) Codec() Codec { return s.codec }

// Save encodes recipes and replaces the slot contents with the result.
// If encoding fails the slot is not touched.
func (s *Store) Save(ctx context.Context, recipes []domain.Recipe) error {
	data, err := s.codec.Encode(recipes)
	if err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}
	if err := s.slot.Put(ctx, SlotKey, data); err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}
	s.log.Debug("saved %d recipes (%d bytes, %s)", len(recipes), len(data), s.codec.Name())
	return nil
}

// Load returns the stored recipes. An empty slot is the first-run state
// and yields an empty list. Unreadable or undecodable data also yields
// an empty list; the cause is logged and kept in LastLoadIssue.
func (s *Store) Load(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.LoadStrict(ctx)
	s.setIssue(err)
	if err != nil {
		s.log.Warn("discarding stored recipes: %v", err)
		return []domain.Recipe{}, nil
	}
	return recipes, nil
}

// LoadStrict is Load without the fallback: read and decode failures are
// returned to the caller.
func (s *Store) LoadStrict(ctx context.Context) ([]domain.Recipe, error) {
	data, err := s.slot.Get(ctx, SlotKey)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	if len(data) == 0 {
		s.log.Debug("recipe slot is empty, starting fresh")
		return []domain.Recipe{}, nil
	}

	recipes, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	s.log.Debug("loaded %d recipes (%s)", len(recipes), s.codec.Name())
	return recipes, nil
}

// LastLoadIssue returns why the most recent Load fell back to an empty
// list, or nil if it did not.
func (s *Store) LastLoadIssue() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastIssue
}

func (s *Store) setIssue(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastIssue = err
}
