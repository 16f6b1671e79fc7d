package domain

import "context"

// Slot is a persisted key/value slot holding an opaque byte blob.
// Implementations can be in-memory, file-based, SQLite, or anything the
// host platform provides. Get on a key that was never written returns
// a nil slice and no error.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// RecipeStore persists the full ordered list of recipes as one blob.
// Save fully replaces whatever was stored before. Load never fails on
// missing or unreadable data; it returns an empty list instead.
type RecipeStore interface {
	Save(ctx context.Context, recipes []Recipe) error
	Load(ctx context.Context) ([]Recipe, error)
}
