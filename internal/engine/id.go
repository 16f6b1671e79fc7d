package engine

import "github.com/google/uuid"

// generateID creates a time-ordered UUID string for recipes and ingredients.
func generateID() string {
	return uuid.Must(uuid.NewV7()).String()
}
