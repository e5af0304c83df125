// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"pulse/internal/models"
	"pulse/internal/store"
)

// translateNotFound converts a store-level miss into a resource-specific
// application error; other errors pass through unchanged.
func translateNotFound(err error, resource string, id interface{}) error {
	if errors.Is(err, store.ErrNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
