// Package capability defines the persistence operations a storage backend can
// perform and one narrow interface per (operation, model) pair.
//
// Consumers declare the bundle of capabilities they need by embedding these
// interfaces; any backend implementing every member satisfies the bundle
// without registration.
package capability

import (
	"errors"

	"asq/internal/model"
)

var (
	// ErrNotFound is returned when a Search, Update or Delete target does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a Save violates a uniqueness constraint or an
	// Update targets a record that changed since it was read.
	ErrConflict = errors.New("record conflict")
)

// Save persists a brand-new record.
type Save[T any] struct {
	Record T
}

// Update persists changes to an existing record, identified by its own key fields.
type Update[T any] struct {
	Record T
}

// Delete removes an existing record.
type Delete[T any] struct {
	Record T
}

// Search looks up the single record matching the key fields of Key. Other
// fields of Key are ignored.
type Search[T any] struct {
	Key T
}

// FindAll returns every record matching Query, in a stable order.
type FindAll[Q any] struct {
	Query Q
}

// CreateTable initializes storage for T. It succeeds if the storage already exists.
type CreateTable[T any] struct{}

// QuestionsForPresentation selects the questions asked during a presentation,
// oldest first.
type QuestionsForPresentation struct {
	PresentationID model.ID
}

// PresentationsForPresenter selects the presentations a presenter created,
// oldest first.
type PresentationsForPresenter struct {
	PresenterID model.ID
}
