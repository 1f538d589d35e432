// Package registry implements the business rules of the student
// registry on top of the storage.Storage interface.
//
// This is the only layer that knows the domain rules: an add must not
// overwrite an existing identifier, update and delete require the
// record to exist. The store beneath it enforces nothing; the menu
// above it decides nothing.
//
// OUTCOMES, NOT ERRORS:
// "already exists" and "not found" are expected, first-class results
// of normal operation. They are returned as Outcome values, never as
// Go errors. The error return of each method is reserved for backend
// faults (only possible with the SQLite store) and means the operation
// could not be carried out at all.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/aanand-mishra/student-registry/internal/utils/render"
	"github.com/samber/mo"
)

// Outcome is the value-level result of a registry operation. Its
// underlying string is the human-readable message itself, so the
// contract and the printed text cannot drift apart.
type Outcome string

const (
	OutcomeAdded         Outcome = "added"
	OutcomeAlreadyExists Outcome = "already exists"
	OutcomeRemoved       Outcome = "removed"
	OutcomeNotFound      Outcome = "not found"
	OutcomeUpdated       Outcome = "updated"
)

// String returns the outcome's display message.
func (o Outcome) String() string { return string(o) }

// Registry owns exactly one record store and enforces the domain rules
// over it. Construct one per store with New — there is no package-level
// instance, so independent registries (one per test, say) cannot
// contaminate each other.
type Registry struct {
	store storage.Storage
	log   *slog.Logger
}

// New returns a Registry operating on the given store.
func New(store storage.Storage, log *slog.Logger) *Registry {
	return &Registry{store: store, log: log}
}

// Add creates a new record with the given fields.
// If a record with student.ID already exists the store is left
// untouched and the outcome is OutcomeAlreadyExists.
func (r *Registry) Add(student types.Student) (Outcome, error) {
	_, exists, err := r.store.Get(student.ID)
	if err != nil {
		return "", fmt.Errorf("Add: lookup: %w", err)
	}
	if exists {
		return OutcomeAlreadyExists, nil
	}

	if err := r.store.Put(student); err != nil {
		return "", fmt.Errorf("Add: put: %w", err)
	}

	r.log.Info("student added", slog.Int64("id", student.ID))
	return OutcomeAdded, nil
}

// Delete removes the record with the given id.
// Deleting an absent id is a normal outcome (OutcomeNotFound), not an
// error.
func (r *Registry) Delete(id int64) (Outcome, error) {
	_, removed, err := r.store.Remove(id)
	if err != nil {
		return "", fmt.Errorf("Delete: remove: %w", err)
	}
	if !removed {
		return OutcomeNotFound, nil
	}

	r.log.Info("student deleted", slog.Int64("id", id))
	return OutcomeRemoved, nil
}

// Update applies the supplied patch fields to the record with the
// given id, leaving unsupplied fields unchanged. The presence test is
// the patch's Option wrappers — a supplied zero age or empty name is
// applied like any other value.
func (r *Registry) Update(id int64, patch types.StudentPatch) (Outcome, error) {
	student, ok, err := r.store.Get(id)
	if err != nil {
		return "", fmt.Errorf("Update: lookup: %w", err)
	}
	if !ok {
		return OutcomeNotFound, nil
	}

	patch.ApplyTo(&student)
	if err := r.store.Put(student); err != nil {
		return "", fmt.Errorf("Update: put: %w", err)
	}

	r.log.Info("student updated", slog.Int64("id", id))
	return OutcomeUpdated, nil
}

// List returns every record rendered as a display line.
// An empty registry yields mo.None — a distinguished "no records"
// indicator rather than an empty slice, so the caller can print a
// specific message instead of nothing.
func (r *Registry) List() (mo.Option[[]string], error) {
	students, err := r.store.ListAll()
	if err != nil {
		return mo.None[[]string](), fmt.Errorf("List: %w", err)
	}
	if len(students) == 0 {
		return mo.None[[]string](), nil
	}

	entries := make([]string, 0, len(students))
	for _, s := range students {
		entries = append(entries, render.Student(s))
	}
	return mo.Some(entries), nil
}
