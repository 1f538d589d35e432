// Package storage defines the Storage interface — a contract that any
// record-store backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The registry (business-rule layer) should not know or care which
// container its records live in. By depending only on this interface:
//
//   - Switching backends = implement the interface for the new store,
//     change one line in main.go. Zero registry changes.
//
//   - Writing tests = pass any implementation that satisfies the
//     interface. No shared global state between test cases.
//
// ABSENCE IS NOT AN ERROR:
// "no record with that id" is a normal outcome of Get and Remove and
// is reported through the bool return, in the comma-ok style of a map
// lookup. The error return is reserved for backend faults (a failing
// database driver, for example) — the in-memory backend never
// produces one.
package storage

import "github.com/aanand-mishra/student-registry/internal/types"

// Storage is the record-store contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// Put inserts or overwrites the record at student.ID.
	// This layer enforces no uniqueness rule — the registry decides
	// whether an overwrite is allowed before calling Put.
	Put(student types.Student) error

	// Get returns the record with the given id, or ok=false if no
	// such record exists.
	Get(id int64) (types.Student, bool, error)

	// Remove deletes and returns the record with the given id.
	// ok=false means nothing was stored under that id; nothing was
	// deleted and that is not an error.
	Remove(id int64) (types.Student, bool, error)

	// ListAll returns every record currently stored, in
	// implementation-defined order. Returns an empty slice (not nil)
	// when the store is empty.
	ListAll() ([]types.Student, error)
}
