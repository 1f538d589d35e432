// Package memory provides the default in-memory implementation of the
// storage.Storage interface: a plain hash map keyed by the student ID,
// protected by a RWMutex.
//
// All state is process-lifetime only — nothing survives a restart.
package memory

import (
	"sync"

	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"
)

// Store is a map-backed record store.
type Store struct {
	mu      sync.RWMutex
	records map[int64]types.Student
}

// Compile-time check to ensure Store implements storage.Storage.
var _ storage.Storage = (*Store)(nil)

// New creates and returns an empty Store.
func New() *Store {
	return &Store{
		records: make(map[int64]types.Student),
	}
}

// Put inserts or overwrites the record at student.ID.
// Always returns nil for in-memory operations.
func (s *Store) Put(student types.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[student.ID] = student
	return nil
}

// Get retrieves a record by id.
// Returns the record and true if found, a zero Student and false otherwise.
func (s *Store) Get(id int64) (types.Student, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.records[id]
	return student, ok, nil
}

// Remove deletes a record by id and returns what was stored there.
// Returns false (and no error) if the id was not present.
func (s *Store) Remove(id int64) (types.Student, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}
	return student, ok, nil
}

// ListAll returns every stored record. Map iteration order is random,
// which is fine — ordering is not part of the storage contract.
func (s *Store) ListAll() ([]types.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Pre-allocate an empty (non-nil) slice so an empty store lists
	// as [] rather than null when encoded.
	students := make([]types.Student, 0, len(s.records))
	for _, student := range s.records {
		students = append(students, student)
	}
	return students, nil
}
