// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The registry is an in-memory system, so the default DSN is SQLite's
// ":memory:" database — same process-lifetime-only semantics as the
// map backend, but with the storage boundary exercised through a real
// SQL driver. Pointing the DSN at a file is possible but not what the
// program configures by default.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at the given DSN (use ":memory:" for a
// process-lifetime store), creates the students table if it does not
// already exist, and returns a ready-to-use *SQLite.
func New(dsn string) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	// The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// An in-memory SQLite database lives exactly as long as the
	// connection that created it. database/sql pools connections, so
	// cap the pool at one to keep every statement on that connection.
	db.SetMaxOpenConns(1)

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema:
	//   id    — integer primary key, ASSIGNED BY THE CALLER (no
	//           AUTOINCREMENT: identifiers come from user input)
	//   name  — student's full name
	//   age   — student's age in years
	//   major — student's field of study
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id    INTEGER PRIMARY KEY,
			name  TEXT    NOT NULL,
			age   INTEGER NOT NULL,
			major TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle. For an in-memory DSN
// this discards all stored records.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Put inserts or overwrites the row at student.ID.
//
// INSERT OR REPLACE gives Put its upsert contract: a fresh id inserts,
// an existing id is replaced wholesale. Placeholders (?) keep the
// values out of the SQL text, so they are treated as pure data by the
// engine, never as syntax.
func (s *SQLite) Put(student types.Student) error {
	stmt, err := s.db.Prepare(
		"INSERT OR REPLACE INTO students (id, name, age, major) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("Put: prepare: %w", err)
	}
	// defer ensures the statement is closed when this function returns,
	// even if we return early due to an error.
	defer stmt.Close()

	if _, err := stmt.Exec(student.ID, student.Name, student.Age, student.Major); err != nil {
		return fmt.Errorf("Put: exec: %w", err)
	}

	return nil
}

// Get fetches exactly one row matched by primary key.
// A missing row is reported as ok=false, not as an error —
// sql.ErrNoRows never escapes this package.
func (s *SQLite) Get(id int64) (types.Student, bool, error) {
	stmt, err := s.db.Prepare(
		"SELECT id, name, age, major FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("Get: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student

	// QueryRow returns exactly one row; the "no match" condition only
	// surfaces when Scan is called. Scan writes the columns into the
	// pointed-to fields IN ORDER, matching the SELECT column list.
	err = stmt.QueryRow(id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Major,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, false, nil
		}
		return types.Student{}, false, fmt.Errorf("Get: scan: %w", err)
	}

	return student, true, nil
}

// Remove deletes the row by primary key and returns what was stored
// there. ok=false means no row matched — a normal outcome, not an error.
func (s *SQLite) Remove(id int64) (types.Student, bool, error) {
	student, ok, err := s.Get(id)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("Remove: %w", err)
	}
	if !ok {
		return types.Student{}, false, nil
	}

	stmt, err := s.db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return types.Student{}, false, fmt.Errorf("Remove: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return types.Student{}, false, fmt.Errorf("Remove: exec: %w", err)
	}

	return student, true, nil
}

// ListAll returns all student rows as a slice.
// Always defer rows.Close() to release the database connection.
func (s *SQLite) ListAll() ([]types.Student, error) {
	stmt, err := s.db.Prepare(
		// Explicitly list columns — if a column is added later,
		// SELECT * would break Scan's ordering.
		"SELECT id, name, age, major FROM students",
	)
	if err != nil {
		return nil, fmt.Errorf("ListAll: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("ListAll: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
			&student.Major,
		); err != nil {
			return nil, fmt.Errorf("ListAll: scan row: %w", err)
		}
		students = append(students, student)
	}

	// rows.Err() captures any error that occurred during iteration —
	// separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAll: rows iteration: %w", err)
	}

	return students, nil
}
