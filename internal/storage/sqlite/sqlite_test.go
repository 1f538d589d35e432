package sqlite

import (
	"testing"

	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh in-memory database per test case so
// tests cannot see each other's rows.
func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)

	err := s.Put(types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"})
	require.NoError(t, err)

	got, ok, err := s.Get(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"}, got)
}

func TestGetAbsent(t *testing.T) {
	s := newTestStore(t)

	// A missing row reports ok=false, never an error.
	got, ok, err := s.Get(42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"}))
	require.NoError(t, s.Put(types.Student{ID: 1, Name: "Bob", Age: 21, Major: "Math"}))

	got, ok, err := s.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.Student{ID: 1, Name: "Bob", Age: 21, Major: "Math"}, got)

	students, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"}))

	removed, ok, err := s.Remove(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice", removed.Name)

	_, ok, err = s.Get(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveAbsent(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Remove(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAll(t *testing.T) {
	s := newTestStore(t)

	students, err := s.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)

	require.NoError(t, s.Put(types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"}))
	require.NoError(t, s.Put(types.Student{ID: 2, Name: "Bob", Age: 22, Major: "Math"}))

	students, err = s.ListAll()
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.Student{
		{ID: 1, Name: "Alice", Age: 20, Major: "CS"},
		{ID: 2, Name: "Bob", Age: 22, Major: "Math"},
	}, students)
}
