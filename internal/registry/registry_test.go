package registry

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aanand-mishra/student-registry/internal/storage/memory"
	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRegistry builds an independent registry per test case —
// constructor injection means no shared state between cases. The
// backing store is returned too so tests can inspect it directly.
func newTestRegistry(t *testing.T) (*Registry, *memory.Store) {
	t.Helper()

	store := memory.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, log), store
}

func alice() types.Student {
	return types.Student{ID: 1, Name: "Alice", Age: 20, Major: "CS"}
}

func TestAddThenList(t *testing.T) {
	reg, _ := newTestRegistry(t)

	outcome, err := reg.Add(alice())
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, outcome)

	listing, err := reg.List()
	require.NoError(t, err)
	entries, ok := listing.Get()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "ID: 1 | Name: Alice | Age: 20 | Major: CS", entries[0])
}

func TestAddDuplicateKeepsFirst(t *testing.T) {
	reg, store := newTestRegistry(t)

	outcome, err := reg.Add(alice())
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, outcome)

	// Second add with the same identifier must not mutate anything.
	outcome, err = reg.Add(types.Student{ID: 1, Name: "Mallory", Age: 99, Major: "Intrusion"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyExists, outcome)

	got, ok, err := store.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice(), got)
}

func TestDelete(t *testing.T) {
	reg, store := newTestRegistry(t)

	outcome, err := reg.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)

	_, err = reg.Add(alice())
	require.NoError(t, err)

	outcome, err = reg.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, outcome)

	_, ok, err := store.Get(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateAbsent(t *testing.T) {
	reg, store := newTestRegistry(t)

	outcome, err := reg.Update(1, types.StudentPatch{Name: mo.Some("Bob")})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, outcome)

	students, err := store.ListAll()
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestUpdatePartial(t *testing.T) {
	reg, store := newTestRegistry(t)
	_, err := reg.Add(alice())
	require.NoError(t, err)

	// Only the name is supplied; age and major must survive.
	outcome, err := reg.Update(1, types.StudentPatch{Name: mo.Some("Bob")})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	got, ok, err := store.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.Student{ID: 1, Name: "Bob", Age: 20, Major: "CS"}, got)
}

func TestUpdateZeroValuesAreSupplied(t *testing.T) {
	reg, store := newTestRegistry(t)
	_, err := reg.Add(alice())
	require.NoError(t, err)

	// mo.Some(0) and mo.Some("") are supplied values, not absences:
	// they must be applied, unlike mo.None.
	outcome, err := reg.Update(1, types.StudentPatch{
		Name: mo.Some(""),
		Age:  mo.Some(0),
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	got, _, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, 0, got.Age)
	assert.Equal(t, "CS", got.Major)
}

func TestUpdateEmptyPatch(t *testing.T) {
	reg, store := newTestRegistry(t)
	_, err := reg.Add(alice())
	require.NoError(t, err)

	patch := types.StudentPatch{}
	assert.True(t, patch.IsEmpty())

	outcome, err := reg.Update(1, patch)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	got, _, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, alice(), got)
}

func TestListEmptyIndicator(t *testing.T) {
	reg, _ := newTestRegistry(t)

	// An empty registry reports the distinguished "no records"
	// indicator, not an empty slice.
	listing, err := reg.List()
	require.NoError(t, err)
	assert.True(t, listing.IsAbsent())
}

func TestReadsAreIdempotent(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Add(alice())
	require.NoError(t, err)

	first, err := reg.List()
	require.NoError(t, err)
	second, err := reg.List()
	require.NoError(t, err)
	assert.Equal(t, first.MustGet(), second.MustGet())
}
