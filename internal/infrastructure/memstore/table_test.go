package memstore

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string
	Tags []string
}

func cloneRow(r row) row {
	r.Tags = append([]string(nil), r.Tags...)
	return r
}

func TestTable_CRUD(t *testing.T) {
	tbl := NewTable(cloneRow)
	id := uuid.New()

	require.NoError(t, tbl.Insert(id, row{Name: "a", Tags: []string{"x"}}))
	assert.ErrorIs(t, tbl.Insert(id, row{}), ErrDuplicate)

	got, ok := tbl.Get(id)
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)

	updated, err := tbl.Update(id, func(r *row) error {
		r.Name = "b"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Name)

	deleted, ok := tbl.Delete(id)
	require.True(t, ok)
	assert.Equal(t, "b", deleted.Name)
	assert.Equal(t, 0, tbl.Len())

	_, ok = tbl.Delete(id)
	assert.False(t, ok)
}

func TestTable_UpdateFailureLeavesRow(t *testing.T) {
	tbl := NewTable(cloneRow)
	id := uuid.New()
	require.NoError(t, tbl.Insert(id, row{Name: "keep"}))

	boom := errors.New("boom")
	_, err := tbl.Update(id, func(r *row) error {
		r.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := tbl.Get(id)
	assert.Equal(t, "keep", got.Name)

	_, err = tbl.Update(uuid.New(), func(*row) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTable_ClonesIsolateCallers(t *testing.T) {
	tbl := NewTable(cloneRow)
	id := uuid.New()
	tags := []string{"x"}
	require.NoError(t, tbl.Insert(id, row{Tags: tags}))

	tags[0] = "mutated"
	got, _ := tbl.Get(id)
	assert.Equal(t, []string{"x"}, got.Tags)

	got.Tags[0] = "mutated-again"
	again, _ := tbl.Get(id)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestTable_SelectCount(t *testing.T) {
	tbl := NewTable[row](nil)
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, tbl.Insert(uuid.New(), row{Name: n}))
	}

	notB := func(r row) bool { return r.Name != "b" }
	assert.Len(t, tbl.Select(notB), 2)
	assert.Equal(t, 2, tbl.Count(notB))
	assert.Len(t, tbl.Select(nil), 3)

	found, ok := tbl.FindFirst(func(r row) bool { return r.Name == "c" })
	require.True(t, ok)
	assert.Equal(t, "c", found.Name)
}

func TestTable_ConcurrentInserts(t *testing.T) {
	tbl := NewTable[row](nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tbl.Insert(uuid.New(), row{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, tbl.Len())
}

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Paginate(rows, 0, 2))
	assert.Equal(t, []int{5}, Paginate(rows, 4, 2))
	assert.Equal(t, []int{}, Paginate(rows, 5, 2))
	assert.Equal(t, []int{}, Paginate(rows, 10, 2))
	assert.Equal(t, []int{3, 4, 5}, Paginate(rows, 2, math.MaxInt))
}

func TestPaginate_NegativeSkip(t *testing.T) {
	rows := []int{1, 2, 3}
	assert.NotPanics(t, func() {
		assert.Equal(t, []int{}, Paginate(rows, -9223372036854775716, 100))
	})
	assert.Equal(t, []int{}, Paginate(rows, -1, 2))
}
