// Package memstore is a process-local table used by the memory store driver.
package memstore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("memstore: row not found")
	ErrDuplicate = errors.New("memstore: duplicate id")
)

// Table is a goroutine-safe map of rows keyed by UUID. Rows are cloned on
// the way in and out so callers never share memory with the table.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]T
	clone func(T) T
}

// NewTable uses clone to copy rows; nil means rows are plain values.
func NewTable[T any](clone func(T) T) *Table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Table[T]{rows: make(map[uuid.UUID]T), clone: clone}
}

func (t *Table[T]) Insert(id uuid.UUID, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return ErrDuplicate
	}
	t.rows[id] = t.clone(row)
	return nil
}

func (t *Table[T]) Get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

// FindFirst returns any row matching pred.
func (t *Table[T]) FindFirst(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if pred(row) {
			return t.clone(row), true
		}
	}
	var zero T
	return zero, false
}

// Update applies fn to a copy of the row and stores the copy when fn succeeds.
func (t *Table[T]) Update(id uuid.UUID, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	row, ok := t.rows[id]
	if !ok {
		return zero, ErrNotFound
	}
	next := t.clone(row)
	if err := fn(&next); err != nil {
		return zero, err
	}
	t.rows[id] = next
	return t.clone(next), nil
}

// Delete removes and returns the row.
func (t *Table[T]) Delete(id uuid.UUID) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(t.rows, id)
	return row, true
}

// Select returns copies of all rows matching pred, in no particular order.
func (t *Table[T]) Select(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for _, row := range t.rows {
		if pred == nil || pred(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

func (t *Table[T]) Count(pred func(T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, row := range t.rows {
		if pred == nil || pred(row) {
			n++
		}
	}
	return n
}

func (t *Table[T]) Len() int {
	return t.Count(nil)
}

// Paginate slices an already ordered result set. A negative skip yields an
// empty page.
func Paginate[T any](rows []T, skip, take int) []T {
	if skip < 0 || skip >= len(rows) || take <= 0 {
		return []T{}
	}
	end := len(rows)
	if take < end-skip {
		end = skip + take
	}
	return rows[skip:end]
}
