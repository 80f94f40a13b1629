package store

import (
	"sort"
	"sync"
)

// table is a mutex-guarded map of rows keyed by an auto-incremented integer
// id. Every exported store operation maps to exactly one table call, so
// check-then-act sequences (uniqueness checks, view increments, upserts)
// stay atomic under concurrent request goroutines.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int]T), nextID: 1}
}

// insert assigns the next id and stores the row built by build. When
// conflicts is non-nil it is evaluated against every existing row under the
// write lock; a hit aborts the insert with ErrDuplicate.
func (t *table[T]) insert(conflicts func(candidate, other T) bool, build func(id int) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	candidate := build(t.nextID)
	if conflicts != nil {
		for _, row := range t.rows {
			if conflicts(candidate, row) {
				var zero T
				return zero, ErrDuplicate
			}
		}
	}
	t.rows[t.nextID] = candidate
	t.nextID++
	return candidate, nil
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// first returns the lowest-id row matching the predicate.
func (t *table[T]) first(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.sortedIDsLocked() {
		if match(t.rows[id]) {
			return t.rows[id], true
		}
	}
	var zero T
	return zero, false
}

// update applies mutate to the stored row. The second return reports whether
// the id existed; ErrDuplicate is returned when the mutated row trips the
// conflicts predicate against any other row.
func (t *table[T]) update(id int, conflicts func(candidate, other T) bool, mutate func(T) T) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	next := mutate(current)
	if conflicts != nil {
		for otherID, row := range t.rows {
			if otherID != id && conflicts(next, row) {
				var zero T
				return zero, true, ErrDuplicate
			}
		}
	}
	t.rows[id] = next
	return next, true, nil
}

// upsert updates the first row matching match, or inserts a new one when
// none matches. The bool reports whether a row was created.
func (t *table[T]) upsert(match func(T) bool, build func(id int) T, mutate func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.sortedIDsLocked() {
		if match(t.rows[id]) {
			next := mutate(t.rows[id])
			t.rows[id] = next
			return next, false
		}
	}
	row := build(t.nextID)
	t.rows[t.nextID] = row
	t.nextID++
	return row, true
}

func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// removeFirst deletes the lowest-id row matching the predicate.
func (t *table[T]) removeFirst(match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.sortedIDsLocked() {
		if match(t.rows[id]) {
			delete(t.rows, id)
			return true
		}
	}
	return false
}

// list returns rows in ascending id order, narrowed by match when non-nil.
func (t *table[T]) list(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, id := range t.sortedIDsLocked() {
		if match == nil || match(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out
}

// sortedIDsLocked must be called with at least the read lock held.
func (t *table[T]) sortedIDsLocked() []int {
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
