// Package store holds the in-memory working set of entities and the derived,
// filtered invoice view. Mutations and view recomputation happen under one
// lock, so readers never observe a view that mixes stale and fresh inputs.
package store

import (
	"sync"
)

// Entity is anything keyed by a string identifier
type Entity interface {
	EntityID() string
}

// Collection is an ordered sequence of entities, unique by identifier
type Collection[T Entity] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates an empty collection
func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{}
}

// Snapshot returns a copy of the current items in order
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the entity with the given identifier
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add inserts the entity, replacing any existing entry with the same
// identifier (update wins)
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Update replaces the entry with the same identifier and reports whether a
// match was found
func (c *Collection[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove splices out the entry with the given identifier
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the whole collection for a fresh list
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Len returns the number of entities held
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
