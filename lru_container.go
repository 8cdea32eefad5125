package multimut

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRUMap adapts a fixed-size LRU cache to Container. Values live in
// boxed cells, so recency reordering never moves an identity. Eviction
// is the hazard instead: Set during an active session can silently
// drop a cell that still has a pointer outstanding, after which writes
// through that pointer no longer reach anything the cache knows about.
// Do not add entries while a session over the cache is active.
type LRUMap[K comparable, V any] struct {
	cache *lru.Cache
}

// NewLRUMap returns an LRUMap that holds at most size entries,
// evicting the least recently added-or-gotten entry beyond that.
// It panics if size is not positive.
func NewLRUMap[K comparable, V any](size int) *LRUMap[K, V] {
	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &LRUMap[K, V]{cache: cache}
}

// Set boxes value into a fresh cell for key, possibly evicting the
// least recently used entry. It reports whether an eviction happened.
func (m *LRUMap[K, V]) Set(key K, value V) bool {
	return m.cache.Add(key, &value)
}

// Ref returns the cell bound to key. It peeks rather than gets:
// resolving a key for the aliasing check does not count as a use in
// the eviction order.
func (m *LRUMap[K, V]) Ref(key K) (*V, bool) {
	v, ok := m.cache.Peek(key)
	if !ok {
		return nil, false
	}
	return v.(*V), true
}

// Touch marks key as recently used, without retrieving it.
func (m *LRUMap[K, V]) Touch(key K) bool {
	_, ok := m.cache.Get(key)
	return ok
}

// Remove drops key and its cell.
func (m *LRUMap[K, V]) Remove(key K) bool {
	return m.cache.Remove(key)
}

// Len returns the number of cached entries.
func (m *LRUMap[K, V]) Len() int {
	return m.cache.Len()
}
