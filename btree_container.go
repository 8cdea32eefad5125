package multimut

import "github.com/google/btree"

// DefaultDegree is the B-tree degree used by NewBTreeMap.
const DefaultDegree = 16

// btreeEntry pairs a key with its boxed cell. Only the key takes part
// in ordering.
type btreeEntry[K comparable, V any] struct {
	key K
	ref *V
}

// BTreeMap adapts an ordered B-tree to Container, for callers that
// want the sorted iteration a map cannot give. Rebalancing copies
// entries between nodes, but the cells are boxed, so identities hold
// still. As with PtrMap, Set rebinds an existing key to a fresh cell
// and must not happen to a key retrieved in an active session.
type BTreeMap[K comparable, V any] struct {
	tree *btree.BTreeG[btreeEntry[K, V]]
}

// NewBTreeMap returns a BTreeMap ordered by the natural order of K.
func NewBTreeMap[K btree.Ordered, V any]() *BTreeMap[K, V] {
	return NewBTreeMapFunc[K, V](func(a, b K) bool { return a < b })
}

// NewBTreeMapFunc returns a BTreeMap ordered by less, for key types
// without a natural order.
func NewBTreeMapFunc[K comparable, V any](less func(a, b K) bool) *BTreeMap[K, V] {
	tree := btree.NewG(DefaultDegree, func(a, b btreeEntry[K, V]) bool {
		return less(a.key, b.key)
	})
	return &BTreeMap[K, V]{tree: tree}
}

// Set boxes value into a fresh cell and binds key to it.
func (m *BTreeMap[K, V]) Set(key K, value V) {
	m.tree.ReplaceOrInsert(btreeEntry[K, V]{key: key, ref: &value})
}

// Ref returns the cell bound to key.
func (m *BTreeMap[K, V]) Ref(key K) (*V, bool) {
	e, ok := m.tree.Get(btreeEntry[K, V]{key: key})
	if !ok {
		return nil, false
	}
	return e.ref, true
}

// Delete removes key and its cell, reporting whether it was present.
func (m *BTreeMap[K, V]) Delete(key K) bool {
	_, ok := m.tree.Delete(btreeEntry[K, V]{key: key})
	return ok
}

// Len returns the number of entries.
func (m *BTreeMap[K, V]) Len() int {
	return m.tree.Len()
}

// Keys returns all keys in ascending order. Handy as the key list for
// IterMultiMut when a walk should visit entries sorted.
func (m *BTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Ascend(func(e btreeEntry[K, V]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Ascend calls f for each entry in ascending key order until f returns
// false. The value is read through the cell at call time.
func (m *BTreeMap[K, V]) Ascend(f func(key K, value V) bool) {
	m.tree.Ascend(func(e btreeEntry[K, V]) bool {
		return f(e.key, *e.ref)
	})
}
