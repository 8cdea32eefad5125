package multimut

// Container is the view of an associative container that the accessor
// operations consume: a key lookup yielding the address of the value's
// storage cell. The address doubles as the entry's identity, so
// implementations must keep it stable. A cell must not move or be
// rebound to its key for as long as a session over the container is
// active, or outstanding pointers and the aliasing check both quietly
// rot.
type Container[K comparable, V any] interface {
	// Ref returns the address of the value cell for key, or ok=false
	// when the key has no entry.
	Ref(key K) (*V, bool)
}

// PtrMap adapts a builtin map with boxed values to Container. The box
// is the entry's cell: it keeps its address when the map grows and
// rehashes, which a plain map[K]V value cannot promise. Set rebinds an
// existing key to a fresh box, so entries retrieved in an active
// session must not be Set again until the session is done. Adding and
// deleting other keys is harmless.
//
// A PtrMap is still an ordinary map and can be ranged over, indexed
// and measured with len as usual.
type PtrMap[K comparable, V any] map[K]*V

// Ref returns the cell bound to key.
func (m PtrMap[K, V]) Ref(key K) (*V, bool) {
	ref, ok := m[key]
	return ref, ok
}

// Set boxes value into a fresh cell and binds key to it, displacing
// any previous cell.
func (m PtrMap[K, V]) Set(key K, value V) {
	m[key] = &value
}

// Delete removes key and its cell.
func (m PtrMap[K, V]) Delete(key K) {
	delete(m, key)
}

// Len returns the number of entries.
func (m PtrMap[K, V]) Len() int {
	return len(m)
}
