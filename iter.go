package multimut

// MultiIter yields pointers for a fixed key list, one per Next call,
// in the order the keys were supplied. The sequence is finite and is
// not restartable; open a new one with IterMultiMut to go again.
//
// Like Wrapper, a MultiIter is single-goroutine only.
type MultiIter[K comparable, V any] struct {
	w    Wrapper[K, V]
	keys []K
	next int
}

// Next resolves the next key in the list and hands out its pointer.
// It reports ok=false when the keys are exhausted, and likewise when
// the buffer is, without consuming a key: running out of buffer ends
// the iteration, so a deliberately short buffer caps how many entries
// a walk can touch. A key with no entry panics with ErrNotFound, and a
// key repeating an already-yielded cell panics with ErrAliased, in
// both cases at the call that reaches the offending key.
func (it *MultiIter[K, V]) Next() (*V, bool) {
	if it.w.tracker().Full() {
		return nil, false
	}
	if it.next >= len(it.keys) {
		return nil, false
	}
	key := it.keys[it.next]
	it.next++
	return it.w.MustGet(key), true
}

// Remaining returns the number of keys not yet consumed. The buffer
// may run out before they do.
func (it *MultiIter[K, V]) Remaining() int {
	return len(it.keys) - it.next
}
