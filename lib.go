package multimut

import "fmt"

// Wrapper is one multi-pointer session over a container: a container
// view paired with the tracker that polices it. Pointers retrieved
// through a Wrapper stay usable together until the caller is done with
// the whole session; there is no per-pointer release.
//
// Wrappers are not safe for concurrent use, and a Wrapper backed by
// its own tracker must not be copied once retrieval has started.
type Wrapper[K comparable, V any] struct {
	c      Container[K, V]
	shared *RefTracker[V]
	own    RefTracker[V]
}

// tracker resolves to the caller-supplied tracker when there is one,
// else the session's own.
func (w *Wrapper[K, V]) tracker() *RefTracker[V] {
	if w.shared != nil {
		return w.shared
	}
	return &w.own
}

// Get resolves key to a pointer that no earlier retrieval in this
// session has produced. The checks run in a fixed order: a full
// tracker panics with ErrBufferFull before the key is even looked up,
// since the session could not admit a pointer for any key; an absent
// key then reports ok=false and records nothing; a key resolving to an
// already-recorded cell panics with ErrAliased. Only a retrieval that
// returns ok=true consumes buffer space.
func (w *Wrapper[K, V]) Get(key K) (*V, bool) {
	t := w.tracker()
	if t.Full() {
		panic(fmt.Errorf("get %v: %w", key, ErrBufferFull))
	}
	ref, ok := w.c.Ref(key)
	if !ok {
		return nil, false
	}
	if t.Contains(ref) {
		panic(fmt.Errorf("get %v: %w", key, ErrAliased))
	}
	if err := t.Register(ref); err != nil {
		panic(fmt.Errorf("get %v: %w", key, err))
	}
	return ref, true
}

// MustGet is Get for callers that know the key exists: it panics with
// ErrNotFound instead of reporting ok=false.
func (w *Wrapper[K, V]) MustGet(key K) *V {
	ref, ok := w.Get(key)
	if !ok {
		panic(fmt.Errorf("get %v: %w", key, ErrNotFound))
	}
	return ref
}

// Tracker exposes the tracker this session records into: the session's
// own one, or the tracker it was opened with.
func (w *Wrapper[K, V]) Tracker() *RefTracker[V] {
	return w.tracker()
}
