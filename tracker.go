package multimut

import "errors"

// ErrBufferFull indicates the tracking buffer for a session has no room
// for another identity. Operations that would need to record one more
// panic with an error wrapping ErrBufferFull, except for iterators,
// which just stop. Size the buffer to the number of entries the session
// retrieves.
var ErrBufferFull = errors.New("buffer full")

// RefTracker records the cell addresses a session has handed out, in
// caller-provided storage. It is the bookkeeping half of the aliasing
// check: an address may be handed out only if it is not already
// recorded here.
//
// The zero RefTracker has capacity zero. Trackers are not safe for
// concurrent use.
type RefTracker[V any] struct {
	refs []*V
	used int
}

// NewRefTracker wraps buffer as an empty tracker. The buffer's length
// is the tracker's capacity; its existing contents are ignored.
func NewRefTracker[V any](buffer []*V) RefTracker[V] {
	return RefTracker[V]{refs: buffer}
}

// Register records an identity, or returns ErrBufferFull when the
// buffer has no free slot. It does not look for duplicates; check
// Contains first.
func (t *RefTracker[V]) Register(ref *V) error {
	if t.used == len(t.refs) {
		return ErrBufferFull
	}
	t.refs[t.used] = ref
	t.used++
	return nil
}

// Contains reports whether ref is already recorded. Linear scan; the
// buffers this library deals in are small.
func (t *RefTracker[V]) Contains(ref *V) bool {
	for _, prev := range t.refs[:t.used] {
		if prev == ref {
			return true
		}
	}
	return false
}

// Clear forgets all recorded identities so the buffer can back a new
// session. Sessions never clear a tracker they were given; that is the
// owner's call to make between sessions.
func (t *RefTracker[V]) Clear() {
	for i := range t.refs[:t.used] {
		t.refs[i] = nil
	}
	t.used = 0
}

// Len returns the number of identities currently recorded.
func (t *RefTracker[V]) Len() int {
	return t.used
}

// Cap returns the number of identities the buffer can hold in total.
func (t *RefTracker[V]) Cap() int {
	return len(t.refs)
}

// Full reports whether no further identity can be recorded.
func (t *RefTracker[V]) Full() bool {
	return t.used == len(t.refs)
}
