package multimut

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a key with no entry in the container, in an
// operation whose contract says the key must exist. The Get-flavored
// operations treat absence as an ordinary outcome and report ok=false
// instead.
var ErrNotFound = errors.New("no such key")

// ErrAliased indicates a request for a pointer to an entry that
// already has one outstanding. Aliasing is always fatal: the operation
// panics with an error wrapping ErrAliased rather than hand out the
// duplicate.
var ErrAliased = errors.New("aliased reference")

// GetPair resolves two distinct keys into two pointers that are usable
// at the same time. If either key is absent it reports ok=false and
// both pointers are nil. Equal keys are an aliasing violation and
// panic with ErrAliased; the keys are compared before anything is
// looked up, so the panic fires whether or not the key exists.
func GetPair[K comparable, V any](c Container[K, V], k1, k2 K) (*V, *V, bool) {
	if k1 == k2 {
		panic(fmt.Errorf("pair %v, %v: %w", k1, k2, ErrAliased))
	}
	r1, ok := c.Ref(k1)
	if !ok {
		return nil, nil, false
	}
	r2, ok := c.Ref(k2)
	if !ok {
		return nil, nil, false
	}
	return r1, r2, true
}

// MustPair is GetPair for callers that know both keys exist: instead
// of reporting ok=false for an absent key, it panics with ErrNotFound.
func MustPair[K comparable, V any](c Container[K, V], k1, k2 K) (*V, *V) {
	r1, r2, ok := GetPair(c, k1, k2)
	if !ok {
		panic(fmt.Errorf("pair %v, %v: %w", k1, k2, ErrNotFound))
	}
	return r1, r2
}

// GetTriple resolves three pairwise-distinct keys into three pointers
// that are usable at the same time. Any two equal keys panic with
// ErrAliased before lookup; an absent key reports ok=false with all
// pointers nil.
func GetTriple[K comparable, V any](c Container[K, V], k1, k2, k3 K) (*V, *V, *V, bool) {
	if k1 == k2 || k1 == k3 || k2 == k3 {
		panic(fmt.Errorf("triple %v, %v, %v: %w", k1, k2, k3, ErrAliased))
	}
	r1, ok := c.Ref(k1)
	if !ok {
		return nil, nil, nil, false
	}
	r2, ok := c.Ref(k2)
	if !ok {
		return nil, nil, nil, false
	}
	r3, ok := c.Ref(k3)
	if !ok {
		return nil, nil, nil, false
	}
	return r1, r2, r3, true
}

// MustTriple is GetTriple for callers that know all three keys exist:
// it panics with ErrNotFound instead of reporting ok=false.
func MustTriple[K comparable, V any](c Container[K, V], k1, k2, k3 K) (*V, *V, *V) {
	r1, r2, r3, ok := GetTriple(c, k1, k2, k3)
	if !ok {
		panic(fmt.Errorf("triple %v, %v, %v: %w", k1, k2, k3, ErrNotFound))
	}
	return r1, r2, r3
}

// MultiMut opens a session for retrieving any number of pointers from
// c, up to len(buffer) of them, one call at a time. The buffer backs a
// fresh tracker, so the session starts with nothing recorded no matter
// what the buffer held before.
//
// The returned Wrapper must not be copied after its first Get.
func MultiMut[K comparable, V any](c Container[K, V], buffer []*V) Wrapper[K, V] {
	return Wrapper[K, V]{c: c, own: NewRefTracker(buffer)}
}

// MultiMutWith opens a session that records into an existing tracker
// instead of a fresh one. The tracker is taken as-is: identities
// recorded by earlier sessions still count, which extends aliasing
// freedom across every session sharing the tracker, possibly over
// several containers of the same value type. Clear the tracker between
// sessions that should not constrain each other.
func MultiMutWith[K comparable, V any](c Container[K, V], t *RefTracker[V]) Wrapper[K, V] {
	return Wrapper[K, V]{c: c, shared: t}
}

// IterMultiMut opens a session that walks a caller-fixed key list,
// resolving one key per Next call, in the order given. The keys are
// expected to exist and to be distinct; a missing key panics with
// ErrNotFound and a repeated one panics with ErrAliased, each at the
// Next call that reaches it. A buffer shorter than the key list does
// not panic but ends the iteration early.
//
// The returned MultiIter must not be copied after its first Next.
func IterMultiMut[K comparable, V any](c Container[K, V], keys []K, buffer []*V) MultiIter[K, V] {
	return MultiIter[K, V]{w: MultiMut(c, buffer), keys: keys}
}
