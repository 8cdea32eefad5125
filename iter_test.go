package multimut

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/arbitrary"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIter(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	keys := []string{"key_two", "key_four", "key_six"}
	buffer := make([]*string, 3)
	it := IterMultiMut[string, string](m, keys, buffer)

	var got []string
	for {
		ref, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, *ref)
		*ref += "_edited"
	}
	require.Equal(t, []string{"value_two", "value_four", "value_six"}, got)
	require.Equal(t, "value_two_edited", *m["key_two"])
	require.Equal(t, "value_four_edited", *m["key_four"])
	require.Equal(t, "value_six_edited", *m["key_six"])
	require.Equal(t, 0, it.Remaining())

	// exhausted stays exhausted
	ref, ok := it.Next()
	require.False(t, ok)
	require.Nil(t, ref)
}

func TestIterOverCapacity(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	keys := []string{"key_one", "key_two", "key_three", "key_four", "key_five", "key_six"}
	buffer := make([]*string, 5)
	it := IterMultiMut[string, string](m, keys, buffer)

	yielded := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		yielded++
	}
	require.Equal(t, 5, yielded)
	// the buffer ran out, not the keys
	require.Equal(t, 1, it.Remaining())
	_, ok := it.Next()
	require.False(t, ok)
	require.Equal(t, 1, it.Remaining())
}

func TestIterSameKey(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	keys := []string{"key_one", "key_two", "key_one"}
	buffer := make([]*string, 3)
	it := IterMultiMut[string, string](m, keys, buffer)

	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.True(t, ok)
	requirePanicsIs(t, ErrAliased, func() {
		it.Next()
	})
}

func TestIterMissingKey(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	keys := []string{"key_one", "key_nope"}
	buffer := make([]*string, 2)
	it := IterMultiMut[string, string](m, keys, buffer)

	_, ok := it.Next()
	require.True(t, ok)
	requirePanicsIs(t, ErrNotFound, func() {
		it.Next()
	})
}

func TestIterNoKeys(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	it := IterMultiMut[string, string](m, nil, make([]*string, 2))
	ref, ok := it.Next()
	require.False(t, ok)
	require.Nil(t, ref)
}

func TestIterZeroBuffer(t *testing.T) {
	t.Parallel()
	m := newTestMap()
	keys := []string{"key_one", "key_two"}
	it := IterMultiMut[string, string](m, keys, nil)
	_, ok := it.Next()
	require.False(t, ok)
	// no key was consumed
	require.Equal(t, 2, it.Remaining())
}

func checkIterOrder(t *testing.T, keys []uint) bool {
	distinct := dedup(keys)
	m := PtrMap[uint, uint]{}
	for _, k := range distinct {
		m.Set(k, k*10)
	}
	buffer := make([]*uint, len(distinct))
	it := IterMultiMut[uint, uint](m, distinct, buffer)
	for i := 0; ; i++ {
		ref, ok := it.Next()
		if !ok {
			return assert.Equal(t, len(distinct), i, "iteration stopped early")
		}
		if !assert.Equal(t, distinct[i]*10, *ref, "out of order at position %d", i) {
			return false
		}
	}
}

func TestIterFollowsKeyOrder(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 999))

	properties.Property("pointers come out in key-list order, not container order",
		arbitraries.ForAll(
			func(keys []uint) bool {
				return checkIterOrder(t, keys)
			}))
	properties.TestingRun(t)
}
