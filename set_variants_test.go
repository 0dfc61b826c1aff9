package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

func TestSet_Uniformity(t *testing.T) {
	intSet, err := frozen.NewIntSet([]int{1, 2, 3})
	require.NoError(t, err)

	strSet, err := frozen.NewStringSet([]string{"a", "b", "c"})
	require.NoError(t, err)

	hashSet, err := frozen.NewHashSet([]point{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)

	orderedSet, err := frozen.NewOrderedSet([]int{1, 2, 3})
	require.NoError(t, err)

	assertSetOf3(t, intSet)
	assertSetOf3(t, strSet)
	assertSetOf3(t, hashSet)
	assertSetOf3(t, orderedSet)
}

func assertSetOf3[T comparable](t *testing.T, s frozen.Set[T]) {
	t.Helper()
	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.Items(), 3)
}
