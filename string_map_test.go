package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

func TestStringMap_Scan(t *testing.T) {
	entries := []frozen.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}
	m, err := frozen.NewStringMap(entries)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestStringMap_LongestCommonPrefix(t *testing.T) {
	entries := []frozen.Entry[string, int]{
		{Key: "aaaaaaaaaaaaaaaaaaaax", Value: 1},
		{Key: "aaaaaaaaaaaaaaaaaaaay", Value: 2},
		{Key: "aaaaaaaaaaaaaaaaaaaaz", Value: 3},
		{Key: "aaaaaaaaaaaaaaaaaaaaw", Value: 4},
		{Key: "aaaaaaaaaaaaaaaaaaaav", Value: 5},
	}
	m, err := frozen.NewStringMap(entries)
	require.NoError(t, err)

	v, ok := m.Get("aaaaaaaaaaaaaaaaaaaaz")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = m.Get("nope")
	assert.False(t, ok)
}

func TestStringMap_DuplicateKeepsLast(t *testing.T) {
	entries := []frozen.Entry[string, string]{
		{Key: "k", Value: "first"},
		{Key: "k", Value: "second"},
	}
	m, err := frozen.NewStringMap(entries)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	v, _ := m.Get("k")
	assert.Equal(t, "second", v)
}

func TestStringSet(t *testing.T) {
	s, err := frozen.NewStringSet([]string{"red", "green", "blue", "red"})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("green"))
	assert.False(t, s.Contains("purple"))
}
