package frozen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

// weekday is a small enum-like type implementing frozen.Scalar by
// enumerating its discriminants.
type weekday int

const (
	sunday weekday = iota
	monday
	tuesday
	wednesday
	thursday
	friday
	saturday
)

func (w weekday) Index() uint64 { return uint64(w) }

func TestScalarMap_CustomType(t *testing.T) {
	entries := []frozen.Entry[weekday, string]{
		{Key: sunday, Value: "Sunday"},
		{Key: monday, Value: "Monday"},
		{Key: tuesday, Value: "Tuesday"},
		{Key: wednesday, Value: "Wednesday"},
		{Key: thursday, Value: "Thursday"},
		{Key: friday, Value: "Friday"},
		{Key: saturday, Value: "Saturday"},
	}
	m, err := frozen.NewScalarMap(entries)
	require.NoError(t, err)
	require.Equal(t, 7, m.Len())

	v, ok := m.Get(friday)
	require.True(t, ok)
	require.Equal(t, "Friday", v)

	_, ok = m.Get(weekday(42))
	require.False(t, ok)
}
