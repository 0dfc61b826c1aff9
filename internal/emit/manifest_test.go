package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
package: gen
kind: scalar
key_type: int
value_type: string
symbol: Weekdays
static: true
entries:
  - key: "0"
    value: '"Sunday"'
    index: 0
  - key: "1"
    value: '"Monday"'
    index: 1
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, "gen", m.Package)
	assert.Equal(t, KindScalar, m.Kind)
	assert.Equal(t, "Weekdays", m.Symbol)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, uint64(1), m.Entries[1].Index)
}

func TestManifest_Emit(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	src, err := m.Emit()
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewDenseIntMap[int, string]")
	assert.Contains(t, src, "Weekdays")
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := ParseManifest([]byte("not: [valid yaml"))
	assert.Error(t, err)
}

func TestManifest_UnknownKind(t *testing.T) {
	m := Manifest{Package: "gen", Kind: "bogus"}
	_, err := m.Emit()
	assert.Error(t, err)
}
