package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar(t *testing.T) {
	cases := []struct {
		name    string
		indices []uint64
		want    ScalarResult
	}{
		{"empty", nil, ScalarDense},
		{"unbroken range", []uint64{0, 1, 2, 3}, ScalarDense},
		{"single gap within tolerance", []uint64{0, 1, 2, 3, 6}, ScalarSparse},
		{"huge span", []uint64{0, 1000000}, ScalarGeneral},
		{"single key", []uint64{42}, ScalarDense},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Scalar(tc.indices))
		})
	}
}
