package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign8(t *testing.T) {
	tests := []struct {
		in   int32
		want int32
	}{
		{0, 0},
		{1, 8},
		{8, 8},
		{9, 16},
		{12, 16},
		{16, 16},
		{1023, 1024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Align8(tt.in), "Align8(%d)", tt.in)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(4096))
	assert.True(t, IsPowerOfTwo(1))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(-4096))
	assert.False(t, IsPowerOfTwo(4095))
}
