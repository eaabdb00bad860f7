package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneIndexedZeroIndexedRoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 2, 4, 99, 100000} {
		local := OneIndexed(n)
		assert.Equal(t, int(n)+1, local)
		assert.Equal(t, n, ZeroIndexed(local))
	}
}

func TestZeroIndexedClampsBelowOne(t *testing.T) {
	assert.Equal(t, uint32(0), ZeroIndexed(0))
	assert.Equal(t, uint32(0), ZeroIndexed(-5))
}

func TestLocalColumn(t *testing.T) {
	t.Run("unknown line text falls back to character offset", func(t *testing.T) {
		assert.Equal(t, 3, LocalColumn("", 2, false))
	})

	t.Run("ascii line text", func(t *testing.T) {
		assert.Equal(t, 3, LocalColumn("abcdef", 2, true))
	})

	t.Run("multibyte line text yields byte column", func(t *testing.T) {
		// 日 is 3 bytes but 1 UTF-16 unit
		assert.Equal(t, 4, LocalColumn("日本語", 1, true))
	})
}
