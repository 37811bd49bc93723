package dss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIlkBytesRoundTrip(t *testing.T) {
	for _, name := range []string{"ETH-A", "USDC-B", "SAI", ""} {
		assert.Equal(t, name, IlkString(IlkBytes(name)))
	}
}

func TestIlkBytesPadding(t *testing.T) {
	b := IlkBytes("ETH-A")
	assert.Equal(t, byte('E'), b[0])
	assert.Equal(t, byte('A'), b[4])
	for i := 5; i < 32; i++ {
		assert.Zero(t, b[i])
	}
}
