package dss

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWadString(t *testing.T) {
	assert.Equal(t, "1.000000000000000000", WadFromNumber(1).String())
	assert.Equal(t, "0.000000000000000000", NewWad(nil).String())
	assert.Equal(t, "0.000000000000000001", NewWad(big.NewInt(1)).String())

	neg := NewWad(new(big.Int).Neg(WadUnit))
	assert.Equal(t, "-1.000000000000000000", neg.String())
}

func TestRayString(t *testing.T) {
	assert.Equal(t, "1.000000000000000000000000000", RayFromNumber(1).String())
}

func TestRadString(t *testing.T) {
	rad := NewRad(new(big.Int).Mul(big.NewInt(5), RadUnit))
	assert.Equal(t, "5.000000000000000000000000000000000000000000000", rad.String())
}

func TestBigIsACopy(t *testing.T) {
	i := big.NewInt(42)
	w := NewWad(i)
	i.SetInt64(7)
	assert.Equal(t, int64(42), w.Big().Int64())

	w.Big().SetInt64(9)
	assert.Equal(t, int64(42), w.Big().Int64())
}

func TestIsZero(t *testing.T) {
	assert.True(t, NewWad(nil).IsZero())
	assert.True(t, Wad{}.IsZero())
	assert.False(t, WadFromNumber(3).IsZero())
}

func TestParseBig(t *testing.T) {
	i, err := ParseBig("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", i.String())

	_, err = ParseBig("0x10")
	require.Error(t, err)
}
