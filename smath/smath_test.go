package smath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	require.EqualValues(t, 3, Add(uint64(1), 2))
	require.EqualValues(t, uint64(math.MaxUint64), Add(uint64(math.MaxUint64), 1))
	require.EqualValues(t, uint64(math.MaxUint64), Add(uint64(math.MaxUint64), math.MaxUint64))
	require.EqualValues(t, uint32(math.MaxUint32), Add(uint32(math.MaxUint32-1), 5))
	require.EqualValues(t, uint32(7), Add(uint32(3), 4))
}

func TestSub(t *testing.T) {
	require.EqualValues(t, 2, Sub(uint64(3), 1))
	require.EqualValues(t, 0, Sub(uint64(1), 3))
	require.EqualValues(t, 0, Sub(uint64(0), math.MaxUint64))
	require.EqualValues(t, uint32(0), Sub(uint32(10), 10))
}

func TestMul(t *testing.T) {
	require.EqualValues(t, 42, Mul(uint64(6), 7))
	require.EqualValues(t, 0, Mul(uint64(0), math.MaxUint64))
	require.EqualValues(t, 0, Mul(uint64(math.MaxUint64), 0))
	require.EqualValues(t, uint64(math.MaxUint64), Mul(uint64(math.MaxUint64), 2))
	require.EqualValues(t, uint64(math.MaxUint64), Mul(uint64(1)<<33, uint64(1)<<33))
	require.EqualValues(t, uint32(math.MaxUint32), Mul(uint32(1)<<17, uint32(1)<<17))
	require.EqualValues(t, uint64(math.MaxUint64), Mul(uint64(math.MaxUint64), math.MaxUint64))
}
