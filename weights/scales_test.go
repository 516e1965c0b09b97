package weights_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weighbridge/go-weighbridge/weights"
)

const maxWeight = weights.Weight(math.MaxUint64)

func TestLinear(t *testing.T) {
	require.EqualValues(t, 42, weights.Linear{Factor: 7}.Weigh(6))
	require.EqualValues(t, 0, weights.Linear{Factor: 0}.Weigh(123))
	// a factor at the type maximum clamps instead of wrapping
	require.Equal(t, maxWeight, weights.Linear{Factor: maxWeight}.Weigh(2))
	require.Equal(t, maxWeight, weights.Linear{Factor: 2}.Weigh(maxWeight))
}

func TestQuadratic(t *testing.T) {
	s := weights.Quadratic{A: 2, B: 3, C: 4}
	require.EqualValues(t, 2*25+3*6+4, s.Weigh(5, 6))
	// each term saturates independently: a huge x saturates the squaring
	// step but must not corrupt the b*y + c terms when a is zero
	require.EqualValues(t, 3*6+4, weights.Quadratic{A: 0, B: 3, C: 4}.Weigh(maxWeight, 6))
	require.Equal(t, maxWeight, s.Weigh(maxWeight, 0))
	require.Equal(t, maxWeight, weights.Quadratic{A: 1, B: 0, C: 0}.Weigh(1<<33, 0))
	require.Equal(t, maxWeight, weights.Quadratic{A: 0, B: 2, C: 5}.Weigh(0, maxWeight))
}

func TestConditional(t *testing.T) {
	s := weights.Conditional{Factor: 200}
	require.EqualValues(t, 2000, s.Weigh(true, 10))
	// val is ignored when the flag is off, however large it is
	require.EqualValues(t, 200, s.Weigh(false, maxWeight))
	require.Equal(t, maxWeight, s.Weigh(true, maxWeight))
}

func TestBasic(t *testing.T) {
	s := weights.Basic{Base: 100, ByteRate: 2}
	require.EqualValues(t, 100, s.Weigh(0))
	require.EqualValues(t, 164, s.Weigh(32))
	require.Equal(t, maxWeight, weights.Basic{Base: 1, ByteRate: maxWeight}.Weigh(2))
}

func TestDefaultScale(t *testing.T) {
	// unannotated calls are weighed by their encoded size, nothing more
	require.EqualValues(t, 97, weights.DefaultScale().Weigh(97))
	require.EqualValues(t, 0, weights.DefaultScale().Weigh(0))
}

func TestMaxAndFree(t *testing.T) {
	require.EqualValues(t, 3*1024*1024, weights.Max{}.Weigh())
	require.EqualValues(t, 0, weights.Free{}.Weigh())
}

func TestBlockConstants(t *testing.T) {
	require.EqualValues(t, 4*1024*1024, weights.MaxBlockWeight)
	require.Equal(t, weights.MaxBlockWeight/4, weights.IdealBlockWeight)
}

func TestStaticDispatchStubs(t *testing.T) {
	for _, s := range []weights.Scale{
		weights.Linear{Factor: 1},
		weights.Quadratic{A: 1, B: 1, C: 1},
		weights.Conditional{Factor: 1},
		weights.Basic{Base: 1, ByteRate: 1},
		weights.Max{},
		weights.Free{},
	} {
		require.True(t, s.PaysFee())
		require.Equal(t, weights.Normal, s.Class())
	}
}

func TestDispatchClassString(t *testing.T) {
	require.Equal(t, "normal", weights.Normal.String())
	require.Equal(t, "operational", weights.Operational.String())
	require.Equal(t, "unknown", weights.DispatchClass(7).String())
}
