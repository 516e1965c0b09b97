// Package ratio implements a fixed point ratio counted in parts per
// billion. The zero value is a valid ratio equal to zero.
package ratio

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/spacemeshos/go-scale"

	"github.com/weighbridge/go-weighbridge/smath"
)

// Unit is the denominator of a Ratio. A Ratio holding Unit parts equals one.
const Unit uint32 = 1_000_000_000

// ErrOutOfRange is returned when decoded parts exceed Unit.
var ErrOutOfRange = errors.New("ratio: parts exceed unit")

// Ratio is a fixed point value in [0, 1] counted in parts of Unit.
type Ratio uint32

// FromParts builds a Ratio from raw parts, clamping at Unit.
func FromParts(parts uint32) Ratio {
	if parts > Unit {
		parts = Unit
	}
	return Ratio(parts)
}

// FromPercent builds a Ratio from whole percentage points, clamping at 100.
func FromPercent(percent uint32) Ratio {
	return FromParts(smath.Mul(percent, Unit/100))
}

// Parts returns the raw parts of the ratio.
func (r Ratio) Parts() uint32 {
	return uint32(r)
}

// Add returns r+o, saturating at one.
func (r Ratio) Add(o Ratio) Ratio {
	return FromParts(smath.Add(uint32(r), uint32(o)))
}

// Sub returns r-o, saturating at zero.
func (r Ratio) Sub(o Ratio) Ratio {
	return Ratio(smath.Sub(uint32(r), uint32(o)))
}

// Mul scales v by the ratio, rounding down. The intermediate product is
// kept in 128 bits so v can span the full uint64 range without overflow.
func (r Ratio) Mul(v uint64) uint64 {
	hi, lo := bits.Mul64(v, uint64(r))
	// hi < Unit always holds since r <= Unit, so Div64 cannot panic
	q, _ := bits.Div64(hi, lo, uint64(Unit))
	return q
}

// String implements the fmt.Stringer interface, for logging purposes.
func (r Ratio) String() string {
	return fmt.Sprintf("%g%%", float64(r)/float64(Unit)*100)
}

// EncodeScale implements scale codec interface.
func (r *Ratio) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeCompact32(e, uint32(*r))
}

// DecodeScale implements scale codec interface.
func (r *Ratio) DecodeScale(d *scale.Decoder) (int, error) {
	parts, total, err := scale.DecodeCompact32(d)
	if err != nil {
		return total, err
	}
	if parts > Unit {
		return total, ErrOutOfRange
	}
	*r = Ratio(parts)
	return total, nil
}
