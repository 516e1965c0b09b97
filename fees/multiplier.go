// Package fees turns transaction weights into fee-relevant costs.
//
// The central type is the Multiplier, a signed fixed point value in
// [-1, +inf) applied to every weight before pricing. It is made of two
// limbs: a bounded fraction counted in ratio parts, and, on the positive
// side only, an unbounded integer carry of whole weight multiples. The
// fraction alone cannot represent values at or above one or below minus
// one, hence the manual carry/borrow bookkeeping in Sum.
package fees

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/weighbridge/go-weighbridge/ratio"
	"github.com/weighbridge/go-weighbridge/smath"
	"github.com/weighbridge/go-weighbridge/weights"
)

// Sign tags the shape of a Multiplier.
type Sign uint8

// Multiplier shapes. Every consumer switches over exactly these two
// values; decoding rejects anything else.
const (
	Positive Sign = iota
	Negative
)

// String implements the fmt.Stringer interface, for logging purposes.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

var errUnknownSign = errors.New("fees: unknown multiplier sign")

// Multiplier is the block-level fee adjustment. The Positive shape stands
// for Carry+Fraction, the Negative shape for -Fraction. The negative
// magnitude cannot exceed one, so a multiplier never discounts more than
// the full weight. Multipliers are immutable values; the zero value is the
// neutral multiplier.
type Multiplier struct {
	Sign     Sign
	Fraction ratio.Ratio
	Carry    uint64 // whole weight multiples, Positive shape only
}

// Neutral returns the identity multiplier, Positive(0, 0).
func Neutral() Multiplier {
	return Multiplier{}
}

// NewPositive returns a multiplier standing for carry+fraction.
func NewPositive(fraction ratio.Ratio, carry uint64) Multiplier {
	return Multiplier{Sign: Positive, Fraction: fraction, Carry: carry}
}

// NewNegative returns a multiplier standing for -fraction.
func NewNegative(fraction ratio.Ratio) Multiplier {
	return Multiplier{Sign: Negative, Fraction: fraction}
}

// Apply scales weight by one plus the multiplier. The positive shape adds
// the fractional bonus plus Carry whole multiples of the weight, both
// saturating; the negative shape discounts at most the full weight,
// clamping at zero.
func (m Multiplier) Apply(weight weights.Weight) weights.Weight {
	frac := weights.Weight(m.Fraction.Mul(uint64(weight)))
	if m.Sign == Negative {
		return smath.Sub(weight, frac)
	}
	return smath.Add(smath.Add(weight, frac), smath.Mul(weight, weights.Weight(m.Carry)))
}

// Sum combines two adjustments, taking the sign into account. A fractional
// sum reaching one wraps and propagates into the carry; a fractional
// underflow borrows from the carry, or flips the sign when there is no
// carry left to borrow from. The combination is commutative.
func (m Multiplier) Sum(o Multiplier) Multiplier {
	switch {
	case m.Sign == Positive && o.Sign == Positive:
		carry := smath.Add(m.Carry, o.Carry)
		parts := uint64(m.Fraction.Parts()) + uint64(o.Fraction.Parts())
		if parts >= uint64(ratio.Unit) {
			// the fractional limb overflowed one whole unit
			return NewPositive(ratio.FromParts(uint32(parts%uint64(ratio.Unit))), smath.Add(carry, 1))
		}
		return NewPositive(ratio.FromParts(uint32(parts)), carry)
	case m.Sign == Negative && o.Sign == Negative:
		// the ratio addition caps at one: never below -100%
		return NewNegative(m.Fraction.Add(o.Fraction))
	case m.Sign == Positive:
		if m.Fraction >= o.Fraction {
			return NewPositive(m.Fraction.Sub(o.Fraction), m.Carry)
		}
		borrowed := o.Fraction.Sub(m.Fraction)
		if m.Carry > 0 {
			return NewPositive(borrowed, m.Carry-1)
		}
		return NewNegative(borrowed)
	default:
		return o.Sum(m)
	}
}

// String implements the fmt.Stringer interface, for logging purposes.
func (m Multiplier) String() string {
	pct := float64(m.Fraction.Parts()) / float64(ratio.Unit) * 100
	if m.Sign == Negative {
		return fmt.Sprintf("-%g%%", pct)
	}
	return fmt.Sprintf("+%g%%", float64(m.Carry)*100+pct)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m Multiplier) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("sign", m.Sign.String())
	enc.AddUint32("fraction_parts", m.Fraction.Parts())
	if m.Sign == Positive {
		enc.AddUint64("carry", m.Carry)
	}
	return nil
}

// EncodeScale implements scale codec interface.
func (m *Multiplier) EncodeScale(enc *scale.Encoder) (int, error) {
	var total int
	{
		// not compact, as scale spec uses "full" uint8 for enums
		n, err := scale.EncodeByte(enc, byte(m.Sign))
		if err != nil {
			return total, err
		}
		total += n
	}
	switch m.Sign {
	case Positive:
		n, err := m.Fraction.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
		n, err = scale.EncodeCompact64(enc, m.Carry)
		if err != nil {
			return total, err
		}
		total += n
	case Negative:
		n, err := m.Fraction.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	default:
		return total, errUnknownSign
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (m *Multiplier) DecodeScale(dec *scale.Decoder) (int, error) {
	var total int
	tag, n, err := scale.DecodeByte(dec)
	if err != nil {
		return total, err
	}
	total += n
	switch Sign(tag) {
	case Positive:
		var fraction ratio.Ratio
		n, err := fraction.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		carry, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		*m = NewPositive(fraction, carry)
	case Negative:
		var fraction ratio.Ratio
		n, err := fraction.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		*m = NewNegative(fraction)
	default:
		return total, errUnknownSign
	}
	return total, nil
}
