package weights

import "github.com/weighbridge/go-weighbridge/smath"

// maxScaleWeight is what the Max scale claims: a call weighed with it
// consumes 3/4 of MaxBlockWeight outright, so it might still be included
// but little else will fit in the same block.
const maxScaleWeight Weight = 3 * 1024 * 1024

// Scale reports the static dispatch metadata shared by every weighing
// formula. Weighing itself is exposed by each variant through its own
// typed Weigh method, since parameter arities differ between variants.
type Scale interface {
	// PaysFee reports whether the caller is charged for the call.
	PaysFee() bool
	// Class returns the dispatch class of the call.
	Class() DispatchClass
}

// normalPaidCall provides the static stubs shared by all current scales:
// every call pays its fee and dispatches in the Normal class.
type normalPaidCall struct{}

func (normalPaidCall) PaysFee() bool        { return true }
func (normalPaidCall) Class() DispatchClass { return Normal }

// Linear weighs a call as the product of its single parameter and Factor.
type Linear struct {
	normalPaidCall
	Factor Weight
}

func (s Linear) Weigh(x Weight) Weight {
	return smath.Mul(x, s.Factor)
}

// Quadratic weighs a call with two parameters as a*x^2 + b*y + c.
type Quadratic struct {
	normalPaidCall
	A, B, C Weight
}

// Weigh computes a*x^2 + b*y + c. Every term saturates on its own, so a
// huge x cannot wrap through the squaring step and corrupt the other terms.
func (s Quadratic) Weigh(x, y Weight) Weight {
	ax2 := smath.Mul(smath.Mul(x, x), s.A)
	by := smath.Mul(y, s.B)
	return smath.Add(smath.Add(ax2, by), s.C)
}

// Conditional weighs a call linearly in val when flag is set, and as the
// constant Factor otherwise. val is deliberately ignored when flag is off.
type Conditional struct {
	normalPaidCall
	Factor Weight
}

func (s Conditional) Weigh(flag bool, val Weight) Weight {
	if flag {
		return smath.Mul(val, s.Factor)
	}
	return s.Factor
}

// Basic weighs a call from its encoded size: Base plus ByteRate per byte.
type Basic struct {
	normalPaidCall
	Base     Weight
	ByteRate Weight
}

func (s Basic) Weigh(encodedLen int) Weight {
	return smath.Add(s.Base, smath.Mul(s.ByteRate, Weight(encodedLen)))
}

// Max claims a large fixed share of the remaining block capacity,
// regardless of call parameters.
type Max struct {
	normalPaidCall
}

func (Max) Weigh() Weight {
	return maxScaleWeight
}

// Free weighs nothing. Free calls are excluded from block accounting.
type Free struct {
	normalPaidCall
}

func (Free) Weigh() Weight {
	return 0
}

// DefaultScale weighs calls that do not declare a scale of their own:
// the weight equals the encoded call size, nothing more.
func DefaultScale() Basic {
	return Basic{Base: 0, ByteRate: 1}
}
