// Package weights assigns abstract execution cost to ledger transactions.
//
// A Weight is the unit of cost charged to a transaction. Per-call formulas
// ("scales") turn call parameters into a Weight, and block production
// accounts the total against MaxBlockWeight. All weight arithmetic
// saturates, so adversarial parameters clamp instead of wrapping.
package weights

// Weight is an abstract, non-negative cost unit charged to a transaction.
type Weight uint64

const (
	// MaxBlockWeight is the largest total weight a block may carry.
	MaxBlockWeight Weight = 4 * 1024 * 1024
	// IdealBlockWeight is the target block saturation, 25% of MaxBlockWeight.
	IdealBlockWeight Weight = 1024 * 1024
)

// DispatchClass partitions calls for block resource accounting.
type DispatchClass uint8

const (
	// Normal is the default class for user transactions.
	Normal DispatchClass = iota
	// Operational is reserved for chain maintenance calls.
	Operational
)

// String implements the fmt.Stringer interface, for logging purposes.
func (c DispatchClass) String() string {
	switch c {
	case Normal:
		return "normal"
	case Operational:
		return "operational"
	default:
		return "unknown"
	}
}
