// Package smath provides saturating arithmetic over unsigned integers.
//
// Overflow clamps to the maximum representable value and underflow clamps
// to zero, so callers never handle arithmetic errors.
package smath

import "golang.org/x/exp/constraints"

// Add returns a+b, clamped to the maximum value of T on overflow.
func Add[T constraints.Unsigned](a, b T) T {
	c := a + b
	if c < a {
		return ^T(0)
	}
	return c
}

// Sub returns a-b, clamped to zero on underflow.
func Sub[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// Mul returns a*b, clamped to the maximum value of T on overflow.
func Mul[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/a != b {
		return ^T(0)
	}
	return c
}
