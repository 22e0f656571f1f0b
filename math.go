package aoc

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when an integer result does not fit its type.
var ErrOverflow = errors.New("integer overflow")

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// CheckedAdd returns a+b and whether the sum fits in T.
func CheckedAdd[T constraints.Signed](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

// CheckedMul returns a*b and whether the product fits in T.
func CheckedMul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || c/a != b {
		return c, false
	}
	return c, true
}
