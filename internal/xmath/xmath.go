package xmath

import (
	"cmp"
	"math"
)

func Min[T cmp.Ordered](v T, values ...T) T {
	for _, value := range values {
		if value < v {
			v = value
		}
	}

	return v
}

// AddExact returns a+b and false if the sum overflows int64.
func AddExact(a, b int64) (int64, bool) {
	sum := a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, false
	}

	return sum, true
}

// MulExact returns a*b and false if the product overflows int64.
func MulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}

	return product, true
}

// FloorDiv rounds the quotient toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// FloorMod returns a - FloorDiv(a, b)*b, which has the sign of b.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}

	return m
}
