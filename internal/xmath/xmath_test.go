package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(3, 1, 2))
	require.Equal(t, "a", Min("b", "a", "c"))
}

func TestAddExact(t *testing.T) {
	for _, tt := range []struct {
		name string
		a, b int64
		sum  int64
		ok   bool
	}{
		{name: "simple", a: 1, b: 2, sum: 3, ok: true},
		{name: "mixed signs", a: math.MaxInt64, b: math.MinInt64, sum: -1, ok: true},
		{name: "max", a: math.MaxInt64 - 1, b: 1, sum: math.MaxInt64, ok: true},
		{name: "positive overflow", a: math.MaxInt64, b: 1},
		{name: "negative overflow", a: math.MinInt64, b: -1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			sum, ok := AddExact(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.sum, sum)
		})
	}
}

func TestMulExact(t *testing.T) {
	for _, tt := range []struct {
		name    string
		a, b    int64
		product int64
		ok      bool
	}{
		{name: "zero", a: 0, b: math.MinInt64, product: 0, ok: true},
		{name: "simple", a: -3, b: 1_000_000, product: -3_000_000, ok: true},
		{name: "edge", a: math.MaxInt64 / 1_000_000, b: 1_000_000, product: 9_223_372_036_854_000_000, ok: true},
		{name: "overflow", a: math.MaxInt64/1_000_000 + 1, b: 1_000_000},
		{name: "negative overflow", a: math.MinInt64, b: 1_000_000},
		{name: "min by minus one", a: math.MinInt64, b: -1},
		{name: "minus one by min", a: -1, b: math.MinInt64},
	} {
		t.Run(tt.name, func(t *testing.T) {
			product, ok := MulExact(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.product, product)
		})
	}
}

func TestFloorDivMod(t *testing.T) {
	for _, tt := range []struct {
		a, b     int64
		div, mod int64
	}{
		{a: 7, b: 2, div: 3, mod: 1},
		{a: -7, b: 2, div: -4, mod: 1},
		{a: -8, b: 2, div: -4, mod: 0},
		{a: -1, b: 1_000_000, div: -1, mod: 999_999},
		{a: math.MinInt64, b: 1_000_000, div: -9_223_372_036_855, mod: 224_192},
	} {
		require.Equal(t, tt.div, FloorDiv(tt.a, tt.b))
		require.Equal(t, tt.mod, FloorMod(tt.a, tt.b))
	}
}
