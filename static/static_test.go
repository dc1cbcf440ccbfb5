// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/ratio"
)

type (
	zero       struct{} // 0/1
	negZero    struct{} // 0/-1
	one        struct{} // 1/1
	negNegOne  struct{} // -1/-1
	negOne     struct{} // 1/-1
	minusOne   struct{} // -1/1
	half       struct{} // 1/2
	negHalves  struct{} // -1/-2
	twoQuarter struct{} // 2/4
	twoThirds  struct{} // 2/3
	third      struct{} // 1/3
	fiveTenths struct{} // 5/10
	r12_18     struct{} // -12/18
	r70_154    struct{} // 70/-154
	r99_9999   struct{} // -99/-9999
	badDen     struct{} // 1/0
	maxInt     struct{} // MaxInt64/1
)

func (zero) Num() int64       { return 0 }
func (zero) Den() int64       { return 1 }
func (negZero) Num() int64    { return 0 }
func (negZero) Den() int64    { return -1 }
func (one) Num() int64        { return 1 }
func (one) Den() int64        { return 1 }
func (negNegOne) Num() int64  { return -1 }
func (negNegOne) Den() int64  { return -1 }
func (negOne) Num() int64     { return 1 }
func (negOne) Den() int64     { return -1 }
func (minusOne) Num() int64   { return -1 }
func (minusOne) Den() int64   { return 1 }
func (half) Num() int64       { return 1 }
func (half) Den() int64       { return 2 }
func (negHalves) Num() int64  { return -1 }
func (negHalves) Den() int64  { return -2 }
func (twoQuarter) Num() int64 { return 2 }
func (twoQuarter) Den() int64 { return 4 }
func (twoThirds) Num() int64  { return 2 }
func (twoThirds) Den() int64  { return 3 }
func (third) Num() int64      { return 1 }
func (third) Den() int64      { return 3 }
func (fiveTenths) Num() int64 { return 5 }
func (fiveTenths) Den() int64 { return 10 }
func (r12_18) Num() int64     { return -12 }
func (r12_18) Den() int64     { return 18 }
func (r70_154) Num() int64    { return 70 }
func (r70_154) Den() int64    { return -154 }
func (r99_9999) Num() int64   { return -99 }
func (r99_9999) Den() int64   { return -9999 }
func (badDen) Num() int64     { return 1 }
func (badDen) Den() int64     { return 0 }
func (maxInt) Num() int64     { return math.MaxInt64 }
func (maxInt) Den() int64     { return 1 }

func TestNegativeLessThanZero(t *testing.T) {
	assert.True(t, Cmp[negOne, zero]{}.Lesser())
	assert.True(t, Cmp[minusOne, zero]{}.Lesser())
	assert.True(t, Cmp[negOne, minusOne]{}.Equal())
}

func TestNegativeLessThanPositive(t *testing.T) {
	assert.True(t, Cmp[negOne, one]{}.Lesser())
	assert.True(t, Cmp[negOne, negNegOne]{}.Lesser())
	assert.True(t, Cmp[minusOne, one]{}.Lesser())
	assert.True(t, Cmp[minusOne, negNegOne]{}.Lesser())
}

func TestPositiveGreaterThanZero(t *testing.T) {
	assert.True(t, Cmp[one, negZero]{}.Greater())
	assert.True(t, Cmp[negNegOne, negZero]{}.Greater())
	assert.True(t, Cmp[one, negNegOne]{}.Equal())
	c := Cmp[one, negZero]{}
	assert.False(t, c.Equal())
	assert.True(t, c.NotEqual())
	assert.True(t, c.GreaterOrEqual())
	assert.False(t, c.LesserOrEqual())
}

func TestUnreducedCrossSignEqual(t *testing.T) {
	c := Cmp[negHalves, twoQuarter]{}
	assert.True(t, c.Equal())
	assert.True(t, c.LesserOrEqual())
	assert.True(t, c.GreaterOrEqual())
	assert.False(t, c.Lesser())
	assert.False(t, c.Greater())
}

func TestArithmetic(t *testing.T) {
	type sum = Sum[half, twoThirds]
	assert.Equal(t, int64(7), Numerator[sum]())
	assert.Equal(t, int64(6), Denominator[sum]())

	type diff = Diff[half, third]
	assert.Equal(t, int64(1), Numerator[diff]())
	assert.Equal(t, int64(6), Denominator[diff]())

	type div = Quotient[one, half]
	assert.Equal(t, int64(2), Numerator[div]())
	assert.Equal(t, int64(1), Denominator[div]())

	type prod = Product[half, twoThirds]
	assert.Equal(t, int64(2), prod{}.Num())
	assert.Equal(t, int64(6), prod{}.Den())
	assert.Equal(t, "2 / 6", String[prod]())

	// quotient keeps the divisor's sign in its raw denominator
	type negDiv = Quotient[half, negOne]
	assert.Equal(t, int64(1), negDiv{}.Num())
	assert.Equal(t, int64(-2), negDiv{}.Den())
	assert.Equal(t, int64(-1), Numerator[negDiv]())
	assert.Equal(t, int64(2), Denominator[negDiv]())
	assert.Equal(t, int64(-1), Canonical[negDiv]{}.Num())
	assert.Equal(t, int64(2), Canonical[negDiv]{}.Den())
}

func TestNested(t *testing.T) {
	// (1/2 + 2/3) × 1/3 - 1/2 = -4/36
	type expr = Diff[Product[Sum[half, twoThirds], third], half]
	assert.Equal(t, int64(-4), Numerator[expr]())
	assert.Equal(t, int64(36), Denominator[expr]())
	assert.False(t, IsIrreducible[expr]())
	assert.Equal(t, int64(-1), Numerator[Reduced[expr]]())
	assert.Equal(t, int64(9), Denominator[Reduced[expr]]())
	assert.True(t, Cmp[expr, zero]{}.Lesser())
	// -1/9 + 1/3 == 2/3 × 1/3
	assert.True(t, Cmp[Sum[Reduced[expr], third], Product[twoThirds, third]]{}.Equal())
}

func TestReduction(t *testing.T) {
	td := []struct {
		name        string
		value       func() ratio.Ratio
		reduced     func() ratio.Ratio
		irreducible bool
		n, d        int64
	}{
		{"5/10", Value[fiveTenths], Value[Reduced[fiveTenths]], false, 1, 2},
		{"-12/18", Value[r12_18], Value[Reduced[r12_18]], false, -2, 3},
		{"70/-154", Value[r70_154], Value[Reduced[r70_154]], false, -5, 11},
		{"-99/-9999", Value[r99_9999], Value[Reduced[r99_9999]], false, 1, 101},
		{"0/-1", Value[negZero], Value[Reduced[negZero]], true, 0, 1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			x, r := d.value(), d.reduced()
			assert.Equal(t, d.irreducible, x.IsIrreducible())
			assert.True(t, r.IsIrreducible())
			n, dd := r.Raw()
			assert.Equal(t, d.n, n)
			assert.Equal(t, d.d, dd)
			assert.True(t, ratio.Compare(x, r).Equal())
		})
	}
	assert.Equal(t, int64(14), GCD[r70_154]())
	assert.Equal(t, ratio.Reduction{GCD: 99, Num: 1, Den: 101}, Reduction[r99_9999]())
	assert.False(t, IsIrreducible[r99_9999]())
	assert.True(t, IsIrreducible[Reduced[r99_9999]]())
}

func TestValue_panics(t *testing.T) {
	assert.PanicsWithValue(t, ratio.ErrZeroDenominator, func() { Value[badDen]() })
	assert.PanicsWithValue(t, ratio.ErrDivisionByZero, func() { Value[Quotient[one, zero]]() })
	assert.PanicsWithValue(t, ratio.ErrDivisionByZero, func() { Quotient[half, negZero]{}.Num() })
	assert.PanicsWithValue(t, ratio.ErrOverflow, func() { Numerator[Sum[maxInt, one]]() })
	assert.PanicsWithValue(t, ratio.ErrZeroDenominator, func() { Cmp[badDen, one]{}.Equal() })
	// failures are not cached
	assert.PanicsWithValue(t, ratio.ErrZeroDenominator, func() { Value[badDen]() })
}

func TestValue_cached(t *testing.T) {
	type expr = Sum[Product[half, third], Diff[twoThirds, half]]
	a := Value[expr]()
	v, ok := cache.Load(reflect.TypeOf((*expr)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, a, v)
	assert.Equal(t, a, Value[expr]())
}
