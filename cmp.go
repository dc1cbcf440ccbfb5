// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import "math/bits"

// A Comparison holds the outcome of comparing two rationals x and y.
type Comparison struct {
	eq bool
	lt bool
}

// Equal reports whether x == y.
func (c Comparison) Equal() bool { return c.eq }

// NotEqual reports whether x != y.
func (c Comparison) NotEqual() bool { return !c.eq }

// Lesser reports whether x < y.
func (c Comparison) Lesser() bool { return c.lt }

// Greater reports whether x > y.
func (c Comparison) Greater() bool { return !c.eq && !c.lt }

// LesserOrEqual reports whether x <= y.
func (c Comparison) LesserOrEqual() bool { return c.lt || c.eq }

// GreaterOrEqual reports whether x >= y.
func (c Comparison) GreaterOrEqual() bool { return !c.lt }

// Sign returns -1 if x < y, 0 if x == y and +1 if x > y.
func (c Comparison) Sign() int {
	switch {
	case c.lt:
		return -1
	case c.eq:
		return 0
	}
	return 1
}

// Compare compares the values of x and y by cross-multiplication. Neither
// operand is reduced nor canonicalized: Ratio operands are compared through
// their raw numerator and denominator. Compare panics with ErrZeroDenominator
// if either operand reports a zero denominator.
func Compare(x, y Rational) Comparison {
	n1, d1 := pair(x)
	n2, d2 := pair(y)
	if d1 == 0 || d2 == 0 {
		panic(ErrZeroDenominator)
	}
	return compare(n1, d1, n2, d2)
}

func pair(r Rational) (n, d int64) {
	if x, ok := r.(Ratio); ok {
		return x.Raw()
	}
	return r.Numerator(), r.Denominator()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Ratio) Cmp(y Rational) int {
	return Compare(x, y).Sign()
}

// Equal reports whether x and y denote the same value.
func (x Ratio) Equal(y Rational) bool {
	return Compare(x, y).Equal()
}

// compare compares n1/d1 with n2/d2. Denominators may have any sign but must
// not be zero. Products are computed on 128 bits and cannot overflow.
func compare(n1, d1, n2, d2 int64) Comparison {
	// n1·d2 == n2·d1 holds whatever the signs of the denominators.
	eq := mul128(n1, d2) == mul128(n2, d1)
	// sign(d1)·n1·|d2| < sign(d2)·n2·|d1|
	l := umul128(abs(n1), abs(d2))
	if (n1 < 0) != (d1 < 0) {
		l = l.neg()
	}
	r := umul128(abs(n2), abs(d1))
	if (n2 < 0) != (d2 < 0) {
		r = r.neg()
	}
	return Comparison{eq: eq, lt: l.cmp(r) < 0}
}

// int128 is a two's complement 128 bit integer.
type int128 struct {
	hi int64
	lo uint64
}

func umul128(x, y uint64) int128 {
	hi, lo := bits.Mul64(x, y)
	return int128{int64(hi), lo}
}

func mul128(x, y int64) int128 {
	z := umul128(abs(x), abs(y))
	if (x < 0) != (y < 0) {
		return z.neg()
	}
	return z
}

func (x int128) neg() int128 {
	hi := ^x.hi
	if x.lo == 0 {
		hi++
	}
	return int128{hi, -x.lo}
}

func (x int128) cmp(y int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}
