// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements checked fraction arithmetic.

package ratio

import (
	"math"
	"math/bits"
)

// Sum returns x + y as (n1·d2 + d1·n2) / (d1·d2). The result is not reduced.
func Sum(x, y Rational) (Ratio, error) {
	n1, d1, n2, d2, err := operands(x, y)
	if err != nil {
		return Ratio{}, err
	}
	a, err := mul64(n1, d2)
	if err != nil {
		return Ratio{}, err
	}
	b, err := mul64(d1, n2)
	if err != nil {
		return Ratio{}, err
	}
	n, err := add64(a, b)
	if err != nil {
		return Ratio{}, err
	}
	d, err := mul64(d1, d2)
	if err != nil {
		return Ratio{}, err
	}
	return New(n, d)
}

// Diff returns x - y as (n1·d2 - d1·n2) / (d1·d2). The result is not reduced.
func Diff(x, y Rational) (Ratio, error) {
	n1, d1, n2, d2, err := operands(x, y)
	if err != nil {
		return Ratio{}, err
	}
	a, err := mul64(n1, d2)
	if err != nil {
		return Ratio{}, err
	}
	b, err := mul64(d1, n2)
	if err != nil {
		return Ratio{}, err
	}
	n, err := sub64(a, b)
	if err != nil {
		return Ratio{}, err
	}
	d, err := mul64(d1, d2)
	if err != nil {
		return Ratio{}, err
	}
	return New(n, d)
}

// Product returns x × y as (n1·n2) / (d1·d2). The result is not reduced.
func Product(x, y Rational) (Ratio, error) {
	n1, d1, n2, d2, err := operands(x, y)
	if err != nil {
		return Ratio{}, err
	}
	n, err := mul64(n1, n2)
	if err != nil {
		return Ratio{}, err
	}
	d, err := mul64(d1, d2)
	if err != nil {
		return Ratio{}, err
	}
	return New(n, d)
}

// Quotient returns x / y as (n1·d2) / (d1·n2). It fails with
// ErrDivisionByZero if the numerator of y is zero.
//
// The result is not reduced and its denominator carries the sign of y: call
// Canonical on the result to move it to the numerator. Since the result must
// have a canonical form, Quotient fails with ErrOverflow when d1·n2 is
// math.MinInt64, although the product itself fits in an int64.
func Quotient(x, y Rational) (Ratio, error) {
	n1, d1, n2, d2, err := operands(x, y)
	if err != nil {
		return Ratio{}, err
	}
	if n2 == 0 {
		return Ratio{}, ErrDivisionByZero
	}
	n, err := mul64(n1, d2)
	if err != nil {
		return Ratio{}, err
	}
	d, err := mul64(d1, n2)
	if err != nil {
		return Ratio{}, err
	}
	return New(n, d)
}

// Add is shorthand for Sum(x, y).
func (x Ratio) Add(y Rational) (Ratio, error) { return Sum(x, y) }

// Sub is shorthand for Diff(x, y).
func (x Ratio) Sub(y Rational) (Ratio, error) { return Diff(x, y) }

// Mul is shorthand for Product(x, y).
func (x Ratio) Mul(y Rational) (Ratio, error) { return Product(x, y) }

// Quo is shorthand for Quotient(x, y).
func (x Ratio) Quo(y Rational) (Ratio, error) { return Quotient(x, y) }

func operands(x, y Rational) (n1, d1, n2, d2 int64, err error) {
	if n1, d1, err = view(x); err != nil {
		return
	}
	n2, d2, err = view(y)
	return
}

// mul64 returns x·y or ErrOverflow.
func mul64(x, y int64) (int64, error) {
	hi, lo := bits.Mul64(abs(x), abs(y))
	neg := (x < 0) != (y < 0)
	if hi != 0 || (lo > math.MaxInt64 && !(neg && lo == 1<<63)) {
		return 0, ErrOverflow
	}
	if neg {
		return -int64(lo), nil
	}
	return int64(lo), nil
}

// add64 returns x+y or ErrOverflow.
func add64(x, y int64) (int64, error) {
	z := x + y
	if (x >= 0) == (y >= 0) && (z >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return z, nil
}

// sub64 returns x-y or ErrOverflow.
func sub64(x, y int64) (int64, error) {
	z := x - y
	if (x >= 0) != (y >= 0) && (z >= 0) != (x >= 0) {
		return 0, ErrOverflow
	}
	return z, nil
}
