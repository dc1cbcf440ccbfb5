// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides functions over rationals that build on the basic
// operations of package ratio.
package math

import (
	"github.com/db47h/ratio"
)

// constants
var (
	one = ratio.FromInt(1)
)

// Pow returns x**n in canonical form. Negative exponents invert x first and
// fail with ratio.ErrDivisionByZero if x is zero. Pow(x, 0) is 1 for any x,
// including 0. The result is not reduced unless x is. Pow returns
// ratio.ErrOverflow if the result does not fit.
func Pow(x ratio.Ratio, n int) (ratio.Ratio, error) {
	var err error
	if n < 0 && -n < 0 {
		// n is the minimum int: |x|**-n only fits for x in {-1, 1}.
		if x.IsZero() {
			return ratio.Ratio{}, ratio.ErrDivisionByZero
		}
		if p, q := x.Numerator(), x.Denominator(); p == q || p == -q {
			return one, nil
		}
		return ratio.Ratio{}, ratio.ErrOverflow
	}
	if n < 0 {
		if x, err = x.Inv(); err != nil {
			return ratio.Ratio{}, err
		}
		n = -n
	}
	if n == 0 {
		return one, nil
	}
	z := x.Canonical()
	y := one
	for n > 1 {
		if n%2 != 0 {
			if y, err = ratio.Product(y, z); err != nil {
				return ratio.Ratio{}, err
			}
		}
		if z, err = ratio.Product(z, z); err != nil {
			return ratio.Ratio{}, err
		}
		n /= 2
	}
	if y == one {
		return z, nil
	}
	return ratio.Product(z, y)
}

// Floor returns the greatest integer less than or equal to x.
func Floor(x ratio.Ratio) int64 {
	n, d := x.Numerator(), x.Denominator()
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// Ceil returns the least integer greater than or equal to x.
func Ceil(x ratio.Ratio) int64 {
	n, d := x.Numerator(), x.Denominator()
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

// Min returns the smaller of x and y, or x if they are equal.
func Min(x, y ratio.Ratio) ratio.Ratio {
	if ratio.Compare(y, x).Lesser() {
		return y
	}
	return x
}

// Max returns the larger of x and y, or x if they are equal.
func Max(x, y ratio.Ratio) ratio.Ratio {
	if ratio.Compare(y, x).Greater() {
		return y
	}
	return x
}

// Mediant returns (n1+n2)/(d1+d2) computed on the canonical views of x and y.
// The mediant lies between x and y. It is the building block of Stern-Brocot
// and Farey sequences.
func Mediant(x, y ratio.Ratio) (ratio.Ratio, error) {
	n, err := ratio.Sum(ratio.FromInt(x.Numerator()), ratio.FromInt(y.Numerator()))
	if err != nil {
		return ratio.Ratio{}, err
	}
	d, err := ratio.Sum(ratio.FromInt(x.Denominator()), ratio.FromInt(y.Denominator()))
	if err != nil {
		return ratio.Ratio{}, err
	}
	return ratio.New(n.Numerator(), d.Numerator())
}
