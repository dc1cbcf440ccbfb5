// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"errors"

	"github.com/db47h/ratio"
)

// ErrInexact is returned by Convert when the converted amount is not an
// integer.
var ErrInexact = errors.New("static: inexact conversion")

// Convert converts the amount v expressed in units of scale From into units of
// scale To. For instance, Convert[Kilo, Milli](3) == 3000000.
//
// Convert returns ErrInexact if the result is not an integer and
// ratio.ErrOverflow if it does not fit in an int64.
func Convert[From, To Rational](v int64) (int64, error) {
	// From/To in lowest terms: v·n/d is an integer iff d divides v.
	f := Value[Reduced[Quotient[From, To]]]()
	n, d := f.Raw()
	if v%d != 0 {
		return 0, ErrInexact
	}
	z, err := ratio.Product(ratio.FromInt(v/d), ratio.FromInt(n))
	if err != nil {
		return 0, err
	}
	return z.Numerator(), nil
}

// A Quantity is an integer amount of units of scale S.
type Quantity[S Rational] int64

// In converts q to scale T. See Convert.
func In[T, S Rational](q Quantity[S]) (Quantity[T], error) {
	v, err := Convert[S, T](int64(q))
	return Quantity[T](v), err
}

// Ratio returns the exact value of q in base units.
func (q Quantity[S]) Ratio() (ratio.Ratio, error) {
	return ratio.Product(ratio.FromInt(int64(q)), Value[S]())
}
