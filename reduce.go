// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

// A Reduction holds the result of reducing a Ratio to lowest terms.
type Reduction struct {
	GCD         int64 // gcd of the canonical numerator and denominator
	Num         int64 // reduced numerator
	Den         int64 // reduced denominator, always positive
	Irreducible bool  // true if GCD == 1
}

// Reduction divides the canonical numerator and denominator of x by their
// greatest common divisor. Any zero reduces to 0/1.
func (x Ratio) Reduction() Reduction {
	n, d := x.Numerator(), x.Denominator()
	// 0 < d <= math.MaxInt64, so g <= d cannot overflow.
	g := GCD(n, d)
	return Reduction{
		GCD:         g,
		Num:         n / g,
		Den:         d / g,
		Irreducible: g == 1,
	}
}

// Reduced returns x reduced to lowest terms, in canonical form.
func (x Ratio) Reduced() Ratio {
	r := x.Reduction()
	return Ratio{r.Num, NonZero{r.Den ^ 1}}
}

// IsIrreducible reports whether the canonical numerator and denominator of x
// are coprime.
func (x Ratio) IsIrreducible() bool {
	return GCD(x.Numerator(), x.Denominator()) == 1
}

// Reduce returns the value reported by r, reduced to lowest terms.
func Reduce(r Rational) (Ratio, error) {
	x, err := Of(r)
	if err != nil {
		return Ratio{}, err
	}
	return x.Reduced(), nil
}
