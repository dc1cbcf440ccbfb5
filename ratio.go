// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import (
	"errors"
	"math"
	"strconv"
)

// Errors returned or raised by functions in this package.
var (
	ErrZeroDenominator = errors.New("ratio: zero denominator")
	ErrDivisionByZero  = errors.New("ratio: division by zero")
	ErrOverflow        = errors.New("ratio: arithmetic overflow")
)

// Rational is implemented by anything that reports a canonical numerator and
// denominator. Denominator must be positive.
type Rational interface {
	Numerator() int64
	Denominator() int64
}

// A Ratio is a rational number num/den with a non-zero den. See the package
// documentation for the distinction between identity and value.
type Ratio struct {
	num int64
	den NonZero
}

// New returns the Ratio num/den.
//
// New returns ErrZeroDenominator if den is 0 and ErrOverflow if the canonical
// view of num/den cannot be represented, that is if den == math.MinInt64, or if
// den < 0 and num == math.MinInt64.
func New(num, den int64) (Ratio, error) {
	d, err := NewNonZero(den)
	if err != nil {
		return Ratio{}, err
	}
	if den < 0 && (den == math.MinInt64 || num == math.MinInt64) {
		return Ratio{}, ErrOverflow
	}
	return Ratio{num, d}, nil
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Ratio {
	return Must(New(num, den))
}

// Must returns x if err is nil and panics with err otherwise. It is intended
// for wrapping calls to functions returning (Ratio, error).
func Must(x Ratio, err error) Ratio {
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt returns the Ratio n/1.
func FromInt(n int64) Ratio {
	return Ratio{num: n}
}

// Of returns the canonical Ratio for the value reported by r.
func Of(r Rational) (Ratio, error) {
	n, d, err := view(r)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{n, NonZero{d ^ 1}}, nil
}

// Raw returns the numerator and denominator x was created with.
func (x Ratio) Raw() (num, den int64) {
	return x.num, x.den.Get()
}

// Numerator returns the canonical numerator of x: the sign of x is carried by
// the numerator.
func (x Ratio) Numerator() int64 {
	if x.den.Get() < 0 {
		return -x.num
	}
	return x.num
}

// Denominator returns the canonical denominator of x. It is always positive.
func (x Ratio) Denominator() int64 {
	if d := x.den.Get(); d < 0 {
		return -d
	}
	return x.den.Get()
}

// Canonical returns the Ratio Numerator()/Denominator(). x.Canonical() has the
// same value as x and is its own canonical form.
func (x Ratio) Canonical() Ratio {
	if x.den.Get() > 0 {
		return x
	}
	return Ratio{-x.num, NonZero{-x.den.Get() ^ 1}}
}

// IsCanonical reports whether the denominator of x is positive.
func (x Ratio) IsCanonical() bool {
	return x.den.Get() > 0
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x Ratio) Sign() int {
	n := x.Numerator()
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// IsZero reports whether x == 0, whatever its denominator.
func (x Ratio) IsZero() bool {
	return x.num == 0
}

// IsInt reports whether the denominator of x, reduced to lowest terms, is 1.
func (x Ratio) IsInt() bool {
	return x.Numerator()%x.Denominator() == 0
}

// Neg returns -x in canonical form. It fails with ErrOverflow if the canonical
// numerator of x is math.MinInt64.
func (x Ratio) Neg() (Ratio, error) {
	n := x.Numerator()
	if n == math.MinInt64 {
		return Ratio{}, ErrOverflow
	}
	return Ratio{-n, NonZero{x.Denominator() ^ 1}}, nil
}

// Abs returns |x| in canonical form. It fails with ErrOverflow if the
// canonical numerator of x is math.MinInt64.
func (x Ratio) Abs() (Ratio, error) {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x.Canonical(), nil
}

// Inv returns 1/x in canonical form. It fails with ErrDivisionByZero if x is
// zero and with ErrOverflow if the canonical numerator of x is
// math.MinInt64.
func (x Ratio) Inv() (Ratio, error) {
	n, d := x.Numerator(), x.Denominator()
	switch {
	case n == 0:
		return Ratio{}, ErrDivisionByZero
	case n == math.MinInt64:
		return Ratio{}, ErrOverflow
	case n < 0:
		return Ratio{-d, NonZero{-n ^ 1}}, nil
	}
	return Ratio{d, NonZero{n ^ 1}}, nil
}

// Append appends the textual form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Ratio) Append(buf []byte) []byte {
	buf = strconv.AppendInt(buf, x.Numerator(), 10)
	buf = append(buf, " / "...)
	return strconv.AppendInt(buf, x.Denominator(), 10)
}

// String returns the canonical form of x as "num / den".
func (x Ratio) String() string {
	return string(x.Append(make([]byte, 0, 24)))
}

// RawString is like String but uses the identity of x instead of its
// canonical view.
func (x Ratio) RawString() string {
	buf := strconv.AppendInt(make([]byte, 0, 24), x.num, 10)
	buf = append(buf, " / "...)
	return string(strconv.AppendInt(buf, x.den.Get(), 10))
}

// view returns the canonical view of r. It does not trust r to honor the
// Rational contract.
func view(r Rational) (n, d int64, err error) {
	if x, ok := r.(Ratio); ok {
		return x.Numerator(), x.Denominator(), nil
	}
	n, d = r.Numerator(), r.Denominator()
	switch {
	case d == 0:
		return 0, 0, ErrZeroDenominator
	case d > 0:
		return n, d, nil
	case d == math.MinInt64 || n == math.MinInt64:
		return 0, 0, ErrOverflow
	}
	return -n, -d, nil
}
