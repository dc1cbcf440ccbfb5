// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import "github.com/db47h/ratio"

// Sum describes X + Y, unreduced.
type Sum[X, Y Rational] struct{}

func (Sum[X, Y]) eval() ratio.Ratio { return ratio.Must(ratio.Sum(Value[X](), Value[Y]())) }
func (Sum[X, Y]) Num() int64        { return num[Sum[X, Y]]() }
func (Sum[X, Y]) Den() int64        { return den[Sum[X, Y]]() }

// Diff describes X - Y, unreduced.
type Diff[X, Y Rational] struct{}

func (Diff[X, Y]) eval() ratio.Ratio { return ratio.Must(ratio.Diff(Value[X](), Value[Y]())) }
func (Diff[X, Y]) Num() int64        { return num[Diff[X, Y]]() }
func (Diff[X, Y]) Den() int64        { return den[Diff[X, Y]]() }

// Product describes X × Y, unreduced.
type Product[X, Y Rational] struct{}

func (Product[X, Y]) eval() ratio.Ratio { return ratio.Must(ratio.Product(Value[X](), Value[Y]())) }
func (Product[X, Y]) Num() int64        { return num[Product[X, Y]]() }
func (Product[X, Y]) Den() int64        { return den[Product[X, Y]]() }

// Quotient describes X / Y, unreduced. Its raw denominator carries the sign
// of Y. Evaluating a Quotient whose divisor is zero panics with
// ratio.ErrDivisionByZero.
type Quotient[X, Y Rational] struct{}

func (Quotient[X, Y]) eval() ratio.Ratio { return ratio.Must(ratio.Quotient(Value[X](), Value[Y]())) }
func (Quotient[X, Y]) Num() int64        { return num[Quotient[X, Y]]() }
func (Quotient[X, Y]) Den() int64        { return den[Quotient[X, Y]]() }

// Reduced describes X in lowest terms and canonical form.
type Reduced[X Rational] struct{}

func (Reduced[X]) eval() ratio.Ratio { return Value[X]().Reduced() }
func (Reduced[X]) Num() int64        { return num[Reduced[X]]() }
func (Reduced[X]) Den() int64        { return den[Reduced[X]]() }

// Canonical describes X with a positive denominator.
type Canonical[X Rational] struct{}

func (Canonical[X]) eval() ratio.Ratio { return Value[X]().Canonical() }
func (Canonical[X]) Num() int64        { return num[Canonical[X]]() }
func (Canonical[X]) Den() int64        { return den[Canonical[X]]() }

// Cmp compares X with Y. Neither is reduced.
type Cmp[X, Y Rational] struct{}

func (Cmp[X, Y]) cmp() ratio.Comparison { return ratio.Compare(Value[X](), Value[Y]()) }

// Equal reports whether X == Y.
func (c Cmp[X, Y]) Equal() bool { return c.cmp().Equal() }

// NotEqual reports whether X != Y.
func (c Cmp[X, Y]) NotEqual() bool { return c.cmp().NotEqual() }

// Lesser reports whether X < Y.
func (c Cmp[X, Y]) Lesser() bool { return c.cmp().Lesser() }

// Greater reports whether X > Y.
func (c Cmp[X, Y]) Greater() bool { return c.cmp().Greater() }

// LesserOrEqual reports whether X <= Y.
func (c Cmp[X, Y]) LesserOrEqual() bool { return c.cmp().LesserOrEqual() }

// GreaterOrEqual reports whether X >= Y.
func (c Cmp[X, Y]) GreaterOrEqual() bool { return c.cmp().GreaterOrEqual() }
