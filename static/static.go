// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package static provides rational constants described by types.
//
// A static rational is a zero-sized type whose Num and Den methods return
// constants:
//
//    type Half struct{}
//
//    func (Half) Num() int64 { return 1 }
//    func (Half) Den() int64 { return 2 }
//
// Such types carry no data and can be used as type parameters of generic
// code, for instance to express the scale of a measurement unit. Generic
// descriptor types combine them:
//
//    type ThreeHalves = static.Sum[Half, static.One]
//    static.Numerator[ThreeHalves]()   // 3
//    static.Cmp[Half, ThreeHalves]{}.Lesser() // true
//
// Descriptors are themselves static rationals and can be nested. Like their
// ratio counterparts, Sum, Diff, Product and Quotient do not reduce their
// result; wrap them in Reduced for lowest terms.
//
// The value of a given type is computed once, on first use, and cached. An
// invalid description (zero denominator, division by zero or overflow) makes
// that first use panic with the corresponding ratio error. R must be a
// concrete type, not an interface.
package static

import (
	"reflect"
	"sync"

	"github.com/db47h/ratio"
)

// Rational is implemented by types describing a rational constant. Num and Den
// return the raw numerator and denominator. Den may be negative but must not
// be zero. Both must return the same values for every value of the type.
type Rational interface {
	Num() int64
	Den() int64
}

// evaluator is implemented by descriptors that compute their value from other
// static rationals.
type evaluator interface {
	eval() ratio.Ratio
}

var cache sync.Map // reflect.Type -> ratio.Ratio

// Value returns the ratio described by R.
func Value[R Rational]() ratio.Ratio {
	t := reflect.TypeOf((*R)(nil)).Elem()
	if v, ok := cache.Load(t); ok {
		return v.(ratio.Ratio)
	}
	var r R
	var x ratio.Ratio
	if e, ok := any(r).(evaluator); ok {
		x = e.eval()
	} else {
		x = ratio.Must(ratio.New(r.Num(), r.Den()))
	}
	cache.Store(t, x)
	return x
}

// Numerator returns the canonical numerator of R.
func Numerator[R Rational]() int64 {
	return Value[R]().Numerator()
}

// Denominator returns the canonical denominator of R. It is always positive.
func Denominator[R Rational]() int64 {
	return Value[R]().Denominator()
}

// Reduction returns the reduction of R to lowest terms.
func Reduction[R Rational]() ratio.Reduction {
	return Value[R]().Reduction()
}

// GCD returns the greatest common divisor of the numerator and denominator of
// R.
func GCD[R Rational]() int64 {
	return Reduction[R]().GCD
}

// IsIrreducible reports whether R is in lowest terms.
func IsIrreducible[R Rational]() bool {
	return Reduction[R]().Irreducible
}

// String returns the textual form of R.
func String[R Rational]() string {
	return Value[R]().String()
}

func num[R Rational]() int64 {
	n, _ := Value[R]().Raw()
	return n
}

func den[R Rational]() int64 {
	_, d := Value[R]().Raw()
	return d
}
