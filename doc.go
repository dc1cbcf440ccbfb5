// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ratio implements exact rational arithmetic on pairs of int64.

A Ratio is an immutable value made of a numerator and a non-zero denominator.
The pair it was built from is its identity: 1/-1, -1/1 and 2/-2 are three
distinct Ratio values that all denote negative one. Go's == operator compares
identities; value equality is reported by Equal, Cmp and Compare.

The zero value for a Ratio is 0/1 and is ready to use:

    var x ratio.Ratio // x == 0/1

Other values are created with New, which fails if the denominator is zero:

    x, err := ratio.New(70, -154)

Every Ratio exposes a canonical view through Numerator and Denominator, where
the denominator is always positive and the sign has been folded into the
numerator. For the value above, x.Numerator() == -70 and x.Denominator() ==
154. Anything that provides such a view implements the Rational interface and
can be used as an operand.

Reduction to lowest terms is explicit:

    r := x.Reduction() // r.GCD == 14, r.Num == -5, r.Den == 11
    y := x.Reduced()   // y == -5/11

Binary operations are free functions of the form

    func Op(x, y Rational) (Ratio, error)

namely Sum, Diff, Product and Quotient. Their results are not reduced. All
intermediate products and sums are checked against the int64 range: instead
of wrapping around, an operation fails with ErrOverflow. Quotient fails with
ErrDivisionByZero if the numerator of its second operand is zero.

Compare evaluates all six order predicates between two operands at once
without reducing them:

    c := ratio.Compare(x, y)
    if c.LesserOrEqual() {
        // ...
    }

Comparisons are exact for every pair of valid operands and never overflow.

Ratio values can be freely copied and shared between goroutines: no function
in this package mutates its operands.
*/
package ratio
