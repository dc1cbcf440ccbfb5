// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides chained evaluation of rational expressions with
// deferred error checking.
//
// All operators of the form
//
//    func (c *Context) BinaryOp(x, y ratio.Rational) ratio.Ratio
//
// return the result of ratio.BinaryOp(x, y), reduced to lowest terms if c is
// in reducing mode.
//
// A Context catches errors: if an operation fails, it returns the zero Ratio
// and further operations with the context will be no-ops (they simply return
// the zero Ratio) until (*Context).Err is called to check for errors. This
// allows writing long expressions and checking for failure once:
//
//    c := context.New().SetReduce(true)
//    v := c.Sum(c.Product(a, b), c.Quotient(d, e))
//    if err := c.Err(); err != nil {
//        // ...
//    }
//
// A Context is not safe for concurrent use.
package context

import (
	"github.com/db47h/ratio"
)

// A Context evaluates rational operations and records the first error
// encountered.
type Context struct {
	reduce bool
	err    error
}

// New creates a new context in non-reducing mode.
func New() *Context {
	return new(Context)
}

// Reduce reports whether c reduces results to lowest terms.
func (c *Context) Reduce() bool {
	return c.reduce
}

// SetReduce sets c's reducing mode and returns c.
//
// Results of chained operations grow quickly when left unreduced. Reducing
// every intermediate result delays overflows at the cost of a GCD computation
// per operation.
func (c *Context) SetReduce(reduce bool) *Context {
	c.reduce = reduce
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// New returns the Ratio num/den.
func (c *Context) New(num, den int64) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	return c.apply(ratio.New(num, den))
}

// Reduced returns x reduced to lowest terms, regardless of c's mode.
func (c *Context) Reduced(x ratio.Rational) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	z, err := ratio.Reduce(x)
	if err != nil {
		c.err = err
		return ratio.Ratio{}
	}
	return z
}

// apply records err or applies c's reducing mode to z.
func (c *Context) apply(z ratio.Ratio, err error) ratio.Ratio {
	if err != nil {
		c.err = err
		return ratio.Ratio{}
	}
	if c.reduce {
		return z.Reduced()
	}
	return z
}

// Sum returns x + y.
func (c *Context) Sum(x, y ratio.Rational) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	return c.apply(ratio.Sum(x, y))
}

// Diff returns x - y.
func (c *Context) Diff(x, y ratio.Rational) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	return c.apply(ratio.Diff(x, y))
}

// Product returns x × y.
func (c *Context) Product(x, y ratio.Rational) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	return c.apply(ratio.Product(x, y))
}

// Quotient returns x / y. The error state of c is set to
// ratio.ErrDivisionByZero if the numerator of y is zero.
func (c *Context) Quotient(x, y ratio.Rational) ratio.Ratio {
	if c.err != nil {
		return ratio.Ratio{}
	}
	return c.apply(ratio.Quotient(x, y))
}

// Compare returns ratio.Compare(x, y). A panic caused by an operand with a
// zero denominator is caught and recorded as an error.
func (c *Context) Compare(x, y ratio.Rational) (r ratio.Comparison) {
	if c.err != nil {
		return ratio.Comparison{}
	}
	defer func() {
		if err := recover(); err != nil {
			e, ok := err.(error)
			if !ok || e != ratio.ErrZeroDenominator {
				panic(err)
			}
			c.err = e
			r = ratio.Comparison{}
		}
	}()
	return ratio.Compare(x, y)
}
