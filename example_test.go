// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio_test

import (
	"errors"
	"fmt"

	"github.com/db47h/ratio"
)

func Example() {
	half := ratio.MustNew(1, 2)
	third := ratio.MustNew(1, 3)

	sum := ratio.Must(ratio.Sum(half, third))
	diff := ratio.Must(ratio.Diff(half, third))
	fmt.Println(sum, "|", diff)

	// results are not reduced unless asked for
	p := ratio.Must(ratio.Product(ratio.MustNew(2, 4), ratio.MustNew(3, 9)))
	fmt.Println(p, "->", p.Reduced())

	_, err := ratio.Quotient(half, ratio.MustNew(0, 7))
	fmt.Println(errors.Is(err, ratio.ErrDivisionByZero))
	// Output:
	// 5 / 6 | 1 / 6
	// 6 / 36 -> 1 / 6
	// true
}

func ExampleRatio_Reduction() {
	x := ratio.MustNew(70, -154)
	r := x.Reduction()
	fmt.Println(x.RawString(), "is", x)
	fmt.Println(r.GCD, r.Num, r.Den, r.Irreducible)
	fmt.Println(x.Reduced())
	// Output:
	// 70 / -154 is -70 / 154
	// 14 -5 11 false
	// -5 / 11
}

func ExampleCompare() {
	x := ratio.MustNew(-1, -2)
	y := ratio.MustNew(2, 4)
	c := ratio.Compare(x, y)
	fmt.Println(x == y, c.Equal(), c.Lesser(), c.GreaterOrEqual())
	// Output:
	// false true false true
}
