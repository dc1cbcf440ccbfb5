// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import "math"

// GCD returns the greatest common divisor of x and y using the Euclidean
// algorithm. The result is never negative: GCD(0, y) == |y|, GCD(x, 0) == |x|
// and GCD(0, 0) == 0.
//
// The only result that does not fit in an int64 is 2**63, for operands taken
// from {0, math.MinInt64} other than (0, 0). GCD panics with ErrOverflow in
// that case.
func GCD(x, y int64) int64 {
	g := gcd(abs(x), abs(y))
	if g > math.MaxInt64 {
		panic(ErrOverflow)
	}
	return int64(g)
}

func gcd(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	r := a % b
	for r != 0 {
		a = b
		b = r
		r = a % b
	}
	return b
}

// abs returns the magnitude of x. abs(math.MinInt64) == 1<<63.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
