// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import "strconv"

// NonZero is an int64 that cannot be zero.
//
// The value is stored with its lowest bit flipped so that the zero value of
// NonZero is 1 and no NonZero can ever hold 0.
type NonZero struct {
	v int64
}

// NewNonZero returns v as a NonZero. It returns ErrZeroDenominator if v is 0.
func NewNonZero(v int64) (NonZero, error) {
	if v == 0 {
		return NonZero{}, ErrZeroDenominator
	}
	return NonZero{v ^ 1}, nil
}

// Get returns the value of n.
func (n NonZero) Get() int64 {
	return n.v ^ 1
}

func (n NonZero) String() string {
	return strconv.FormatInt(n.Get(), 10)
}
