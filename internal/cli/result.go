// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/ratio"
)

// Result is the payload of the reduce and arithmetic commands. X and Y are the
// operands as built, Raw is the result's identity and Num/Den its canonical
// view.
type Result struct {
	Op          string `json:"op" yaml:"op"`
	X           string `json:"x" yaml:"x"`
	Y           string `json:"y,omitempty" yaml:"y,omitempty"`
	Raw         string `json:"raw" yaml:"raw"`
	Num         int64  `json:"num" yaml:"num"`
	Den         int64  `json:"den" yaml:"den"`
	GCD         int64  `json:"gcd,omitempty" yaml:"gcd,omitempty"`
	Irreducible bool   `json:"irreducible" yaml:"irreducible"`
}

func newResult(op string, z ratio.Ratio, operands ...ratio.Ratio) Result {
	r := Result{
		Op:          op,
		Raw:         z.RawString(),
		Num:         z.Numerator(),
		Den:         z.Denominator(),
		Irreducible: z.IsIrreducible(),
	}
	if len(operands) > 0 {
		r.X = operands[0].RawString()
	}
	if len(operands) > 1 {
		r.Y = operands[1].RawString()
	}
	return r
}

func (r Result) String() string {
	return fmt.Sprintf("%d / %d", r.Num, r.Den)
}

// CmpResult is the payload of the cmp command.
type CmpResult struct {
	Op       string `json:"op" yaml:"op"`
	X        string `json:"x" yaml:"x"`
	Y        string `json:"y" yaml:"y"`
	Sign     int    `json:"sign" yaml:"sign"`
	Relation string `json:"relation" yaml:"relation"`
}

func newCmpResult(x, y ratio.Ratio, c ratio.Comparison) CmpResult {
	rel := "="
	switch {
	case c.Lesser():
		rel = "<"
	case c.Greater():
		rel = ">"
	}
	return CmpResult{
		Op:       "cmp",
		X:        x.RawString(),
		Y:        y.RawString(),
		Sign:     c.Sign(),
		Relation: rel,
	}
}

func (r CmpResult) String() string {
	return r.X + " " + r.Relation + " " + r.Y
}
