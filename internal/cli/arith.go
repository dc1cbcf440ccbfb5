// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/ratio"
	"github.com/db47h/ratio/context"
)

type arithOp struct {
	name  string
	short string
	eval  func(c *context.Context, x, y ratio.Rational) ratio.Ratio
}

var arithOps = []arithOp{
	{"sum", "Add two rationals", (*context.Context).Sum},
	{"diff", "Subtract two rationals", (*context.Context).Diff},
	{"product", "Multiply two rationals", (*context.Context).Product},
	{"quotient", "Divide two rationals", (*context.Context).Quotient},
}

// newArithCommand creates the command for the binary operation op.
func newArithCommand(rootOpts *RootOptions, op arithOp) *cobra.Command {
	var reduce bool

	cmd := &cobra.Command{
		Use:   op.name + " <num1> <den1> <num2> <den2>",
		Short: op.short,
		Long: op.short + `.

Results are not reduced unless --reduce is set, in which case operands and
result are reduced to lowest terms.`,
		Args: intArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(rootOpts, cmd, op, reduce, parseInts(args))
		},
	}
	cmd.Flags().BoolVarP(&reduce, "reduce", "r", false, "reduce operands and result to lowest terms")

	return cmd
}

func runArith(opts *RootOptions, cmd *cobra.Command, op arithOp, reduce bool, v []int64) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	c := context.New().SetReduce(reduce)
	x, y := c.New(v[0], v[1]), c.New(v[2], v[3])
	z := op.eval(c, x, y)
	if err := c.Err(); err != nil {
		opts.log.WithError(err).WithField("op", op.name).Debug("evaluation failed")
		return formatter.Fail(err)
	}
	opts.log.WithFields(logrus.Fields{
		"op":     op.name,
		"x":      x.RawString(),
		"y":      y.RawString(),
		"z":      z.RawString(),
		"reduce": reduce,
	}).Debug("evaluate")

	return formatter.Success(newResult(op.name, z, x, y))
}
