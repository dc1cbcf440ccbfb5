// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/ratio/context"
)

// NewCmpCommand creates the cmp command.
func NewCmpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <num1> <den1> <num2> <den2>",
		Short: "Compare two rationals",
		Long: `Compare num1/den1 with num2/den2 by value. Unreduced operands and
operands with a negative denominator compare exactly; the comparison itself
never overflows.`,
		Args: intArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmp(rootOpts, cmd, parseInts(args))
		},
	}
}

func runCmp(opts *RootOptions, cmd *cobra.Command, v []int64) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	c := context.New()
	x, y := c.New(v[0], v[1]), c.New(v[2], v[3])
	r := c.Compare(x, y)
	if err := c.Err(); err != nil {
		return formatter.Fail(err)
	}
	opts.log.WithFields(logrus.Fields{
		"x":    x.RawString(),
		"y":    y.RawString(),
		"sign": r.Sign(),
	}).Debug("compare")

	return formatter.Success(newCmpResult(x, y, r))
}
