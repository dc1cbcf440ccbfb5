// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/ratio"
)

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <num> <den>",
		Short: "Reduce a rational to lowest terms",
		Long: `Reduce num/den to lowest terms and report the GCD that was divided out.
The reduced denominator is always positive.`,
		Args: intArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := parseInts(args)
			return runReduce(rootOpts, cmd, v[0], v[1])
		},
	}
}

func runReduce(opts *RootOptions, cmd *cobra.Command, num, den int64) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	x, err := ratio.New(num, den)
	if err != nil {
		return formatter.Fail(err)
	}
	r := x.Reduction()
	opts.log.WithFields(logrus.Fields{
		"x":           x.RawString(),
		"gcd":         r.GCD,
		"irreducible": r.Irreducible,
	}).Debug("reduce")

	res := newResult("reduce", x.Reduced(), x)
	res.GCD = r.GCD
	return formatter.Success(res)
}
