// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// intArgs returns a validator accepting exactly n base 10 int64 arguments.
func intArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("accepts %d integer args, received %d", n, len(args)))
		}
		for _, a := range args {
			if _, err := strconv.ParseInt(a, 10, 64); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid integer %q", a), err)
			}
		}
		return nil
	}
}

// parseInts converts arguments already checked by intArgs.
func parseInts(args []string) []int64 {
	v := make([]int64, len(args))
	for i, a := range args {
		v[i], _ = strconv.ParseInt(a, 10, 64)
	}
	return v
}
