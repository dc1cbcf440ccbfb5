// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"

	log *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the ratio CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "ratio",
		Short: "Exact rational arithmetic on int64 pairs",
		Long: `Evaluate, reduce and compare rationals made of int64 numerators and
denominators. Every operation is checked: a result that does not fit in an
int64 is reported as an overflow instead of being silently wrapped.

Negative operands must follow a "--" separator:

    ratio sum -- -1 2 1 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.setupLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log evaluation steps to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewReduceCommand(opts))
	for _, op := range arithOps {
		cmd.AddCommand(newArithCommand(opts, op))
	}
	cmd.AddCommand(NewCmpCommand(opts))

	return cmd
}

// Execute runs cmd and returns the process exit code. Errors that were not
// already written by an OutputFormatter are reported on cmd's error stream.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if !isReported(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return GetExitCode(err)
}

func (o *RootOptions) setupLogger(w io.Writer) {
	o.log.SetOutput(w)
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.Verbose {
		o.log.SetLevel(logrus.DebugLevel)
	} else {
		o.log.SetLevel(logrus.WarnLevel)
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
