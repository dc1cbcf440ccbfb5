// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/db47h/ratio"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Arithmetic failure (overflow, division by zero, ...)
	ExitCommandError = 2 // Usage error (bad arguments, unknown flag or format)
)

// Error codes reported by OutputFormatter.Error.
const (
	ErrCodeGeneric         = "E000"
	ErrCodeOverflow        = "E001"
	ErrCodeZeroDenominator = "E002"
	ErrCodeDivisionByZero  = "E003"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	reported bool // already written by an OutputFormatter
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError if the error is not an ExitError: cobra reports
// unknown commands and argument count mismatches that way.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

func isReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.reported
}

// errorCode maps ratio errors to CLI error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ratio.ErrOverflow):
		return ErrCodeOverflow
	case errors.Is(err, ratio.ErrZeroDenominator):
		return ErrCodeZeroDenominator
	case errors.Is(err, ratio.ErrDivisionByZero):
		return ErrCodeDivisionByZero
	}
	return ErrCodeGeneric
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard structured response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Success outputs a successful result in the configured format. In text
// format, data is printed with fmt.Println.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "text" {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	return f.encode(CLIResponse{Status: "ok", Data: data})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "text" {
		_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
		return err
	}
	return f.encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: message},
	})
}

// Fail writes err through f and returns an ExitError with code ExitFailure
// that Execute will not report again.
func (f *OutputFormatter) Fail(err error) error {
	if werr := f.Error(errorCode(err), err.Error()); werr != nil {
		return werr
	}
	return &ExitError{Code: ExitFailure, Message: "evaluation failed", Err: err, reported: true}
}

func (f *OutputFormatter) encode(v any) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", f.Format)
}
