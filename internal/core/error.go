/*
Package core provides the conversion pipeline: source discovery, merging of
all lists into one domain set, writing the formatted output and reporting
statistics.
*/
package core

/*
hostfileconverter — merges hosts-style blocklists into DNS blocker configs
Copyright (C) 2025  Pepijn van der Stap <rxtls@vanderstap.info>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a RunError. Each kind maps to one process exit code.
type ErrorKind string

const (
	// KindUsage covers bad flags, stray arguments and unreadable config files.
	KindUsage ErrorKind = "usage"
	// KindFormat is an output format name outside the supported set.
	KindFormat ErrorKind = "format"
	// KindIO is any failure reading sources or writing the output.
	KindIO ErrorKind = "io"
)

// Exit codes returned by the command line.
const (
	ExitOK     = 0
	ExitIO     = 1
	ExitUsage  = 2
	ExitFormat = 3
)

// RunError wraps an underlying error with the operation that failed, its
// kind and, when relevant, the file involved.
// It implements the standard `error` interface and supports errors.Unwrap.
type RunError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

// Error implements the standard Go `error` interface.
func (e *RunError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *RunError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is, or wraps, a RunError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RunError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// ExitCode maps err to the process exit status. Errors that are not a
// RunError are treated as I/O failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var re *RunError
	if !errors.As(err, &re) {
		return ExitIO
	}
	switch re.Kind {
	case KindUsage:
		return ExitUsage
	case KindFormat:
		return ExitFormat
	default:
		return ExitIO
	}
}

// ioError is a shorthand for the pipeline's many I/O failure sites.
func ioError(op, path string, err error) error {
	return &RunError{Op: op, Kind: KindIO, Path: path, Err: err}
}
