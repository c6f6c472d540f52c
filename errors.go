/*
Copyright (C) 2018 the GCTP-Go authors.
This file is part of GCTP-Go.

GCTP-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

package gctp

import "fmt"

// ErrorKind classifies the failures the transformation engine can report.
type ErrorKind int

const (
	// InvalidInput indicates a malformed descriptor, an out-of-range DMS
	// angle, or an unsupported spheroid, unit, or projection code.
	InvalidInput ErrorKind = iota + 1
	// ProjectionInitError indicates degenerate geometry detected during
	// projection setup, such as coincident oblique mercator center points.
	ProjectionInitError
	// ConvergenceFailure indicates an iterative solver exceeded its
	// iteration cap without converging.
	ConvergenceFailure
	// InBreakRegion indicates a point in a region the projection cannot
	// map. This is the only condition callers should treat as routine.
	InBreakRegion
	// ComputationError indicates a generic runtime failure during a
	// transform, such as a point that projects into infinity.
	ComputationError
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case ProjectionInitError:
		return "projection initialization error"
	case ConvergenceFailure:
		return "convergence failure"
	case InBreakRegion:
		return "point in break region"
	case ComputationError:
		return "computation error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Sentinel errors for use with errors.Is. Each matches any *Error carrying
// the corresponding kind.
var (
	ErrInvalidInput       = &Error{Kind: InvalidInput, sentinel: true}
	ErrProjectionInit     = &Error{Kind: ProjectionInitError, sentinel: true}
	ErrConvergence        = &Error{Kind: ConvergenceFailure, sentinel: true}
	ErrInBreakRegion      = &Error{Kind: InBreakRegion, sentinel: true}
	ErrComputationFailure = &Error{Kind: ComputationError, sentinel: true}
)

// Error is the error type returned by the transformation engine. It carries
// one of the ErrorKind classifications so callers can distinguish routine
// break-region results from hard failures.
type Error struct {
	Kind     ErrorKind
	msg      string
	sentinel bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is reports whether target matches this error. A *Error matches any other
// *Error with the same kind, so errors.Is(err, ErrInBreakRegion) checks the
// classification regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}
