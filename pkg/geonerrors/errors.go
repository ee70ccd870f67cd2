// Package geonerrors provides the structured error codes used across the
// noding/polygonization core, one Code per row of the error-kind table:
// ParseError, InvalidGeometry, NodingConvergence, PolygonizationDefect,
// SnapAmbiguity, IOError, and OutOfOrderNode.
//
// Fatal kinds (NodingConvergence, IOError) are meant to propagate to the
// top of an invocation and set a non-zero exit code. The rest are
// recorded so a caller can log at WARN and skip the offending record;
// SnapAmbiguity in particular is never surfaced as an error at all (its
// resolution is deterministic first-seen-wins) but the code exists so
// callers can annotate a decision in logs if they choose to.
package geonerrors

import (
	"errors"
	"fmt"
)

// Code identifies which row of the error-kind table an Error belongs to.
type Code string

const (
	// ErrCodeParse covers malformed WKT and malformed TGF lines.
	ErrCodeParse Code = "PARSE_ERROR"
	// ErrCodeInvalidGeometry covers structurally invalid geometries, e.g.
	// a polygon ring with fewer than 4 coordinates.
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	// ErrCodeNodingConvergence is fatal: the exact (epsilon = 0) noder
	// failed to reach a fixed point within its pass budget.
	ErrCodeNodingConvergence Code = "NODING_CONVERGENCE"
	// ErrCodePolygonizationDefect covers an edge set that was not fully
	// noded; the polygonizer still returns whatever it could resolve.
	ErrCodePolygonizationDefect Code = "POLYGONIZATION_DEFECT"
	// ErrCodeSnapAmbiguity records that a coordinate was within epsilon
	// of multiple prior representatives; resolved deterministically and
	// never returned as an error.
	ErrCodeSnapAmbiguity Code = "SNAP_AMBIGUITY"
	// ErrCodeIO is fatal: stdin/stdout/file I/O failed.
	ErrCodeIO Code = "IO_ERROR"
	// ErrCodeOutOfOrderNode covers a TGF node index that skips forward;
	// the offending node line is skipped.
	ErrCodeOutOfOrderNode Code = "OUT_OF_ORDER_NODE"
)

// Fatal reports whether an error of this code should abort the
// invocation with a non-zero exit code, per the propagation policy in
// the error handling design.
func (c Code) Fatal() bool {
	return c == ErrCodeNodingConvergence || c == ErrCodeIO
}

// Error is a structured error carrying a machine-readable Code alongside
// a human message and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes Cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with the given code, wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err has the given code anywhere in its chain.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
