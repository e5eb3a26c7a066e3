// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrTruncated is returned when the input ends before a complete value
	// could be decoded.
	ErrTruncated = ErrorKind("ErrTruncated")

	// ErrNonCanonicalVarInt is returned when a variable length integer is
	// not canonically encoded.
	ErrNonCanonicalVarInt = ErrorKind("ErrNonCanonicalVarInt")

	// ErrVarBytesTooLong is returned when a variable-length byte slice
	// exceeds the maximum size allowed or the remaining input.
	ErrVarBytesTooLong = ErrorKind("ErrVarBytesTooLong")

	// ErrTooManyTxIns is returned when the number of transaction inputs
	// exceeds the maximum allowed or the remaining input.
	ErrTooManyTxIns = ErrorKind("ErrTooManyTxIns")

	// ErrTooManyTxOuts is returned when the number of transaction outputs
	// exceeds the maximum allowed or the remaining input.
	ErrTooManyTxOuts = ErrorKind("ErrTooManyTxOuts")

	// ErrTooManyTxs is returned when a the number of transactions exceed the
	// maximum allowed or the remaining input.
	ErrTooManyTxs = ErrorKind("ErrTooManyTxs")

	// ErrTrailingBytes is returned when bytes remain after decoding a value
	// that is required to consume its entire input.
	ErrTrailingBytes = ErrorKind("ErrTrailingBytes")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// MessageError identifies an error related to the canonical encoding.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type MessageError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e MessageError) Error() string {
	if e.Func != "" {
		return e.Func + ": " + e.Description
	}
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e MessageError) Unwrap() error {
	return e.Err
}

// messageError creates a MessageError given a set of arguments.
func messageError(fn string, kind ErrorKind, desc string) MessageError {
	return MessageError{Func: fn, Err: kind, Description: desc}
}
