/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the reusable error types shared by dxsem model
// and engine packages.
//
// The dxsem core reports exactly two classes of hard failures to callers:
// malformed input that cannot be parsed into a typed value (for example an
// invalid version string), and misuse of an API contract (for example
// applying a "none" bump to a version). Everything else in the engine
// degrades gracefully and never returns an error. The types in this package
// cover those failures with stable, recognizable error values:
//
//   - ParseError: a string could not be interpreted as a typed value.
//   - MarshalError: an invalid enum-like value was about to be serialized.
//   - UnmarshalError: serialized data could not be decoded into a value.
//   - ValidationError: a constructed value violates one of its invariants,
//     or a caller invoked an operation the value does not support.
//
// All messages carry the "dxsem:" prefix and a stable format, so callers
// MAY match on message text in diagnostics, though type assertions are the
// preferred way to recognize a failure class:
//
//	var perr *errors.ParseError
//	if stderrors.As(err, &perr) && perr.Type == "Version" {
//	    // invalid version format
//	}
//
// Nothing in this package logs, wraps policy, or retries; error policy is
// entirely the caller's concern.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "Version",
// "Bump", "Type"), and Value contains the exact string that could not be
// interpreted. Reason optionally carries a more specific explanation from
// the underlying parser.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Bump").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason optionally explains why the value was rejected. May be empty
	// when the value simply does not belong to a closed vocabulary.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The message format is stable:
//
//	"dxsem: invalid {Type} value: {Value}"
//	"dxsem: invalid {Type} value: {Value}: {Reason}"   (when Reason is set)
func (e *ParseError) Error() string {
	msg := "dxsem: invalid " + e.Type + " value: " + e.Value
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MarshalError is returned when marshaling a typed value fails because the
// value is outside the set of valid constants.
//
// A MarshalError almost always indicates a programming error such as an
// unchecked numeric cast; it exists as a guardrail so that invalid
// enum-like values never silently reach JSON or YAML output.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that does not
	// correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is stable:
//
//	"dxsem: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxsem: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the raw
// payload (typically a JSON fragment; may be nil for YAML input), and
// Reason is a short human-readable description of what went wrong. The raw
// Data is intentionally excluded from the formatted message; callers that
// need it can log it separately.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. May be nil.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is stable:
//
//	"dxsem: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxsem: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a model value violates one of its
// invariants, or when a caller invokes an operation the value does not
// support (for example, applying a "none" bump to a version).
//
// Type identifies the logical type, Field optionally names the offending
// field, Reason explains the violation, and Value optionally carries the
// problematic value for diagnostics.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation. May be empty
	// if the error applies to the entire value or to an operation on it.
	Field string

	// Reason is a short, human-readable explanation of the failure.
	Reason string

	// Value optionally contains the invalid value. May be nil.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is stable:
//
//	"dxsem: invalid {Type}.{Field}: {Reason}"   (when Field is set)
//	"dxsem: invalid {Type}: {Reason}"           (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxsem: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxsem: invalid " + e.Type + ": " + e.Reason
}
