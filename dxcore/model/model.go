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

// Package model defines the contracts every dxsem domain type implements.
//
// All domain values (versions, bumps, commits, classifications,
// configuration) are immutable value types that validate their own
// invariants, serialize round-trip safe to JSON and YAML, identify
// themselves for diagnostics, and provide a log-safe string form. The Model
// interface bundles those contracts so generic helpers such as ValidateAll
// and FilterZero can operate on any domain type, and so a type that misses
// part of the contract fails at compile time rather than at runtime.
//
// Implementations are immutable value types unless documented otherwise:
// concurrent reads are safe, concurrent writes require external
// synchronization, and no method on a Model value performs I/O or has side
// effects.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the contracts required of dxsem
// domain types: validation, JSON/YAML serialization, log-safe string forms,
// type identification, and zero-value detection.
//
// Every domain type declares a compile-time assertion against Model:
//
//	var _ model.Model = (*Version)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is the contract for types that check their own invariants.
//
// Validate returns nil if and only if the value is internally consistent
// and usable in engine logic. Failures MUST be described specifically
// ("Commit.SHA must not be empty"), never generically ("validation
// failed"). Validate MUST be deterministic, idempotent, free of side
// effects, and MUST NOT mutate the receiver. Callers invoke it at
// boundaries: after unmarshaling, after constructing from external input,
// and before emitting a value into caller-facing output.
type Validatable interface {
	// Validate reports whether the value satisfies all of its invariants.
	Validate() error
}

// Serializable is the contract for round-trip JSON and YAML encoding.
//
// Marshal implementations MUST validate the receiver first and refuse to
// serialize invalid values; unmarshal implementations MUST validate the
// decoded value and report failures through the structured error types in
// dxcore/errors. Implementations use the type-alias pattern to delegate to
// the standard encoders without recursing into themselves:
//
//	func (v Version) MarshalJSON() ([]byte, error) {
//	    if err := v.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias Version
//	    return json.Marshal(alias(v))
//	}
//
// A value marshaled and unmarshaled through either format MUST equal the
// original.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is the contract for string forms intended for humans.
//
// Redacted MUST be safe for production logs: sensitive fields (author
// emails are the relevant case in dxsem) are masked while enough context
// remains to correlate entries. String MAY include full data and is for
// development, tests, and tooling only. Both methods MUST be cheap, free
// of side effects, and safe for concurrent use.
type Loggable interface {
	// Redacted returns a log-safe representation with sensitive fields
	// masked.
	Redacted() string

	// String returns the full human-readable representation. It MUST NOT
	// be used for production logging; use Redacted instead.
	String() string
}

// Identifiable is the contract for canonical type names.
//
// TypeName returns a constant, CamelCase name unique within dxsem and
// without a package prefix (for example "Version", "Classification"). The
// name identifies the type, not the instance, and is used in error
// messages and structured diagnostics.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable is the contract for detecting empty values.
//
// IsZero reports whether the value is semantically empty, meaning it
// carries no meaningful data. For enum types whose zero constant is a
// valid member, IsZero returning true is not an error condition; for
// composite types it usually coincides with "would fail Validate".
type ZeroCheckable interface {
	// IsZero reports whether this value is in a zero or empty state.
	IsZero() bool
}

// Comparable is the optional contract for value equality.
//
// Equal MUST be reflexive, symmetric, transitive, and consistent, compare
// all semantically significant fields, and ignore caches or other derived
// state. It MUST NOT mutate either operand.
type Comparable[T any] interface {
	// Equal reports whether this value and other represent the same
	// logical value.
	Equal(other T) bool
}
