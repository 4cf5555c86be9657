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

// Package change defines the release-severity vocabulary of dxsem.
//
// A Bump is the answer to "how big is this release": none, patch, minor,
// or major. The four values form a total order, and the bump calculator
// aggregates per-commit contributions by taking the maximum over that
// order, which makes the aggregate independent of commit order.
package change

import (
	"encoding/json"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Bump represents the severity of version change a set of classifications
// requires: none, patch, minor, or major.
//
// The constants are ordered by severity, BumpNone lowest and BumpMajor
// highest, and that order is meaningful: aggregation over a commit range
// takes the maximum contribution, so the numeric values MUST NOT be
// reordered. A Bump value says what operation to perform on a version;
// whether a BumpNone blocks the release entirely is the caller's policy.
type Bump int

const (
	// BumpNone indicates that no version change is warranted. It is the
	// contribution of commits whose type maps to no configured severity
	// (documentation, chores) and the aggregate of an empty commit range.
	// Applying BumpNone to a version is a caller error; callers MUST check
	// for BumpNone before bumping.
	BumpNone Bump = iota

	// BumpPatch increments the patch component: X.Y.Z -> X.Y.(Z+1).
	// Contributed by backwards-compatible fixes and performance work
	// (default type list: fix, perf).
	BumpPatch

	// BumpMinor increments the minor component and resets patch:
	// X.Y.Z -> X.(Y+1).0. Contributed by backwards-compatible feature
	// additions (default type list: feat).
	BumpMinor

	// BumpMajor increments the major component and resets minor and patch:
	// X.Y.Z -> (X+1).0.0. Contributed by any breaking change, whether
	// signaled by the header "!" marker, a body marker line, or a type in
	// the configured major list.
	BumpMajor
)

// String constants for Bump values used in serialization, parsing, and
// human-facing output. These form the stable external representation of
// Bump; changing them is a breaking change for textual configuration.
const (
	BumpNoneStr  = "none"
	BumpPatchStr = "patch"
	BumpMinorStr = "minor"
	BumpMajorStr = "major"
)

// ParseBump converts a textual representation into a Bump value.
//
// The accepted vocabulary is "none", "patch", "minor", and "major" in
// lowercase, Title, or UPPER case. Any other input yields a *ParseError
// carrying the offending string.
func ParseBump(s string) (Bump, error) {
	switch s {
	case BumpNoneStr, "None", "NONE":
		return BumpNone, nil
	case BumpPatchStr, "Patch", "PATCH":
		return BumpPatch, nil
	case BumpMinorStr, "Minor", "MINOR":
		return BumpMinor, nil
	case BumpMajorStr, "Major", "MAJOR":
		return BumpMajor, nil
	default:
		return BumpNone, &errors.ParseError{Type: "Bump", Value: s}
	}
}

// Max returns the most severe of the given bumps, or BumpNone when called
// with no arguments.
//
// Max is the aggregation primitive of the bump calculator: folding Max
// over any permutation of the same contributions yields the same result.
func Max(bumps ...Bump) Bump {
	result := BumpNone
	for _, b := range bumps {
		if b > result {
			result = b
		}
	}
	return result
}

// Less reports whether b is strictly less severe than other.
func (b Bump) Less(other Bump) bool {
	return b < other
}

// String returns the canonical lowercase representation of the Bump value:
// "none", "patch", "minor", or "major". Values outside the defined
// constants render as "unknown"; callers that need a guarantee SHOULD
// check Valid first.
func (b Bump) String() string {
	switch b {
	case BumpNone:
		return BumpNoneStr
	case BumpPatch:
		return BumpPatchStr
	case BumpMinor:
		return BumpMinorStr
	case BumpMajor:
		return BumpMajorStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Bump value is one of the defined constants.
// Useful after deserialization or numeric casts.
func (b Bump) Valid() bool {
	return b >= BumpNone && b <= BumpMajor
}

// TypeName returns "Bump". Implements model.Identifiable.
func (b Bump) TypeName() string {
	return "Bump"
}

// Redacted returns the same representation as String; a Bump carries no
// sensitive data. Implements model.Loggable.
func (b Bump) Redacted() string {
	return b.String()
}

// IsZero reports whether the Bump is BumpNone, the zero value. Note that
// BumpNone is a valid Bump; IsZero true is not an error condition.
// Implements model.ZeroCheckable.
func (b Bump) IsZero() bool {
	return b == BumpNone
}

// Equal reports whether this Bump equals another value. It accepts Bump
// and *Bump operands; any other type compares unequal.
func (b Bump) Equal(other any) bool {
	switch v := other.(type) {
	case Bump:
		return b == v
	case *Bump:
		if v == nil {
			return false
		}
		return b == *v
	default:
		return false
	}
}

// Validate returns nil when the Bump is one of the defined constants and a
// *ValidationError otherwise. Implements model.Validatable.
func (b Bump) Validate() error {
	if !b.Valid() {
		return &errors.ValidationError{
			Type:   "Bump",
			Reason: "invalid Bump value",
			Value:  int(b),
		}
	}
	return nil
}

// MarshalJSON serializes a valid Bump as its lowercase string form.
// Invalid values yield a *MarshalError and no output.
func (b Bump) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Bump", Value: int(b)}
	}
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts both the string vocabulary of ParseBump and, for
// compatibility with integer-valued configuration, the numeric constants
// 0 through 3. Anything else yields an *UnmarshalError.
func (b *Bump) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Bump", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Bump", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseBump(s)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Bump", Data: data, Reason: err.Error()}
	}
	*b = Bump(i)
	if !b.Valid() {
		return &errors.UnmarshalError{Type: "Bump", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML serializes a valid Bump as its canonical string form.
func (b Bump) MarshalYAML() (any, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Bump", Value: int(b)}
	}
	return b.String(), nil
}

// UnmarshalYAML decodes a scalar string through ParseBump.
func (b *Bump) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Bump", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseBump(str)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler using the same lowercase
// vocabulary as String.
func (b Bump) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Bump", Value: int(b)}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through ParseBump.
func (b *Bump) UnmarshalText(text []byte) error {
	parsed, err := ParseBump(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Compile-time check that Bump implements model.Model.
var _ model.Model = (*Bump)(nil)
