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

// Package semver implements the version model of dxsem: a Semantic
// Versioning 2.0.0 value with parsing, total ordering, and the bump
// operations the release engine applies to it.
//
// Parsing and comparison are backed by github.com/blang/semver/v4 for full
// SemVer 2.0.0 compliance; this package wraps it in an immutable value type
// that implements the dxsem model contract. Versions with a prerelease
// label order strictly before the otherwise-equal release version, and
// build metadata never affects precedence.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"dirpx.dev/dxsem/dxcore/model/change"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version represents a semantic version in the form
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// Version values are immutable: every operation (Apply, WithPrerelease,
// Next) returns a new value and never mutates the receiver. The zero value
// corresponds to 0.0.0 and may serve as a "no version yet" sentinel;
// callers MUST treat Major, Minor, and Patch as non-negative.
//
// Ordering follows SemVer 2.0.0 precedence: (Major, Minor, Patch) compare
// numerically, a version carrying a prerelease label orders strictly
// before the bare version (1.0.0-alpha < 1.0.0), prerelease identifiers
// compare part-wise, and build metadata is ignored entirely
// (1.0.0+a == 1.0.0+b).
type Version struct {
	// Major is the first component. Incrementing it signals a breaking
	// change and resets Minor and Patch to zero.
	Major int

	// Minor is the second component. Incrementing it signals
	// backwards-compatible feature additions and resets Patch to zero.
	Minor int

	// Patch is the third component. Incrementing it signals
	// backwards-compatible fixes.
	Patch int

	// Prerelease is the optional pre-release identifier ("alpha.1",
	// "rc.2"). When non-empty it MUST be dot-separated identifiers of
	// [0-9A-Za-z-] with no empty parts and no leading zeroes in numeric
	// parts. A version with a prerelease orders before the same version
	// without one.
	Prerelease string

	// Metadata is optional build metadata ("build.123"). It follows the
	// same identifier grammar as Prerelease and never affects precedence.
	Metadata string
}

// Compile-time check that Version implements model.Model.
var _ model.Model = (*Version)(nil)

// ParseVersion parses a SemVer 2.0.0 string into a Version.
//
// The expected shape is "Major.Minor.Patch[-Prerelease][+Metadata]" with
// non-negative integer components; an optional leading "v" is tolerated
// and stripped. Any other shape (missing components, non-numeric parts,
// trailing garbage, malformed identifiers) yields a zero Version and a
// *errors.ParseError with Type "Version".
//
//	ParseVersion("1.2.3")             // Version{1, 2, 3, "", ""}
//	ParseVersion("v2.0.0-rc.1")       // Version{2, 0, 0, "rc.1", ""}
//	ParseVersion("1.0.0+build.5")     // Version{1, 0, 0, "", "build.5"}
//	ParseVersion("1.2")               // error
//	ParseVersion("1.2.3.4")           // error
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(s, "v")

	bv, err := bsemver.Parse(trimmed)
	if err != nil {
		return Version{}, &errors.ParseError{Type: "Version", Value: s, Reason: err.Error()}
	}

	return fromBlang(bv), nil
}

// MustParseVersion parses s and panics on failure. Intended for constants
// and tests where the input is known to be valid.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical textual form:
// "Major.Minor.Patch[-Prerelease][+Metadata]".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Apply returns the version that results from performing the given bump.
//
//   - BumpMajor: (X+1).0.0
//   - BumpMinor: X.(Y+1).0
//   - BumpPatch: X.Y.(Z+1)
//
// A numeric bump always clears Prerelease and Metadata; use WithPrerelease
// afterwards to tag the result. Applying BumpNone is a caller error and
// returns a *errors.ValidationError; the engine never silently no-ops a
// none bump, so callers MUST check for BumpNone themselves before calling.
// Invalid Bump values are rejected the same way.
func (v Version) Apply(b change.Bump) (Version, error) {
	switch b {
	case change.BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case change.BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case change.BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case change.BumpNone:
		return Version{}, &errors.ValidationError{
			Type:   "Version",
			Reason: "cannot apply a none bump; callers must check for BumpNone first",
			Value:  v.String(),
		}
	default:
		return Version{}, &errors.ValidationError{
			Type:   "Version",
			Reason: "cannot apply an invalid bump",
			Value:  int(b),
		}
	}
}

// WithPrerelease returns a copy of v carrying the given prerelease label,
// leaving the numeric core and metadata untouched. An empty label clears
// the prerelease. The label is not validated here; Validate on the result
// enforces the identifier grammar.
func (v Version) WithPrerelease(label string) Version {
	v.Prerelease = label
	return v
}

// toBlang converts v to a blang/semver value for comparison and
// validation. Fails when the components do not form a valid SemVer 2.0.0
// version.
func (v Version) toBlang() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("not a valid semantic version: %w", err)
	}
	return bv, nil
}

// fromBlang converts a parsed blang/semver value into a Version.
func fromBlang(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	var metadata string
	if len(bv.Build) > 0 {
		metadata = strings.Join(bv.Build, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   metadata,
	}
}

// Validate checks that the Version is a well-formed SemVer 2.0.0 value:
// non-negative numeric components and valid prerelease/metadata
// identifiers. Implements model.Validatable.
func (v Version) Validate() error {
	if v.Major < 0 {
		return &errors.ValidationError{Type: "Version", Field: "Major", Reason: "must be non-negative", Value: v.Major}
	}
	if v.Minor < 0 {
		return &errors.ValidationError{Type: "Version", Field: "Minor", Reason: "must be non-negative", Value: v.Minor}
	}
	if v.Patch < 0 {
		return &errors.ValidationError{Type: "Version", Field: "Patch", Reason: "must be non-negative", Value: v.Patch}
	}

	if _, err := v.toBlang(); err != nil {
		return &errors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// IsZero reports whether the Version is exactly 0.0.0 with no prerelease
// or metadata. "0.0.0-alpha" is not zero: the label carries meaning.
// Implements model.ZeroCheckable.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// Compare reports the SemVer 2.0.0 ordering of v and other: -1 when
// v < other, 0 when equal, +1 when v > other. A prerelease version orders
// before its release counterpart; build metadata is ignored.
func (v Version) Compare(other Version) int {
	bv, errV := v.toBlang()
	bo, errO := other.toBlang()
	if errV != nil || errO != nil {
		// Fall back to numeric-core comparison for malformed values so
		// Compare stays total.
		return compareCore(v, other)
	}
	return bv.Compare(bo)
}

func compareCore(a, b Version) int {
	switch {
	case a.Major != b.Major:
		return sign(a.Major - b.Major)
	case a.Minor != b.Minor:
		return sign(a.Minor - b.Minor)
	case a.Patch != b.Patch:
		return sign(a.Patch - b.Patch)
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence. Per SemVer
// 2.0.0 build metadata is ignored, so 1.0.0+a equals 1.0.0+b.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Greater reports whether v orders strictly after other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// TypeName returns "Version". Implements model.Identifiable.
func (v Version) TypeName() string {
	return "Version"
}

// Redacted returns the same representation as String; a Version carries no
// sensitive data. Implements model.Loggable.
func (v Version) Redacted() string {
	return v.String()
}

// MarshalJSON serializes a valid Version as its canonical string form.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON expects a JSON string in canonical form, optionally
// "v"-prefixed, and parses it via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML serializes a valid Version as a scalar string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML expects a scalar string, optionally "v"-prefixed, and
// parses it via ParseVersion.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
