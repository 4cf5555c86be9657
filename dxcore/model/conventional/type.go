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

package conventional

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Type enumerates the well-known Conventional Commits types: the two core
// types (feat, fix) plus the commonly adopted extensions.
//
// This type implements the model.Model interface. The zero value is Feat.
//
// Type is the closed vocabulary used for changelog section labels and as
// the default allowed set of the title validator. The commit classifier
// itself is NOT restricted to it: a classification stores its type as a
// plain lowercase token so custom types configured for bump severity
// ("remove", "deps") flow through the engine untouched.
type Type uint8

const (
	// Feat is a user-visible feature addition. Default minor-severity type.
	Feat Type = iota

	// Fix is a bug fix. Default patch-severity type.
	Fix

	// Docs is a documentation-only change.
	Docs

	// Style is a formatting-only change with no behavioral effect.
	Style

	// Refactor restructures code without changing external behavior.
	Refactor

	// Perf is a performance improvement. Default patch-severity type.
	Perf

	// Test adds or corrects tests without touching production code.
	Test

	// Build affects the build system or external dependencies.
	Build

	// CI changes continuous-integration configuration or pipelines.
	CI

	// Chore is repository maintenance not covered by a more specific type.
	Chore
)

// Compile-time check that Type implements model.Model.
var _ model.Model = (*Type)(nil)

// typeNames maps each constant to its canonical lowercase token. Order
// MUST mirror the constant declarations.
var typeNames = [...]string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore"}

// typeLabels maps each constant to its human-facing changelog section
// label. Order MUST mirror the constant declarations.
var typeLabels = [...]string{
	"✨ Features",
	"🐛 Bug Fixes",
	"📚 Documentation",
	"💄 Style",
	"♻️ Refactoring",
	"⚡ Performance",
	"🧪 Tests",
	"📦 Build",
	"🔧 CI",
	"🔨 Chores",
}

// ParseType converts a textual token into a Type value. The input is
// matched case-insensitively against the canonical vocabulary; anything
// outside it yields a *ParseError.
func ParseType(s string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeNames {
		if name == normalized {
			return Type(i), nil
		}
	}
	return Feat, &errors.ParseError{Type: "Type", Value: s}
}

// KnownTypeNames returns the canonical lowercase tokens of all well-known
// types in declaration order. The returned slice is a fresh copy; callers
// may modify it.
func KnownTypeNames() []string {
	names := make([]string, len(typeNames))
	copy(names, typeNames[:])
	return names
}

// IsKnownType reports whether the given token (matched
// case-insensitively) belongs to the well-known vocabulary.
func IsKnownType(s string) bool {
	_, err := ParseType(s)
	return err == nil
}

// String returns the canonical lowercase token ("feat", "fix", ...).
// Values outside the defined constants render as "unknown".
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return typeNames[t]
}

// Label returns the human-facing changelog section label for the type,
// for example "✨ Features" for Feat.
func (t Type) Label() string {
	if !t.Valid() {
		return "unknown"
	}
	return typeLabels[t]
}

// sectionRanks maps each constant to its changelog section rank. Order
// MUST mirror the constant declarations. Ranks follow the fixed section
// order feat, fix, perf, docs, refactor, test, build, ci, style, chore.
var sectionRanks = [...]int{0, 1, 3, 8, 4, 2, 5, 6, 7, 9}

// SectionPriority returns the rank of the type's changelog section;
// lower ranks render first. Values outside the defined constants sort
// after every known type.
func (t Type) SectionPriority() int {
	if !t.Valid() {
		return len(sectionRanks)
	}
	return sectionRanks[t]
}

// Valid reports whether the Type value is one of the defined constants.
func (t Type) Valid() bool {
	return int(t) < len(typeNames)
}

// TypeName returns "Type". Implements model.Identifiable.
func (t Type) TypeName() string {
	return "Type"
}

// Redacted returns the same representation as String. Implements
// model.Loggable.
func (t Type) Redacted() string {
	return t.String()
}

// IsZero reports whether the Type is Feat, the zero value. Feat is a
// valid type; IsZero true is not an error condition. Implements
// model.ZeroCheckable.
func (t Type) IsZero() bool {
	return t == Feat
}

// Equal reports whether this Type equals another value. Accepts Type and
// *Type operands.
func (t Type) Equal(other any) bool {
	switch v := other.(type) {
	case Type:
		return t == v
	case *Type:
		if v == nil {
			return false
		}
		return t == *v
	default:
		return false
	}
}

// Validate returns nil when the Type is a defined constant. Implements
// model.Validatable.
func (t Type) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{Type: "Type", Reason: "invalid Type value", Value: int(t)}
	}
	return nil
}

// MarshalJSON serializes a valid Type as its lowercase token.
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "Type", Value: int(t)}
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string through ParseType.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Type", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML serializes a valid Type as its lowercase token.
func (t Type) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "Type", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML decodes a scalar string through ParseType.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Type", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
