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

// Package title validates change-request titles against the conventional
// commit grammar and a configurable policy.
//
// Validation is diagnostic, not error-driven: a bad title is an expected
// input, so the outcome is a Result value carrying a typed Issue rather
// than a Go error. Callers that do want an error can use Issue directly,
// which implements the error interface.
package title

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxsem/dxcore/errors"
)

// Kind identifies why a title failed validation.
type Kind int

const (
	// EmptyTitle means the title was empty or whitespace-only.
	EmptyTitle Kind = iota

	// NotConventionalFormat means the title did not match the
	// conventional commit grammar.
	NotConventionalFormat

	// InvalidCommitType means the grammar matched but the type is outside
	// the allowed set.
	InvalidCommitType

	// MissingScope means a scope is required but absent.
	MissingScope

	// TitleTooLong means the raw title exceeds the configured length cap.
	TitleTooLong
)

var kindNames = [...]string{
	"empty_title",
	"not_conventional_format",
	"invalid_commit_type",
	"missing_scope",
	"title_too_long",
}

// ParseKind converts a textual token into a Kind value. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == normalized {
			return Kind(i), nil
		}
	}
	return EmptyTitle, &errors.ParseError{Type: "Kind", Value: s}
}

// Valid reports whether the Kind is one of the defined constants.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// String returns the snake_case token for the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalJSON serializes a valid Kind as its token.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string through ParseKind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Issue is one validation failure: a machine-readable kind plus the
// human-readable message shown to the author of the title.
//
// Issue implements the error interface so a failed Result can be
// propagated through error-shaped plumbing when that is more convenient.
type Issue struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Error returns the message. Implements error.
func (i *Issue) Error() string {
	return i.Message
}

// String returns "kind: message".
func (i *Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}
