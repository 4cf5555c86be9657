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

// Package commits turns raw commit history into release decisions: it
// classifies commits against the conventional grammar, filters skip
// markers, computes the aggregate version bump, and formats changelog
// entries.
//
// Every function in this package is pure: classification never fails,
// filters never reorder, and the bump calculation depends only on the set
// of classifications, not their order.
package commits

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"dirpx.dev/dxsem/dxcore/model/git"
	"gopkg.in/yaml.v3"
)

// Classification is the structured reading of one commit against the
// conventional grammar.
//
// This type implements the model.Model interface. For a conventional
// commit, Type holds the lowercase type token, Scope the scope as
// written, and Description the header summary. For a non-conventional
// commit, Type and Scope are empty and Description is the trimmed header
// line; Breaking can still be true via the body marker.
type Classification struct {
	// Conventional reports whether the commit header matched the grammar.
	Conventional bool `json:"conventional" yaml:"conventional"`

	// Type is the lowercase commit type token. Empty when the commit is
	// not conventional. Not restricted to the well-known vocabulary.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Scope is the header scope exactly as written. Empty when absent or
	// when the commit is not conventional.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`

	// Description is the header summary: the text after the separator for
	// a conventional commit, the whole trimmed header line otherwise.
	Description string `json:"description" yaml:"description"`

	// Breaking reports either the "!" header marker or a breaking-change
	// marker on any line of the message body.
	Breaking bool `json:"breaking" yaml:"breaking"`

	// Source is the commit this classification was derived from.
	Source git.Commit `json:"source" yaml:"source"`
}

// Compile-time check that Classification implements model.Model.
var _ model.Model = (*Classification)(nil)

// SHA returns the identifier of the source commit.
func (c Classification) SHA() string {
	return c.Source.SHA
}

// ShortSHA returns the shortened identifier of the source commit.
func (c Classification) ShortSHA() string {
	return c.Source.ShortSHA()
}

// String returns a compact single-line form for diagnostics.
func (c Classification) String() string {
	if !c.Conventional {
		return fmt.Sprintf("%s (unconventional) %s", c.ShortSHA(), c.Description)
	}
	header := c.Type
	if c.Scope != "" {
		header += "(" + c.Scope + ")"
	}
	if c.Breaking {
		header += "!"
	}
	return fmt.Sprintf("%s %s: %s", c.ShortSHA(), header, c.Description)
}

// Redacted returns the same representation as String; classifications
// carry only commit text and the short id. Implements model.Loggable.
func (c Classification) Redacted() string {
	return c.String()
}

// TypeName returns "Classification". Implements model.Identifiable.
func (c Classification) TypeName() string {
	return "Classification"
}

// IsZero reports whether the Classification carries no data. Implements
// model.ZeroCheckable.
func (c Classification) IsZero() bool {
	return !c.Conventional && c.Type == "" && c.Scope == "" &&
		c.Description == "" && !c.Breaking && c.Source.IsZero()
}

// Equal reports whether two classifications agree on every field.
func (c Classification) Equal(other Classification) bool {
	return c.Conventional == other.Conventional &&
		c.Type == other.Type &&
		c.Scope == other.Scope &&
		c.Description == other.Description &&
		c.Breaking == other.Breaking &&
		c.Source.Equal(other.Source)
}

// Validate enforces the structural invariant between Conventional and the
// grammar fields. Implements model.Validatable.
func (c Classification) Validate() error {
	if c.Conventional {
		if c.Type == "" {
			return &errors.ValidationError{Type: "Classification", Field: "Type", Reason: "must not be empty for a conventional commit"}
		}
		if c.Type != strings.ToLower(c.Type) {
			return &errors.ValidationError{Type: "Classification", Field: "Type", Reason: "must be lowercase", Value: c.Type}
		}
	} else {
		if c.Type != "" || c.Scope != "" {
			return &errors.ValidationError{Type: "Classification", Reason: "type and scope must be empty for an unconventional commit"}
		}
	}
	if c.Description == "" {
		return &errors.ValidationError{Type: "Classification", Field: "Description", Reason: "must not be empty"}
	}
	return nil
}

// MarshalJSON serializes a valid Classification. Implements
// json.Marshaler.
func (c Classification) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Classification
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes and validates a Classification. Implements
// json.Unmarshaler.
func (c *Classification) UnmarshalJSON(data []byte) error {
	type alias Classification
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Classification", Data: data, Reason: err.Error()}
	}
	*c = Classification(tmp)
	return c.Validate()
}

// MarshalYAML serializes a valid Classification. Implements
// yaml.Marshaler.
func (c Classification) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Classification
	return alias(c), nil
}

// UnmarshalYAML decodes and validates a Classification. Implements
// yaml.Unmarshaler.
func (c *Classification) UnmarshalYAML(node *yaml.Node) error {
	type alias Classification
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Classification", Reason: err.Error()}
	}
	*c = Classification(tmp)
	return c.Validate()
}
