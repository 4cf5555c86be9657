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

package git

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Signature identifies who authored a commit and when, as recorded by the
// version-control collaborator.
//
// This type implements the model.Model interface. The email address is
// personally identifying information: production logging MUST go through
// Redacted, which masks the local part of the address.
type Signature struct {
	// Name is the author's display name. Required for a valid Signature.
	Name string `json:"name" yaml:"name"`

	// Email is the author's email address. Optional; dxsem does not
	// interpret it beyond redaction.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// When is the timestamp recorded with the signature.
	When time.Time `json:"when" yaml:"when"`
}

// Compile-time check that Signature implements model.Model.
var _ model.Model = (*Signature)(nil)

// String returns the signature in the conventional "Name <email>" form,
// omitting the angle brackets when no email is present. Contains the full
// email; use Redacted for logs.
func (s Signature) String() string {
	if s.Email == "" {
		return s.Name
	}
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}

// Redacted returns the signature with the email's local part masked, e.g.
// "Jane <j***@example.com>". Implements model.Loggable.
func (s Signature) Redacted() string {
	if s.Email == "" {
		return s.Name
	}
	return fmt.Sprintf("%s <%s>", s.Name, redactEmail(s.Email))
}

func redactEmail(email string) string {
	idx := strings.IndexByte(email, '@')
	if idx <= 0 {
		return "[INVALID]"
	}
	if idx == 1 {
		return "*@" + email[idx+1:]
	}
	return string(email[0]) + "***@" + email[idx+1:]
}

// TypeName returns "Signature". Implements model.Identifiable.
func (s Signature) TypeName() string {
	return "Signature"
}

// IsZero reports whether all fields carry their zero value. Implements
// model.ZeroCheckable.
func (s Signature) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.When.IsZero()
}

// Equal reports whether two signatures carry the same name, email, and
// instant (timestamps compare with time.Time.Equal, so differing zones of
// the same instant are equal).
func (s Signature) Equal(other Signature) bool {
	return s.Name == other.Name && s.Email == other.Email && s.When.Equal(other.When)
}

// Validate requires a non-empty Name; Email and When are optional because
// not every history export carries them. Implements model.Validatable.
func (s Signature) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &errors.ValidationError{Type: "Signature", Field: "Name", Reason: "must not be empty"}
	}
	return nil
}

// MarshalJSON serializes a valid Signature. Implements json.Marshaler.
func (s Signature) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Signature
	return json.Marshal(alias(s))
}

// UnmarshalJSON decodes and validates a Signature. Implements
// json.Unmarshaler.
func (s *Signature) UnmarshalJSON(data []byte) error {
	type alias Signature
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Signature", Data: data, Reason: err.Error()}
	}
	*s = Signature(tmp)
	return s.Validate()
}

// MarshalYAML serializes a valid Signature. Implements yaml.Marshaler.
func (s Signature) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Signature
	return alias(s), nil
}

// UnmarshalYAML decodes and validates a Signature. Implements
// yaml.Unmarshaler.
func (s *Signature) UnmarshalYAML(node *yaml.Node) error {
	type alias Signature
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Signature", Reason: err.Error()}
	}
	*s = Signature(tmp)
	return s.Validate()
}
