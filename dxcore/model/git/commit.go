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

// Package git defines the raw commit values the dxsem engine consumes.
//
// The engine never talks to a repository: an ordered sequence of Commit
// values is handed over by the version-control collaborator, and the
// engine treats them as immutable input. Identity is an opaque SHA string
// rather than a validated object id, because the engine only ever echoes
// it back (shortened) into changelog lines.
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

const (
	// CommitMessageMaxLen is the maximum accepted commit message length in
	// bytes. 1MB leaves ample room for extended descriptions and trailers
	// while rejecting pathological payloads before classification.
	CommitMessageMaxLen = 1048576

	// ShortSHALen is the number of leading characters ShortSHA returns,
	// matching the short-id convention of git log and changelog lines.
	ShortSHALen = 7
)

// Commit is one raw commit as supplied by the version-control
// collaborator: an opaque identifier, the full message (header plus
// optional body), the author signature, and the commit timestamp.
//
// This type implements the model.Model interface. Commit values are
// immutable inputs: the engine classifies and filters them but never
// rewrites them, and it preserves the order in which the collaborator
// supplied them.
type Commit struct {
	// SHA is the opaque commit identifier. Required; the engine does not
	// enforce a hash format, only non-emptiness.
	SHA string `json:"sha" yaml:"sha"`

	// Message is the full commit message: the header line, optionally
	// followed by a blank line and a body. Required.
	Message string `json:"message" yaml:"message"`

	// Author is the author signature recorded with the commit.
	Author Signature `json:"author" yaml:"author"`

	// When is the commit timestamp.
	When time.Time `json:"when" yaml:"when"`
}

// Compile-time check that Commit implements model.Model.
var _ model.Model = (*Commit)(nil)

// Summary returns the trimmed first line of the commit message, the
// header the conventional-commit grammar is applied to.
func (c Commit) Summary() string {
	msg := strings.ReplaceAll(c.Message, "\r\n", "\n")
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		msg = msg[:idx]
	}
	return strings.TrimSpace(msg)
}

// Lines returns every line of the commit message with line endings
// normalized to LF. Used by breaking-marker and skip-marker scans, which
// inspect the whole message rather than only the header.
func (c Commit) Lines() []string {
	return strings.Split(strings.ReplaceAll(c.Message, "\r\n", "\n"), "\n")
}

// ShortSHA returns the first ShortSHALen characters of the identifier, or
// the whole identifier when it is shorter.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= ShortSHALen {
		return c.SHA
	}
	return c.SHA[:ShortSHALen]
}

// String returns a single-line form "sha summary" with the full SHA.
func (c Commit) String() string {
	return fmt.Sprintf("%s %s", c.SHA, c.Summary())
}

// Redacted returns "shortsha summary". The summary is commit text chosen
// by the committer and the author signature is omitted, so the redacted
// form carries no email addresses. Implements model.Loggable.
func (c Commit) Redacted() string {
	return fmt.Sprintf("%s %s", c.ShortSHA(), c.Summary())
}

// TypeName returns "Commit". Implements model.Identifiable.
func (c Commit) TypeName() string {
	return "Commit"
}

// IsZero reports whether the Commit carries no data at all. Implements
// model.ZeroCheckable.
func (c Commit) IsZero() bool {
	return c.SHA == "" && c.Message == "" && c.Author.IsZero() && c.When.IsZero()
}

// Equal reports whether two commits carry the same identity and content.
func (c Commit) Equal(other Commit) bool {
	return c.SHA == other.SHA &&
		c.Message == other.Message &&
		c.Author.Equal(other.Author) &&
		c.When.Equal(other.When)
}

// Validate requires a non-empty SHA and a non-empty message no longer
// than CommitMessageMaxLen; the author signature, when present, must be
// valid. Implements model.Validatable.
func (c Commit) Validate() error {
	if c.SHA == "" {
		return &errors.ValidationError{Type: "Commit", Field: "SHA", Reason: "must not be empty"}
	}
	if strings.TrimSpace(c.Message) == "" {
		return &errors.ValidationError{Type: "Commit", Field: "Message", Reason: "must not be empty"}
	}
	if len(c.Message) > CommitMessageMaxLen {
		return &errors.ValidationError{
			Type:   "Commit",
			Field:  "Message",
			Reason: fmt.Sprintf("must not exceed %d bytes", CommitMessageMaxLen),
			Value:  len(c.Message),
		}
	}
	if !c.Author.IsZero() {
		if err := c.Author.Validate(); err != nil {
			return fmt.Errorf("invalid Commit.Author: %w", err)
		}
	}
	return nil
}

// MarshalJSON serializes a valid Commit. Implements json.Marshaler.
func (c Commit) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Commit
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes and validates a Commit. Implements
// json.Unmarshaler.
func (c *Commit) UnmarshalJSON(data []byte) error {
	type alias Commit
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Commit", Data: data, Reason: err.Error()}
	}
	*c = Commit(tmp)
	return c.Validate()
}

// MarshalYAML serializes a valid Commit. Implements yaml.Marshaler.
func (c Commit) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Commit
	return alias(c), nil
}

// UnmarshalYAML decodes and validates a Commit. Implements
// yaml.Unmarshaler.
func (c *Commit) UnmarshalYAML(node *yaml.Node) error {
	type alias Commit
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Commit", Reason: err.Error()}
	}
	*c = Commit(tmp)
	return c.Validate()
}
