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

// Package config holds the value objects that parameterize the dxsem
// engine: commit classification rules, title validation policy, changelog
// rendering options, and the version scheme.
//
// Configuration is data, not behavior: every section is a plain struct
// with JSON and YAML tags, produced by a Default* constructor and handed
// to the engine by value. There are no mutable package-level defaults.
package config

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model"
	"dirpx.dev/dxsem/dxcore/model/conventional"
	"dirpx.dev/dxsem/dxcore/model/semver"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBreakingPattern matches the breaking-change footer marker in
	// commit bodies, accepting both "BREAKING CHANGE:" and
	// "BREAKING-CHANGE:".
	DefaultBreakingPattern = `BREAKING[ -]CHANGE:`

	// DefaultInitialVersion is the version assigned to a project's first
	// release when no override is supplied.
	DefaultInitialVersion = "0.1.0"

	// DefaultTagPrefix is prepended to versions when forming tag names.
	DefaultTagPrefix = "v"
)

// Commits configures commit classification and bump severity.
type Commits struct {
	// BreakingPattern is the regular expression scanned against every
	// line of a commit message to detect a breaking change. Must compile.
	BreakingPattern string `json:"breaking_pattern" yaml:"breaking_pattern"`

	// TypesMajor lists commit types that force a major bump even without
	// a breaking marker. Empty by default.
	TypesMajor []string `json:"types_major,omitempty" yaml:"types_major,omitempty"`

	// TypesMinor lists commit types that request a minor bump.
	TypesMinor []string `json:"types_minor,omitempty" yaml:"types_minor,omitempty"`

	// TypesPatch lists commit types that request a patch bump.
	TypesPatch []string `json:"types_patch,omitempty" yaml:"types_patch,omitempty"`

	// ScopePattern, when non-empty, restricts parsing to classifications
	// whose scope matches this regular expression. Scopeless commits are
	// excluded while the filter is active.
	ScopePattern string `json:"scope_pattern,omitempty" yaml:"scope_pattern,omitempty"`

	// SkipMarkers lists substrings whose presence anywhere in a commit
	// message (matched case-insensitively) removes the commit from
	// release consideration.
	SkipMarkers []string `json:"skip_markers,omitempty" yaml:"skip_markers,omitempty"`
}

// DefaultCommits returns the classification rules of a stock setup:
// feat is minor, fix and perf are patch, nothing is major by type, the
// standard breaking marker, and the three common skip markers.
func DefaultCommits() Commits {
	return Commits{
		BreakingPattern: DefaultBreakingPattern,
		TypesMinor:      []string{"feat"},
		TypesPatch:      []string{"fix", "perf"},
		SkipMarkers:     []string{"[skip release]", "[release skip]", "[no release]"},
	}
}

// BreakingRegexp compiles the breaking-change pattern. A valid Commits
// value always compiles; the error path exists for hand-built values.
func (c Commits) BreakingRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.BreakingPattern)
	if err != nil {
		return nil, &errors.ParseError{Type: "Commits.BreakingPattern", Value: c.BreakingPattern, Reason: err.Error()}
	}
	return re, nil
}

// ScopeRegexp compiles the scope inclusion pattern, or returns (nil, nil)
// when no pattern is configured. The pattern is anchored so that a scope
// is kept only when the whole scope matches.
func (c Commits) ScopeRegexp() (*regexp.Regexp, error) {
	if c.ScopePattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`\A(?:` + c.ScopePattern + `)\z`)
	if err != nil {
		return nil, &errors.ParseError{Type: "Commits.ScopePattern", Value: c.ScopePattern, Reason: err.Error()}
	}
	return re, nil
}

// Validate requires a compilable breaking pattern, a compilable scope
// pattern when one is set, and no blank entries in the type lists or
// skip markers.
func (c Commits) Validate() error {
	if c.BreakingPattern == "" {
		return &errors.ValidationError{Type: "Commits", Field: "BreakingPattern", Reason: "must not be empty"}
	}
	if _, err := c.BreakingRegexp(); err != nil {
		return &errors.ValidationError{Type: "Commits", Field: "BreakingPattern", Reason: err.Error(), Value: c.BreakingPattern}
	}
	if _, err := c.ScopeRegexp(); err != nil {
		return &errors.ValidationError{Type: "Commits", Field: "ScopePattern", Reason: err.Error(), Value: c.ScopePattern}
	}
	for field, list := range map[string][]string{
		"TypesMajor":  c.TypesMajor,
		"TypesMinor":  c.TypesMinor,
		"TypesPatch":  c.TypesPatch,
		"SkipMarkers": c.SkipMarkers,
	} {
		for i, entry := range list {
			if strings.TrimSpace(entry) == "" {
				return &errors.ValidationError{
					Type:   "Commits",
					Field:  field,
					Reason: fmt.Sprintf("entry %d must not be blank", i),
				}
			}
		}
	}
	return nil
}

// Title configures change-request title validation.
type Title struct {
	// AllowedTypes is the set of acceptable commit types, matched
	// case-insensitively. Empty means the well-known conventional types.
	AllowedTypes []string `json:"allowed_types,omitempty" yaml:"allowed_types,omitempty"`

	// MaxLength caps the raw (untrimmed) title length in characters. Zero
	// disables the length check.
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty"`

	// RequireScope rejects titles without a parenthesized scope.
	RequireScope bool `json:"require_scope,omitempty" yaml:"require_scope,omitempty"`
}

// DefaultTitle returns the stock title policy: the well-known
// conventional types, no length cap, scope optional.
func DefaultTitle() Title {
	return Title{AllowedTypes: conventional.KnownTypeNames()}
}

// Validate requires a non-negative MaxLength and no blank allowed types.
func (t Title) Validate() error {
	if t.MaxLength < 0 {
		return &errors.ValidationError{Type: "Title", Field: "MaxLength", Reason: "must not be negative", Value: t.MaxLength}
	}
	for i, entry := range t.AllowedTypes {
		if strings.TrimSpace(entry) == "" {
			return &errors.ValidationError{
				Type:   "Title",
				Field:  "AllowedTypes",
				Reason: fmt.Sprintf("entry %d must not be blank", i),
			}
		}
	}
	return nil
}

// Changelog configures changelog line rendering.
type Changelog struct {
	// IncludeScope prefixes entries with their bolded scope.
	IncludeScope bool `json:"include_scope" yaml:"include_scope"`

	// IncludeSHA appends the short commit id to each entry.
	IncludeSHA bool `json:"include_sha" yaml:"include_sha"`
}

// DefaultChangelog returns the stock rendering options: scopes shown,
// commit ids hidden.
func DefaultChangelog() Changelog {
	return Changelog{IncludeScope: true}
}

// Validate always succeeds; both fields are free booleans. Present so
// the aggregate can treat every section uniformly.
func (c Changelog) Validate() error {
	return nil
}

// Version configures the version scheme.
type Version struct {
	// Initial is the version of the first release.
	Initial semver.Version `json:"initial" yaml:"initial"`

	// TagPrefix is prepended to the version when forming a tag name.
	TagPrefix string `json:"tag_prefix" yaml:"tag_prefix"`

	// Prerelease, when non-empty, is the prerelease label applied to
	// computed versions (e.g. "rc.1").
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
}

// DefaultVersion returns the stock version scheme: first release 0.1.0,
// tags prefixed with "v", no prerelease label.
func DefaultVersion() Version {
	return Version{
		Initial:   semver.MustParseVersion(DefaultInitialVersion),
		TagPrefix: DefaultTagPrefix,
	}
}

// Tag returns the tag name for a version under this scheme.
func (v Version) Tag(ver semver.Version) string {
	return v.TagPrefix + ver.String()
}

// Validate requires a valid, non-zero initial version. 0.0.0 is a legal
// semantic version but a meaningless first release.
func (v Version) Validate() error {
	if v.Initial.IsZero() {
		return &errors.ValidationError{Type: "Version", Field: "Initial", Reason: "must not be zero"}
	}
	if err := v.Initial.Validate(); err != nil {
		return &errors.ValidationError{Type: "Version", Field: "Initial", Reason: err.Error()}
	}
	return nil
}

// Config aggregates every section the engine consumes.
//
// This type implements the model.Model interface.
type Config struct {
	Commits   Commits   `json:"commits" yaml:"commits"`
	Title     Title     `json:"title" yaml:"title"`
	Changelog Changelog `json:"changelog" yaml:"changelog"`
	Version   Version   `json:"version" yaml:"version"`
}

// Compile-time check that Config implements model.Model.
var _ model.Model = (*Config)(nil)

// Default returns a fully populated configuration with every section at
// its stock value. The result is a fresh value on every call.
func Default() Config {
	return Config{
		Commits:   DefaultCommits(),
		Title:     DefaultTitle(),
		Changelog: DefaultChangelog(),
		Version:   DefaultVersion(),
	}
}

// Validate checks every section and reports all failures together rather
// than stopping at the first. Implements model.Validatable.
func (c Config) Validate() error {
	var err error
	if e := c.Commits.Validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("commits: %w", e))
	}
	if e := c.Title.Validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("title: %w", e))
	}
	if e := c.Changelog.Validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("changelog: %w", e))
	}
	if e := c.Version.Validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("version: %w", e))
	}
	return err
}

// String summarizes the configuration for diagnostics.
func (c Config) String() string {
	return fmt.Sprintf("Config{minor=%v patch=%v major=%v initial=%s}",
		c.Commits.TypesMinor, c.Commits.TypesPatch, c.Commits.TypesMajor, c.Version.Initial)
}

// Redacted returns the same representation as String; configuration
// carries no sensitive data. Implements model.Loggable.
func (c Config) Redacted() string {
	return c.String()
}

// TypeName returns "Config". Implements model.Identifiable.
func (c Config) TypeName() string {
	return "Config"
}

// MarshalJSON serializes a valid Config. Implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return json.Marshal(alias(c))
}

// UnmarshalJSON decodes and validates a Config. Implements
// json.Unmarshaler.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: "Config", Data: data, Reason: err.Error()}
	}
	*c = Config(tmp)
	return c.Validate()
}

// MarshalYAML serializes a valid Config. Implements yaml.Marshaler.
func (c Config) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return alias(c), nil
}

// UnmarshalYAML decodes and validates a Config. Implements
// yaml.Unmarshaler.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type alias Config
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: "Config", Reason: err.Error()}
	}
	*c = Config(tmp)
	return c.Validate()
}

// IsZero reports whether no section has been populated. Implements
// model.ZeroCheckable. A zero Config is NOT valid; use Default.
func (c Config) IsZero() bool {
	return c.Commits.BreakingPattern == "" &&
		len(c.Commits.TypesMajor) == 0 &&
		len(c.Commits.TypesMinor) == 0 &&
		len(c.Commits.TypesPatch) == 0 &&
		c.Commits.ScopePattern == "" &&
		len(c.Commits.SkipMarkers) == 0 &&
		len(c.Title.AllowedTypes) == 0 &&
		c.Title.MaxLength == 0 &&
		!c.Title.RequireScope &&
		!c.Changelog.IncludeScope &&
		!c.Changelog.IncludeSHA &&
		c.Version.Initial.IsZero() &&
		c.Version.TagPrefix == "" &&
		c.Version.Prerelease == ""
}
