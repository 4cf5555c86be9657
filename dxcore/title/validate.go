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

package title

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/conventional"
)

// Result is the outcome of validating one title. A valid Result carries
// the parsed grammar fields; an invalid one carries the Issue and
// whatever fields had been recovered before the failing rule.
type Result struct {
	// Valid reports whether every rule passed.
	Valid bool `json:"valid" yaml:"valid"`

	// Issue describes the first rule that failed. Nil when Valid.
	Issue *Issue `json:"issue,omitempty" yaml:"issue,omitempty"`

	// Type is the lowercase commit type, set once the grammar matched.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Scope is the scope as written, set once the grammar matched.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`

	// Description is the summary text, set once the grammar matched.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Breaking reports the "!" marker, set once the grammar matched.
	Breaking bool `json:"breaking,omitempty" yaml:"breaking,omitempty"`
}

// Options configures the validation policy. The zero value means: the
// well-known conventional types, no length cap, scope optional.
type Options struct {
	// AllowedTypes is the acceptable type vocabulary, matched
	// case-insensitively. Empty means conventional.KnownTypeNames().
	AllowedTypes []string

	// MaxLength caps the raw (untrimmed) title length, counted in
	// characters rather than bytes; zero disables the check.
	MaxLength int

	// RequireScope rejects titles without a parenthesized scope.
	RequireScope bool
}

// OptionsFromConfig maps a config.Title section onto validation options.
func OptionsFromConfig(cfg config.Title) Options {
	return Options{
		AllowedTypes: cfg.AllowedTypes,
		MaxLength:    cfg.MaxLength,
		RequireScope: cfg.RequireScope,
	}
}

// rule is one step of the validation chain. It either fills in parts of
// the result and returns nil, or returns the Issue that stops the chain.
type rule func(title string, opts Options, r *Result) *Issue

// ruleChain is ordered; the first failing rule wins and later rules never
// run. Format problems therefore mask type problems, type problems mask
// scope problems, and the length check runs last.
var ruleChain = []rule{
	checkNotEmpty,
	checkGrammar,
	checkAllowedType,
	checkScope,
	checkLength,
}

// Validate runs the rule chain against one title and reports the
// outcome. It never returns a Go error; malformed titles are ordinary
// results.
func Validate(title string, opts Options) Result {
	r := Result{}
	for _, check := range ruleChain {
		if issue := check(title, opts, &r); issue != nil {
			r.Issue = issue
			return r
		}
	}
	r.Valid = true
	return r
}

// ValidateBatch validates every title independently. The returned slice
// is index-aligned with the input; one bad title never affects the
// others.
func ValidateBatch(titles []string, opts Options) []Result {
	results := make([]Result, len(titles))
	for i, title := range titles {
		results[i] = Validate(title, opts)
	}
	return results
}

func checkNotEmpty(title string, _ Options, _ *Result) *Issue {
	if strings.TrimSpace(title) == "" {
		return &Issue{Kind: EmptyTitle, Message: "PR title cannot be empty"}
	}
	return nil
}

func checkGrammar(title string, _ Options, r *Result) *Issue {
	h, ok := conventional.ParseHeader(title)
	if !ok {
		return &Issue{
			Kind:    NotConventionalFormat,
			Message: "PR title does not follow the conventional commit format: type(scope): description",
		}
	}
	r.Type = h.Type
	r.Scope = h.Scope
	r.Description = h.Description
	r.Breaking = h.Breaking
	return nil
}

func checkAllowedType(_ string, opts Options, r *Result) *Issue {
	allowed := opts.AllowedTypes
	if len(allowed) == 0 {
		allowed = conventional.KnownTypeNames()
	}
	for _, t := range allowed {
		if strings.EqualFold(t, r.Type) {
			return nil
		}
	}
	return &Issue{
		Kind:    InvalidCommitType,
		Message: fmt.Sprintf("Invalid commit type: %q. Allowed types: %s", r.Type, strings.Join(allowed, ", ")),
	}
}

func checkScope(_ string, opts Options, r *Result) *Issue {
	if opts.RequireScope && r.Scope == "" {
		return &Issue{Kind: MissingScope, Message: "PR title must include a scope, e.g. feat(scope): description"}
	}
	return nil
}

func checkLength(title string, opts Options, _ *Result) *Issue {
	length := utf8.RuneCountInString(title)
	if opts.MaxLength > 0 && length > opts.MaxLength {
		return &Issue{
			Kind:    TitleTooLong,
			Message: fmt.Sprintf("PR title exceeds %d characters (got %d)", opts.MaxLength, length),
		}
	}
	return nil
}
