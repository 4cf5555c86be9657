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

// Package conventional implements the Conventional Commits grammar dxsem
// applies to commit headers and change-request titles, along with the
// vocabulary of well-known commit types.
//
// The grammar is deliberately total at the call sites that consume commit
// history: ParseHeader reports a boolean instead of an error, and callers
// degrade a non-matching header to a "not conventional" classification
// rather than failing, so the pipeline handles arbitrary history.
package conventional

import (
	"regexp"
	"strings"
)

const (
	// headerPattern is the grammar applied to the first line of a commit
	// message or to a change-request title:
	//
	//   <type>[(<scope>)][!]: <description>
	//
	// Capture groups:
	//   1. type: one or more ASCII letters, matched case-insensitively
	//      and normalized to lowercase by ParseHeader
	//   2. scope: optional parenthesized scope, no closing paren inside,
	//      preserved as written
	//   3. breaking: optional "!" immediately before the separator
	//   4. description: the rest of the line after ": "
	//
	// Matching examples:
	//   "feat: add new feature"
	//   "fix(auth): resolve login issue"
	//   "FEAT!: breaking change"     (type normalizes to "feat")
	//   "fix(api)!: breaking fix"
	//
	// The pattern alone admits a whitespace-only description through
	// backtracking ("feat:   " matches with description " "); ParseHeader
	// trims the description and treats an empty result as a non-match, so
	// the effective grammar requires a non-empty description.
	headerPattern = `^([A-Za-z]+)(?:\(([^)]+)\))?(!)?:\s*(.+)$`
)

// HeaderRegexp is the compiled header grammar. Safe for concurrent use;
// treat as a read-only process-wide singleton. Callers SHOULD prefer
// ParseHeader, which adds normalization and the empty-description rule.
var HeaderRegexp = regexp.MustCompile(headerPattern)

// Header is the structured form of a conventional commit header line.
type Header struct {
	// Type is the commit type token, normalized to lowercase. The grammar
	// does not restrict it to the well-known vocabulary; custom types
	// ("remove", "deps") parse fine and are constrained only by callers
	// that enforce an allowed set.
	Type string

	// Scope is the optional parenthesized scope, preserved exactly as
	// written. Empty when the header carries no scope.
	Scope string

	// Breaking reports the "!" marker before the separator.
	Breaking bool

	// Description is the summary after the separator, trimmed of
	// surrounding whitespace. Never empty for a parsed header.
	Description string
}

// ParseHeader applies the header grammar to one line of text.
//
// The line is trimmed before matching. On a match, the type token is
// lowercased, the scope is kept as written, and the description is
// trimmed; a description that trims to empty is treated as a non-match.
// ParseHeader is total: any shape that does not fit the grammar simply
// returns ok=false, it never fails.
func ParseHeader(line string) (Header, bool) {
	matches := HeaderRegexp.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return Header{}, false
	}

	description := strings.TrimSpace(matches[4])
	if description == "" {
		return Header{}, false
	}

	return Header{
		Type:        strings.ToLower(matches[1]),
		Scope:       matches[2],
		Breaking:    matches[3] == "!",
		Description: description,
	}, true
}

// String renders the header back into its canonical textual form.
func (h Header) String() string {
	s := h.Type
	if h.Scope != "" {
		s += "(" + h.Scope + ")"
	}
	if h.Breaking {
		s += "!"
	}
	return s + ": " + h.Description
}
