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

package commits

import (
	"regexp"

	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/conventional"
	"dirpx.dev/dxsem/dxcore/model/git"
)

// Classify reads one commit against the conventional grammar.
//
// The header (first message line) is parsed with conventional.ParseHeader;
// a non-matching header degrades to an unconventional classification whose
// description is the trimmed header line. The breaking scan runs over
// EVERY line of the message regardless of the header's shape, so a plain
// "update stuff" commit with a "BREAKING CHANGE:" footer still counts as
// breaking. A nil pattern disables the body scan.
//
// Classify is total; it never fails.
func Classify(commit git.Commit, breaking *regexp.Regexp) Classification {
	cl := Classification{
		Description: commit.Summary(),
		Source:      commit,
	}

	if h, ok := conventional.ParseHeader(commit.Summary()); ok {
		cl.Conventional = true
		cl.Type = h.Type
		cl.Scope = h.Scope
		cl.Description = h.Description
		cl.Breaking = h.Breaking
	}

	if !cl.Breaking && breaking != nil {
		for _, line := range commit.Lines() {
			if breaking.MatchString(line) {
				cl.Breaking = true
				break
			}
		}
	}

	return cl
}

// Parse classifies a commit sequence in order under the given rules.
//
// When a scope inclusion pattern is configured, only classifications
// whose whole scope matches it survive; scopeless and unconventional
// commits are excluded while the filter is active. Input order is
// preserved. The only failure mode is a rule set whose patterns do not
// compile.
func Parse(commits []git.Commit, cfg config.Commits) ([]Classification, error) {
	breaking, err := cfg.BreakingRegexp()
	if err != nil {
		return nil, err
	}
	scope, err := cfg.ScopeRegexp()
	if err != nil {
		return nil, err
	}

	parsed := make([]Classification, 0, len(commits))
	for _, commit := range commits {
		cl := Classify(commit, breaking)
		if scope != nil && (cl.Scope == "" || !scope.MatchString(cl.Scope)) {
			continue
		}
		parsed = append(parsed, cl)
	}
	return parsed, nil
}
