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
	"strings"

	"dirpx.dev/dxsem/dxcore/model/git"
)

// FilterSkipRelease removes commits whose message contains any of the
// given markers. Matching is case-insensitive substring containment over
// the full message, so a marker buried in the body counts.
//
// The relative order of surviving commits is preserved, an empty marker
// list returns the input unchanged, and the filter is idempotent. The
// returned slice is always freshly allocated.
func FilterSkipRelease(commits []git.Commit, markers []string) []git.Commit {
	kept := make([]git.Commit, 0, len(commits))
	if len(markers) == 0 {
		return append(kept, commits...)
	}

	lowered := make([]string, len(markers))
	for i, m := range markers {
		lowered[i] = strings.ToLower(m)
	}

	for _, commit := range commits {
		message := strings.ToLower(commit.Message)
		skip := false
		for _, marker := range lowered {
			if strings.Contains(message, marker) {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, commit)
		}
	}
	return kept
}
