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

	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/change"
)

// CalculateBump derives the aggregate version bump from a set of
// classifications.
//
// Per classification: breaking forces a major bump; otherwise the type is
// looked up (case-insensitively) in the configured severity lists, major
// first. A type in no list contributes nothing, and so does an
// unconventional, non-breaking commit. The result is the maximum over all
// contributions, so it is order-independent, and adding a commit can only
// raise it. An empty set yields BumpNone.
func CalculateBump(classifications []Classification, cfg config.Commits) change.Bump {
	result := change.BumpNone
	for _, cl := range classifications {
		result = change.Max(result, bumpFor(cl, cfg))
		if result == change.BumpMajor {
			break
		}
	}
	return result
}

func bumpFor(cl Classification, cfg config.Commits) change.Bump {
	if cl.Breaking {
		return change.BumpMajor
	}
	switch {
	case containsFold(cfg.TypesMajor, cl.Type):
		return change.BumpMajor
	case containsFold(cfg.TypesMinor, cl.Type):
		return change.BumpMinor
	case containsFold(cfg.TypesPatch, cl.Type):
		return change.BumpPatch
	default:
		return change.BumpNone
	}
}

func containsFold(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, entry := range list {
		if strings.EqualFold(entry, s) {
			return true
		}
	}
	return false
}
