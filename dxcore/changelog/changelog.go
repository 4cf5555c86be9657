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

// Package changelog assembles Markdown release notes from classified
// commits.
//
// The renderer is deterministic: sections appear in a fixed order, the
// entries inside a section keep the order the commits arrived in, and
// the same classifications always produce byte-identical output.
package changelog

import (
	"fmt"
	"strings"
	"time"

	"dirpx.dev/dxsem/dxcore/commits"
	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/conventional"
	"dirpx.dev/dxsem/dxcore/model/semver"
)

const (
	// OtherBucket is the reserved group key for commits that did not match
	// the conventional grammar.
	OtherBucket = "other"

	breakingLabel = "⚠️ Breaking Changes"
	otherLabel    = "📝 Other"
)

// sectionOrder fixes the render order of the per-type sections. It MUST
// agree with conventional.Type.SectionPriority; a test enforces this.
var sectionOrder = []conventional.Type{
	conventional.Feat,
	conventional.Fix,
	conventional.Perf,
	conventional.Docs,
	conventional.Refactor,
	conventional.Test,
	conventional.Build,
	conventional.CI,
	conventional.Style,
	conventional.Chore,
}

// GroupByType buckets classifications by their type token, preserving
// input order inside every bucket. Unconventional commits land under
// OtherBucket. Custom conventional types keep their own key; whether a
// renderer gives them a section is the renderer's business.
func GroupByType(classifications []commits.Classification) map[string][]commits.Classification {
	groups := make(map[string][]commits.Classification)
	for _, cl := range classifications {
		key := cl.Type
		if !cl.Conventional {
			key = OtherBucket
		}
		groups[key] = append(groups[key], cl)
	}
	return groups
}

// Breaking returns the breaking classifications in input order.
func Breaking(classifications []commits.Classification) []commits.Classification {
	var out []commits.Classification
	for _, cl := range classifications {
		if cl.Breaking {
			out = append(out, cl)
		}
	}
	return out
}

// Render produces the Markdown release notes for one version:
//
//	## [1.2.0] - 2026-03-14
//
//	### ⚠️ Breaking Changes
//	...
//
//	### ✨ Features
//	...
//
// The breaking section comes first and owns its commits: a commit listed
// there never repeats in its type section. Per-type sections follow in
// the fixed order, then the unconventional bucket under "📝 Other".
// Empty sections are omitted, and an empty classification set renders
// the empty string.
func Render(classifications []commits.Classification, version semver.Version, date time.Time, opts config.Changelog) string {
	if len(classifications) == 0 {
		return ""
	}

	groups := GroupByType(classifications)
	breaking := Breaking(classifications)

	var b strings.Builder
	fmt.Fprintf(&b, "## [%s] - %s\n", version, date.Format("2006-01-02"))

	writeSection(&b, breakingLabel, breaking, opts)
	for _, typ := range sectionOrder {
		writeSection(&b, typ.Label(), withoutBreaking(groups[typ.String()]), opts)
	}
	writeSection(&b, otherLabel, withoutBreaking(groups[OtherBucket]), opts)

	return b.String()
}

func writeSection(b *strings.Builder, label string, entries []commits.Classification, opts config.Changelog) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n### ")
	b.WriteString(label)
	b.WriteString("\n\n")
	for _, cl := range entries {
		b.WriteString(commits.Format(cl, opts))
		b.WriteString("\n")
	}
}

func withoutBreaking(entries []commits.Classification) []commits.Classification {
	var out []commits.Classification
	for _, cl := range entries {
		if !cl.Breaking {
			out = append(out, cl)
		}
	}
	return out
}
