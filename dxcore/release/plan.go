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

// Package release plans a release from raw history: it runs the skip
// filter, classification, bump calculation, version computation, and
// changelog assembly as one pipeline and reports the combined outcome.
//
// Plan is a pure function over its request. It never consults a
// repository, a clock, or any global state, which is what makes release
// decisions reproducible after the fact.
package release

import (
	"time"

	"dirpx.dev/dxsem/dxcore/changelog"
	"dirpx.dev/dxsem/dxcore/commits"
	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model"
	"dirpx.dev/dxsem/dxcore/model/change"
	"dirpx.dev/dxsem/dxcore/model/git"
	"dirpx.dev/dxsem/dxcore/model/semver"
)

// Request carries everything a release decision depends on.
type Request struct {
	// Current is the latest released version. Ignored for a first
	// release.
	Current semver.Version

	// FirstRelease marks a project with no prior release; the next
	// version is the configured initial version regardless of the bump.
	FirstRelease bool

	// Override, when non-nil, is the exact version to release. It wins
	// over both the bump calculation and the first-release rule.
	Override *semver.Version

	// Commits is the history since the last release, oldest first.
	Commits []git.Commit

	// Config is the full engine configuration.
	Config config.Config

	// Date is stamped into the changelog header.
	Date time.Time
}

// Decision is the planned outcome.
type Decision struct {
	// Release reports whether a release should happen at all. When
	// false, only Bump, Skipped, and Classifications are meaningful.
	Release bool

	// Bump is the aggregate severity derived from the classified commits.
	Bump change.Bump

	// Next is the version to release. Zero when Release is false.
	Next semver.Version

	// Tag is Next rendered under the configured tag scheme.
	Tag string

	// Skipped counts commits removed by the skip-release filter.
	Skipped int

	// Classifications are the parsed commits that informed the decision,
	// in input order, after skip and scope filtering.
	Classifications []commits.Classification

	// Changelog is the rendered release notes. Empty when Release is
	// false or no classification survived filtering.
	Changelog string
}

// Plan derives a release decision from the request.
//
// The pipeline order follows the release flow: validate inputs, drop
// skip-marked commits, classify the survivors, compute the aggregate
// bump, then the next version (override wins, then the first-release
// rule, then applying the bump), and finally render the changelog for
// that version. A BumpNone outcome with no override and no first release
// means no release: the decision comes back with Release false and no
// version or changelog.
func Plan(req Request) (Decision, error) {
	if err := req.Config.Validate(); err != nil {
		return Decision{}, err
	}
	refs := make([]*git.Commit, len(req.Commits))
	for i := range req.Commits {
		refs[i] = &req.Commits[i]
	}
	if err := model.ValidateAll(refs); err != nil {
		return Decision{}, err
	}

	remaining := commits.FilterSkipRelease(req.Commits, req.Config.Commits.SkipMarkers)
	skipped := len(req.Commits) - len(remaining)

	parsed, err := commits.Parse(remaining, req.Config.Commits)
	if err != nil {
		return Decision{}, err
	}
	bump := commits.CalculateBump(parsed, req.Config.Commits)

	if bump == change.BumpNone && req.Override == nil && !req.FirstRelease {
		return Decision{Bump: bump, Skipped: skipped, Classifications: parsed}, nil
	}

	next, err := semver.Next(req.Current, bump, semver.NextOptions{
		Override:     req.Override,
		FirstRelease: req.FirstRelease,
		Initial:      req.Config.Version.Initial,
		Prerelease:   req.Config.Version.Prerelease,
	})
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Release:         true,
		Bump:            bump,
		Next:            next,
		Tag:             req.Config.Version.Tag(next),
		Skipped:         skipped,
		Classifications: parsed,
		Changelog:       changelog.Render(parsed, next, req.Date, req.Config.Changelog),
	}, nil
}
