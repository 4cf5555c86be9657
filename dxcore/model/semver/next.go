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

package semver

import (
	"dirpx.dev/dxsem/dxcore/errors"
	"dirpx.dev/dxsem/dxcore/model/change"
)

// NextOptions control how Next resolves the release version beyond the
// plain bump arithmetic.
type NextOptions struct {
	// Override, when non-nil, is a manually chosen version that wins over
	// every other rule (the "--version" escape hatch).
	Override *Version

	// FirstRelease indicates that no release exists yet; the Initial
	// version is used as-is instead of bumping Current.
	FirstRelease bool

	// Initial is the version of the first release. Only consulted when
	// FirstRelease is true.
	Initial Version

	// Prerelease, when non-empty, is appended as the prerelease label of
	// whatever version the other rules produce.
	Prerelease string
}

// Next resolves the version of the upcoming release from the current
// version and the calculated bump severity.
//
// Resolution order:
//
//  1. opts.Override, when set, is returned (with the prerelease label
//     applied) regardless of bump.
//  2. opts.FirstRelease uses opts.Initial unchanged: the very first
//     release ships the configured initial version no matter what the
//     commits contributed.
//  3. Otherwise the bump is applied to current. BumpNone here is a caller
//     error, exactly as with Version.Apply: whether an empty bump blocks
//     the release is release policy and must be decided before calling.
//
// The prerelease label from opts, when non-empty, is applied last in every
// branch.
func Next(current Version, b change.Bump, opts NextOptions) (Version, error) {
	next, err := resolveNext(current, b, opts)
	if err != nil {
		return Version{}, err
	}
	if opts.Prerelease != "" {
		next = next.WithPrerelease(opts.Prerelease)
	}
	if err := next.Validate(); err != nil {
		return Version{}, err
	}
	return next, nil
}

func resolveNext(current Version, b change.Bump, opts NextOptions) (Version, error) {
	if opts.Override != nil {
		return *opts.Override, nil
	}
	if opts.FirstRelease {
		return opts.Initial, nil
	}
	if b == change.BumpNone {
		return Version{}, &errors.ValidationError{
			Type:   "Version",
			Reason: "cannot resolve next version for a none bump without an override or first release",
			Value:  current.String(),
		}
	}
	return current.Apply(b)
}
