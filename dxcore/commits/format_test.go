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
	"testing"

	"dirpx.dev/dxsem/dxcore/config"
)

func TestFormat(t *testing.T) {
	feat := Classification{
		Conventional: true,
		Type:         "feat",
		Description:  "add user authentication",
		Source:       testCommit("feat1234abcd", "feat: add user authentication"),
	}
	scoped := Classification{
		Conventional: true,
		Type:         "fix",
		Scope:        "core",
		Description:  "memory leak",
		Source:       testCommit("fix1234abcd", "fix(core): memory leak"),
	}
	breaking := Classification{
		Conventional: true,
		Type:         "feat",
		Breaking:     true,
		Description:  "redesign API",
		Source:       testCommit("brk1234abcd", "feat!: redesign API"),
	}

	tests := []struct {
		name string
		cl   Classification
		opts config.Changelog
		want string
	}{
		{"plain", feat, config.Changelog{}, "- add user authentication"},
		{"scope requested", scoped, config.Changelog{IncludeScope: true}, "- **core:** memory leak"},
		{"scope present but not requested", scoped, config.Changelog{}, "- memory leak"},
		{"scope requested but absent", feat, config.Changelog{IncludeScope: true}, "- add user authentication"},
		{"breaking flag", breaking, config.Changelog{}, "- [BREAKING] redesign API"},
		{"sha suffix", feat, config.Changelog{IncludeSHA: true}, "- add user authentication (feat123)"},
		{
			"everything",
			Classification{
				Conventional: true,
				Type:         "fix",
				Scope:        "api",
				Breaking:     true,
				Description:  "change response shape",
				Source:       testCommit("abc1234def", "fix(api)!: change response shape"),
			},
			config.Changelog{IncludeScope: true, IncludeSHA: true},
			"- [BREAKING] **api:** change response shape (abc1234)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.cl, tt.opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
