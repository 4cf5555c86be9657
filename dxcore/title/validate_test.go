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
	"strings"
	"testing"

	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/conventional"
)

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		title string
		opts  Options
		want  Result
	}{
		{
			name:  "simple feat",
			title: "feat: add user authentication",
			want:  Result{Valid: true, Type: "feat", Description: "add user authentication"},
		},
		{
			name:  "fix with scope",
			title: "fix(api): handle null responses",
			want:  Result{Valid: true, Type: "fix", Scope: "api", Description: "handle null responses"},
		},
		{
			name:  "breaking",
			title: "feat!: redesign config format",
			want:  Result{Valid: true, Type: "feat", Breaking: true, Description: "redesign config format"},
		},
		{
			name:  "breaking with scope",
			title: "feat(core)!: change API structure",
			want:  Result{Valid: true, Type: "feat", Scope: "core", Breaking: true, Description: "change API structure"},
		},
		{
			name:  "uppercase type normalized",
			title: "FEAT: uppercase type",
			want:  Result{Valid: true, Type: "feat", Description: "uppercase type"},
		},
		{
			name:  "scope required and present",
			title: "feat(api): add feature",
			opts:  Options{RequireScope: true},
			want:  Result{Valid: true, Type: "feat", Scope: "api", Description: "add feature"},
		},
		{
			name:  "custom allowed type",
			title: "add: new feature",
			opts:  Options{AllowedTypes: []string{"add", "remove", "change"}},
			want:  Result{Valid: true, Type: "add", Description: "new feature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.title, tt.opts)
			if got != tt.want {
				t.Errorf("Validate(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		opts        Options
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "empty",
			title:       "",
			wantKind:    EmptyTitle,
			wantMessage: "PR title cannot be empty",
		},
		{
			name:        "whitespace only",
			title:       "   ",
			wantKind:    EmptyTitle,
			wantMessage: "PR title cannot be empty",
		},
		{
			name:        "not conventional",
			title:       "Added a new feature",
			wantKind:    NotConventionalFormat,
			wantMessage: "conventional commit format",
		},
		{
			name:        "empty description is a format failure",
			title:       "feat:    ",
			wantKind:    NotConventionalFormat,
			wantMessage: "conventional commit format",
		},
		{
			name:        "unknown type",
			title:       "unknown: some change",
			wantKind:    InvalidCommitType,
			wantMessage: "Invalid commit type",
		},
		{
			name:        "standard type rejected under custom set",
			title:       "feat: new feature",
			opts:        Options{AllowedTypes: []string{"add", "remove"}},
			wantKind:    InvalidCommitType,
			wantMessage: "Invalid commit type",
		},
		{
			name:        "too long",
			title:       "feat: " + strings.Repeat("a", 100),
			opts:        Options{MaxLength: 50},
			wantKind:    TitleTooLong,
			wantMessage: "exceeds 50 characters",
		},
		{
			name:        "scope required but missing",
			title:       "feat: add feature",
			opts:        Options{RequireScope: true},
			wantKind:    MissingScope,
			wantMessage: "must include a scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.title, tt.opts)
			if got.Valid {
				t.Fatalf("Validate(%q) = valid, want invalid", tt.title)
			}
			if got.Issue == nil {
				t.Fatal("invalid result carries no issue")
			}
			if got.Issue.Kind != tt.wantKind {
				t.Errorf("Issue.Kind = %v, want %v", got.Issue.Kind, tt.wantKind)
			}
			if !strings.Contains(got.Issue.Message, tt.wantMessage) {
				t.Errorf("Issue.Message = %q, want substring %q", got.Issue.Message, tt.wantMessage)
			}
		})
	}
}

func TestValidate_InvalidTypeNamesTheType(t *testing.T) {
	got := Validate("unknown: some change", Options{})
	if !strings.Contains(got.Issue.Message, "unknown") {
		t.Errorf("Issue.Message = %q, want the offending type named", got.Issue.Message)
	}
}

func TestValidate_LengthUsesRawTitle(t *testing.T) {
	// 48 visible characters padded to 52 with surrounding whitespace: the
	// raw length is what the cap applies to.
	title := "  feat: " + strings.Repeat("a", 40) + "ationx"
	if len(title) <= 50 {
		t.Fatalf("test title length = %d, want > 50", len(title))
	}
	got := Validate(title, Options{MaxLength: 50})
	if got.Valid || got.Issue.Kind != TitleTooLong {
		t.Errorf("Validate() = %+v, want TitleTooLong", got)
	}
}

func TestValidate_LengthCountsCharactersNotBytes(t *testing.T) {
	// 6 header characters plus 20 two-byte runes: 26 characters, 46
	// bytes. A byte-based cap would reject it at MaxLength 30.
	title := "feat: " + strings.Repeat("ü", 20)
	if len(title) <= 30 {
		t.Fatalf("test title byte length = %d, want > 30", len(title))
	}

	got := Validate(title, Options{MaxLength: 30})
	if !got.Valid {
		t.Fatalf("Validate() = %+v, want valid at 26 characters", got.Issue)
	}

	got = Validate(title, Options{MaxLength: 25})
	if got.Valid || got.Issue.Kind != TitleTooLong {
		t.Fatalf("Validate() = %+v, want TitleTooLong at cap 25", got)
	}
	if !strings.Contains(got.Issue.Message, "(got 26)") {
		t.Errorf("Issue.Message = %q, want character count 26", got.Issue.Message)
	}
}

func TestValidate_AllDefaultTypes(t *testing.T) {
	for _, typ := range conventional.KnownTypeNames() {
		result := Validate(typ+": some change", Options{})
		if !result.Valid {
			t.Errorf("type %q rejected: %+v", typ, result.Issue)
		}
	}
}

func TestValidate_RuleOrder(t *testing.T) {
	// An over-long, scopeless title of an unknown type: the type check
	// fires before the scope and length checks.
	title := "unknown: " + strings.Repeat("a", 100)
	got := Validate(title, Options{MaxLength: 50, RequireScope: true})
	if got.Issue == nil || got.Issue.Kind != InvalidCommitType {
		t.Errorf("Validate() issue = %+v, want InvalidCommitType first", got.Issue)
	}
}

func TestValidateBatch(t *testing.T) {
	titles := []string{
		"feat: add feature",
		"invalid title",
		"fix(api): handle error",
	}
	results := ValidateBatch(titles, Options{})

	if len(results) != 3 {
		t.Fatalf("ValidateBatch() = %d results, want 3", len(results))
	}
	if !results[0].Valid || results[1].Valid || !results[2].Valid {
		t.Errorf("ValidateBatch() validity = %v %v %v", results[0].Valid, results[1].Valid, results[2].Valid)
	}
}

func TestValidateBatch_Options(t *testing.T) {
	titles := []string{"feat: no scope", "feat(api): with scope"}
	results := ValidateBatch(titles, Options{RequireScope: true})

	if results[0].Valid {
		t.Error("scopeless title passed with RequireScope")
	}
	if !results[1].Valid {
		t.Errorf("scoped title failed: %+v", results[1].Issue)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Title{AllowedTypes: []string{"feat"}, MaxLength: 72, RequireScope: true}
	opts := OptionsFromConfig(cfg)
	if len(opts.AllowedTypes) != 1 || opts.MaxLength != 72 || !opts.RequireScope {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
}

func TestIssue_Error(t *testing.T) {
	issue := &Issue{Kind: EmptyTitle, Message: "PR title cannot be empty"}
	if issue.Error() != "PR title cannot be empty" {
		t.Errorf("Error() = %q", issue.Error())
	}
	if issue.String() != "empty_title: PR title cannot be empty" {
		t.Errorf("String() = %q", issue.String())
	}
}

func TestParseKind(t *testing.T) {
	for k := EmptyTitle; k <= TitleTooLong; k++ {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("nonsense"); err == nil {
		t.Error("ParseKind(nonsense) = nil error")
	}
}
