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
	"time"

	"dirpx.dev/dxsem/dxcore/config"
	"dirpx.dev/dxsem/dxcore/model/git"
)

func testCommit(sha, message string) git.Commit {
	return git.Commit{
		SHA:     sha,
		Message: message,
		Author:  git.Signature{Name: "Test", Email: "test@test.com"},
		When:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestClassify(t *testing.T) {
	breaking, err := config.DefaultCommits().BreakingRegexp()
	if err != nil {
		t.Fatalf("BreakingRegexp() error = %v", err)
	}

	tests := []struct {
		name    string
		message string
		want    Classification
	}{
		{
			name:    "simple feat",
			message: "feat: add new feature",
			want:    Classification{Conventional: true, Type: "feat", Description: "add new feature"},
		},
		{
			name:    "with scope",
			message: "fix(api): handle null response",
			want:    Classification{Conventional: true, Type: "fix", Scope: "api", Description: "handle null response"},
		},
		{
			name:    "breaking exclamation",
			message: "feat!: redesign API",
			want:    Classification{Conventional: true, Type: "feat", Breaking: true, Description: "redesign API"},
		},
		{
			name:    "breaking with scope and exclamation",
			message: "feat(core)!: change config format",
			want:    Classification{Conventional: true, Type: "feat", Scope: "core", Breaking: true, Description: "change config format"},
		},
		{
			name:    "breaking marker in body",
			message: "feat: new feature\n\nBREAKING CHANGE: old API removed",
			want:    Classification{Conventional: true, Type: "feat", Breaking: true, Description: "new feature"},
		},
		{
			name:    "hyphenated breaking marker",
			message: "fix: patch\n\nBREAKING-CHANGE: behavior differs",
			want:    Classification{Conventional: true, Type: "fix", Breaking: true, Description: "patch"},
		},
		{
			name:    "non-conventional",
			message: "Updated the readme file",
			want:    Classification{Description: "Updated the readme file"},
		},
		{
			name:    "non-conventional with breaking body",
			message: "rewrite everything\n\nBREAKING CHANGE: all of it",
			want:    Classification{Breaking: true, Description: "rewrite everything"},
		},
		{
			name:    "uppercase type normalized",
			message: "FEAT: shouting",
			want:    Classification{Conventional: true, Type: "feat", Description: "shouting"},
		},
		{
			name:    "custom type",
			message: "remove: delete deprecated API",
			want:    Classification{Conventional: true, Type: "remove", Description: "delete deprecated API"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit := testCommit("abc123", tt.message)
			tt.want.Source = commit

			got := Classify(commit, breaking)
			if !got.Equal(tt.want) {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Classify() produced invalid value: %v", err)
			}
		})
	}
}

func TestClassify_NilPatternSkipsBodyScan(t *testing.T) {
	commit := testCommit("abc123", "feat: x\n\nBREAKING CHANGE: gone")
	got := Classify(commit, nil)
	if got.Breaking {
		t.Error("Classify() with nil pattern detected a body marker")
	}
}

func TestParse(t *testing.T) {
	cfg := config.DefaultCommits()
	commits := []git.Commit{
		testCommit("a", "feat: add feature"),
		testCommit("b", "not conventional at all"),
		testCommit("c", "fix(core): repair"),
	}

	parsed, err := Parse(commits, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("Parse() returned %d classifications, want 3", len(parsed))
	}
	if parsed[0].Type != "feat" || parsed[1].Conventional || parsed[2].Scope != "core" {
		t.Errorf("Parse() = %+v", parsed)
	}
}

func TestParse_ScopeFilter(t *testing.T) {
	cfg := config.DefaultCommits()
	cfg.ScopePattern = "api"
	commits := []git.Commit{
		testCommit("a", "feat(api): feature 1"),
		testCommit("b", "fix(core): fix 1"),
		testCommit("c", "feat(api): feature 2"),
		testCommit("d", "feat: no scope at all"),
		testCommit("e", "feat(api-v2): partial match"),
	}

	parsed, err := Parse(commits, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("Parse() kept %d classifications, want 2: %+v", len(parsed), parsed)
	}
	for _, cl := range parsed {
		if cl.Scope != "api" {
			t.Errorf("kept scope %q, want api", cl.Scope)
		}
	}
	if parsed[0].SHA() != "a" || parsed[1].SHA() != "c" {
		t.Errorf("Parse() reordered: %s, %s", parsed[0].SHA(), parsed[1].SHA())
	}
}

func TestParse_BadPattern(t *testing.T) {
	cfg := config.DefaultCommits()
	cfg.BreakingPattern = "("
	if _, err := Parse(nil, cfg); err == nil {
		t.Error("Parse() with invalid breaking pattern = nil error")
	}

	cfg = config.DefaultCommits()
	cfg.ScopePattern = "["
	if _, err := Parse(nil, cfg); err == nil {
		t.Error("Parse() with invalid scope pattern = nil error")
	}
}
