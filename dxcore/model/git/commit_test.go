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

package git

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testCommit(sha, message string) Commit {
	return Commit{
		SHA:     sha,
		Message: message,
		Author:  Signature{Name: "Test", Email: "test@test.com", When: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)},
		When:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestCommit_Summary(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"single line", "feat: add feature", "feat: add feature"},
		{"with body", "fix: bug\n\ndetails here", "fix: bug"},
		{"crlf endings", "docs: readme\r\n\r\nbody", "docs: readme"},
		{"surrounding whitespace", "  chore: tidy  \nbody", "chore: tidy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCommit("abc1234def", tt.message)
			if got := c.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommit_Lines(t *testing.T) {
	c := testCommit("abc1234def", "feat: x\r\n\r\nBREAKING CHANGE: gone")
	got := c.Lines()
	want := []string{"feat: x", "", "BREAKING CHANGE: gone"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCommit_ShortSHA(t *testing.T) {
	tests := []struct {
		sha  string
		want string
	}{
		{"abc1234def5678", "abc1234"},
		{"abc1234", "abc1234"},
		{"ab12", "ab12"},
		{"", ""},
	}

	for _, tt := range tests {
		c := Commit{SHA: tt.sha}
		if got := c.ShortSHA(); got != tt.want {
			t.Errorf("ShortSHA(%q) = %q, want %q", tt.sha, got, tt.want)
		}
	}
}

func TestCommit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		commit  Commit
		wantErr bool
	}{
		{"valid", testCommit("abc1234", "feat: x"), false},
		{"no author is fine", Commit{SHA: "a", Message: "feat: x"}, false},
		{"empty sha", Commit{Message: "feat: x"}, true},
		{"empty message", Commit{SHA: "a"}, true},
		{"whitespace message", Commit{SHA: "a", Message: "   \n  "}, true},
		{"oversized message", Commit{SHA: "a", Message: strings.Repeat("x", CommitMessageMaxLen+1)}, true},
		{"author without name", Commit{SHA: "a", Message: "feat: x", Author: Signature{Email: "t@t.com"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.commit.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCommit_Redacted(t *testing.T) {
	c := testCommit("abc1234def5678", "feat: add login\n\nbody")
	want := "abc1234 feat: add login"
	if got := c.Redacted(); got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
	if strings.Contains(c.Redacted(), "test@test.com") {
		t.Error("Redacted() leaked author email")
	}
}

func TestCommit_JSONRoundTrip(t *testing.T) {
	c := testCommit("abc1234", "feat(api): endpoint\n\nbody text")

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var got Commit
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !got.Equal(c) {
		t.Errorf("round-trip = %+v, want %+v", got, c)
	}
}

func TestSignature_Redacted(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		want string
	}{
		{"normal email", Signature{Name: "Jane", Email: "jane@example.com"}, "Jane <j***@example.com>"},
		{"single char local", Signature{Name: "A", Email: "a@b.io"}, "A <*@b.io>"},
		{"no email", Signature{Name: "Jane"}, "Jane"},
		{"malformed email", Signature{Name: "X", Email: "nodomain"}, "X <[INVALID]>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignature_Validate(t *testing.T) {
	if err := (Signature{Name: "Jane"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (Signature{Email: "j@e.com"}).Validate(); err == nil {
		t.Error("Validate() with empty name = nil, want error")
	}
}
