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

package model_test

import (
	"strings"
	"testing"

	"dirpx.dev/dxsem/dxcore/model"
	"dirpx.dev/dxsem/dxcore/model/change"
)

func bumps(values ...change.Bump) []*change.Bump {
	out := make([]*change.Bump, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func TestValidateAll(t *testing.T) {
	if err := model.ValidateAll[*change.Bump](nil); err != nil {
		t.Errorf("ValidateAll(nil) = %v, want nil", err)
	}
	if err := model.ValidateAll(bumps(change.BumpNone, change.BumpMajor)); err != nil {
		t.Errorf("ValidateAll(valid) = %v, want nil", err)
	}

	err := model.ValidateAll(bumps(change.BumpPatch, change.Bump(42), change.Bump(43)))
	if err == nil {
		t.Fatal("ValidateAll(invalid) = nil, want error")
	}
	for _, want := range []string{"model[1] (Bump)", "model[2] (Bump)"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestFilterZero(t *testing.T) {
	got := model.FilterZero(bumps(change.BumpNone, change.BumpMinor, change.BumpNone, change.BumpMajor))
	if len(got) != 2 || *got[0] != change.BumpMinor || *got[1] != change.BumpMajor {
		t.Errorf("FilterZero() = %v, want [minor major]", got)
	}
}

func TestSafeString(t *testing.T) {
	b := change.BumpMinor
	if got := model.SafeString(&b, false); got != "minor" {
		t.Errorf("SafeString(redacted) = %q", got)
	}
	if got := model.SafeString(&b, true); got != "minor" {
		t.Errorf("SafeString(unsafe) = %q", got)
	}
}

func TestToFromJSON(t *testing.T) {
	b := change.BumpMajor
	data, err := model.ToJSON(&b)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var got change.Bump
	target := &got
	if err := model.FromJSON(data, &target); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if got != change.BumpMajor {
		t.Errorf("round-trip = %v, want %v", got, change.BumpMajor)
	}

	invalid := change.Bump(99)
	if _, err := model.ToJSON(&invalid); err == nil {
		t.Error("ToJSON(invalid) = nil error")
	}
}
