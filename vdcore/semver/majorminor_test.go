/*
   Copyright 2025 The DIRPX Authors

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

import "testing"

func TestParseMajorMinor(t *testing.T) {
	mm, err := ParseMajorMinor("2.0")
	if err != nil {
		t.Fatalf("ParseMajorMinor: %v", err)
	}
	if mm != (MajorMinor{Major: 2, Minor: 0}) {
		t.Errorf("got %+v", mm)
	}

	if _, err := ParseMajorMinor("not-a-pair"); err == nil {
		t.Error("expected an error for malformed input")
	}
	if _, err := ParseMajorMinor("-1.0"); err == nil {
		t.Error("expected an error for a negative component")
	}
}

func TestMajorMinor_Less(t *testing.T) {
	tests := []struct {
		a, b MajorMinor
		want bool
	}{
		{MajorMinor{1, 0}, MajorMinor{2, 0}, true},
		{MajorMinor{2, 0}, MajorMinor{1, 0}, false},
		{MajorMinor{1, 2}, MajorMinor{1, 3}, true},
		{MajorMinor{1, 3}, MajorMinor{1, 2}, false},
		{MajorMinor{1, 2}, MajorMinor{1, 2}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMajorMinor_IsZero(t *testing.T) {
	if !(MajorMinor{}).IsZero() {
		t.Error("zero value should report IsZero() == true")
	}
	if (MajorMinor{Major: 1}).IsZero() {
		t.Error("(1,0) should not report IsZero() == true")
	}
}

func TestMajorMinor_Validate(t *testing.T) {
	if err := (MajorMinor{Major: -1}).Validate(); err == nil {
		t.Error("expected negative Major to fail validation")
	}
	if err := (MajorMinor{Minor: -1}).Validate(); err == nil {
		t.Error("expected negative Minor to fail validation")
	}
	if err := (MajorMinor{Major: 2, Minor: 0}).Validate(); err != nil {
		t.Errorf("expected valid pair, got %v", err)
	}
}

func TestMajorMinor_JSONRoundTrip(t *testing.T) {
	mm := MajorMinor{Major: 2, Minor: 3}
	data, err := mm.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got MajorMinor
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != mm {
		t.Errorf("got %+v, want %+v", got, mm)
	}
}
