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

package git

import "testing"

const (
	sha1Example   = "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"
	sha256Example = "a3e049c3e5cf9d4d92bb4c6f1e53f0e1e0f1f0e1e0f1f0e1e0f1f0e1e0f1f0e1"
)

func TestParseHash(t *testing.T) {
	h, err := ParseHash("  " + sha1Example + "  ")
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if h.String() != sha1Example {
		t.Errorf("got %s, want %s", h, sha1Example)
	}

	upper := "A94A8FE5CCB19BA61C4C0873D391E987982FBBD3"
	h2, err := ParseHash(upper)
	if err != nil {
		t.Fatalf("ParseHash(upper): %v", err)
	}
	if h2.String() != sha1Example {
		t.Errorf("expected lowercased hash, got %s", h2)
	}

	if _, err := ParseHash("not-a-hash"); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestHash_ShortAndLengths(t *testing.T) {
	h := Hash(sha1Example)
	if got, want := h.Short(), sha1Example[:HashShortLen]; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !h.IsSHA1() {
		t.Error("expected IsSHA1() == true")
	}
	if h.IsSHA256() {
		t.Error("expected IsSHA256() == false")
	}

	h256 := Hash(sha256Example)
	if !h256.IsSHA256() {
		t.Error("expected IsSHA256() == true")
	}
}

func TestHash_IsZero(t *testing.T) {
	if !(Hash("")).IsZero() {
		t.Error("empty Hash should report IsZero() == true")
	}
	if (Hash(sha1Example)).IsZero() {
		t.Error("non-empty Hash should report IsZero() == false")
	}
	if got, want := Hash("").Short(), ""; got != want {
		t.Errorf("Short() on zero value = %q, want %q", got, want)
	}
}

func TestHash_Validate(t *testing.T) {
	if err := Hash("").Validate(); err != nil {
		t.Errorf("zero value should validate, got %v", err)
	}
	if err := Hash(sha1Example).Validate(); err != nil {
		t.Errorf("valid SHA-1 should validate, got %v", err)
	}
	if err := Hash("too-short").Validate(); err == nil {
		t.Error("expected an error for a malformed hash")
	}
	if err := Hash("A94A8FE5CCB19BA61C4C0873D391E987982FBBD3").Validate(); err == nil {
		t.Error("expected uppercase hex to fail Validate (not normalized)")
	}
}

func TestHash_JSONRoundTrip(t *testing.T) {
	h := Hash(sha1Example)
	data, err := h.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Hash
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got != h {
		t.Errorf("got %s, want %s", got, h)
	}
}
