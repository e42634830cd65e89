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

func TestParseTagName(t *testing.T) {
	name, err := ParseTagName("v1.2.3")
	if err != nil {
		t.Fatalf("ParseTagName: %v", err)
	}
	if name.String() != "v1.2.3" {
		t.Errorf("got %s, want v1.2.3", name)
	}

	if _, err := ParseTagName(""); err == nil {
		t.Error("expected an error for an empty name")
	}
}

func TestParseTagName_NoNormalization(t *testing.T) {
	// The tag grammar matches tag_prefix by exact byte prefix; ParseTagName
	// must not trim or case-fold anything that would corrupt that match.
	name, err := ParseTagName("  V1.2.3  ")
	if err != nil {
		t.Fatalf("ParseTagName: %v", err)
	}
	if name.String() != "  V1.2.3  " {
		t.Errorf("expected byte-exact preservation, got %q", name.String())
	}
}

func TestTag_IsZero(t *testing.T) {
	if !(Tag{}).IsZero() {
		t.Error("zero Tag should report IsZero() == true")
	}
	name, _ := ParseTagName("v1.0.0")
	if (NewTag(name, hashN(1))).IsZero() {
		t.Error("tag with a name and target should not report IsZero() == true")
	}
}

func TestTag_Equal(t *testing.T) {
	n1, _ := ParseTagName("v1.0.0")
	n2, _ := ParseTagName("v1.0.1")

	a := NewTag(n1, hashN(1))
	b := NewTag(n1, hashN(1))
	c := NewTag(n2, hashN(1))

	if !a.Equal(b) {
		t.Error("expected identical tags to be Equal")
	}
	if a.Equal(c) {
		t.Error("expected tags with different names to not be Equal")
	}
}

func TestTag_Validate(t *testing.T) {
	name, _ := ParseTagName("v1.0.0")
	if err := NewTag(name, hashN(1)).Validate(); err != nil {
		t.Errorf("expected valid tag, got %v", err)
	}
	if err := NewTag(name, "").Validate(); err == nil {
		t.Error("expected an error for a missing target sha")
	}
}

func TestTag_JSONRoundTrip(t *testing.T) {
	name, _ := ParseTagName("v2.0.0")
	tag := NewTag(name, hashN(3))

	data, err := tag.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Tag
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !got.Equal(tag) {
		t.Errorf("got %+v, want %+v", got, tag)
	}
}
