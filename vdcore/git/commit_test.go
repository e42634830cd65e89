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

func hashN(n int) Hash {
	const digits = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = digits[n%16]
	}
	return Hash(b)
}

func TestCommit_IsZero(t *testing.T) {
	if !(Commit{}).IsZero() {
		t.Error("zero Commit should report IsZero() == true")
	}
	if (NewCommit(hashN(1), nil)).IsZero() {
		t.Error("commit with a hash should not report IsZero() == true")
	}
}

func TestCommit_Equal(t *testing.T) {
	a := NewCommit(hashN(1), []Hash{hashN(2)})
	b := NewCommit(hashN(1), []Hash{hashN(2)})
	c := NewCommit(hashN(1), []Hash{hashN(3)})

	if !a.Equal(b) {
		t.Error("expected identical commits to be Equal")
	}
	if a.Equal(c) {
		t.Error("expected commits with different parents to not be Equal")
	}
}

func TestCommit_Validate(t *testing.T) {
	if err := NewCommit(hashN(1), []Hash{hashN(2), hashN(3)}).Validate(); err != nil {
		t.Errorf("expected valid commit, got %v", err)
	}
	if err := (Commit{}).Validate(); err == nil {
		t.Error("expected an error for an empty hash")
	}
	if err := NewCommit(hashN(1), []Hash{""}).Validate(); err == nil {
		t.Error("expected an error for an empty parent hash")
	}

	tooMany := make([]Hash, CommitParentsMaxCount+1)
	for i := range tooMany {
		tooMany[i] = hashN(i + 1)
	}
	if err := NewCommit(hashN(1), tooMany).Validate(); err == nil {
		t.Error("expected an error for exceeding CommitParentsMaxCount")
	}
}

func TestCommit_ShortSha(t *testing.T) {
	c := NewCommit(hashN(1), nil)
	if got, want := c.ShortSha(), c.Hash.Short(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCommit_JSONRoundTrip(t *testing.T) {
	c := NewCommit(hashN(1), []Hash{hashN(2)})
	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Commit
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !got.Equal(c) {
		t.Errorf("got %+v, want %+v", got, c)
	}
}
