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

package versioner

import (
	"fmt"
	"testing"

	vdgit "verdepth.dev/vdcore/git"
	vdsemver "verdepth.dev/vdcore/semver"
)

// fakeView is a deterministic, in-memory GitView used by every test in this
// file; it never touches a real repository.
type fakeView struct {
	working bool
	head    vdgit.Commit
	hasHead bool
	tags    []vdgit.Tag
	commits map[vdgit.Hash]vdgit.Commit

	getTagsErr   error
	getCommitErr error

	// getCommitCalls, when non-nil, counts GetCommit calls per hash.
	getCommitCalls map[vdgit.Hash]int
}

func (f *fakeView) IsWorkingDirectory() bool { return f.working }

func (f *fakeView) TryGetHead() (vdgit.Commit, bool) { return f.head, f.hasHead }

func (f *fakeView) GetTags() ([]vdgit.Tag, error) {
	if f.getTagsErr != nil {
		return nil, f.getTagsErr
	}
	return f.tags, nil
}

func (f *fakeView) GetCommit(hash vdgit.Hash) (vdgit.Commit, error) {
	if f.getCommitCalls != nil {
		f.getCommitCalls[hash]++
	}
	if f.getCommitErr != nil {
		return vdgit.Commit{}, f.getCommitErr
	}
	c, ok := f.commits[hash]
	if !ok {
		return vdgit.Commit{}, fmt.Errorf("no such commit: %s", hash)
	}
	return c, nil
}

var _ GitView = (*fakeView)(nil)

// sha builds a deterministic, well-formed SHA-1-length Hash from a small
// integer, so tests can write sha(1), sha(2), ... instead of copy-pasting
// 40-character hex strings.
func sha(n int) vdgit.Hash {
	return vdgit.Hash(fmt.Sprintf("%040x", n))
}

func mustTag(t *testing.T, name string, target vdgit.Hash) vdgit.Tag {
	t.Helper()
	tagName, err := vdgit.ParseTagName(name)
	if err != nil {
		t.Fatalf("ParseTagName(%q): %v", name, err)
	}
	return vdgit.NewTag(tagName, target)
}

// baseConfig mirrors the preamble shared by every spec.md §8 end-to-end
// scenario: tag_prefix="", default_pre_release=["alpha","0"],
// auto_increment=minor, min_major_minor=(0,0), ignore_height=false,
// build_metadata="".
func baseConfig() Configuration {
	return Configuration{AutoIncrement: vdsemver.AutoIncrementMinor}
}

func linearCommits(n int) (map[vdgit.Hash]vdgit.Commit, vdgit.Commit) {
	commits := make(map[vdgit.Hash]vdgit.Commit, n)
	var parent vdgit.Hash
	var last vdgit.Commit
	for i := 1; i <= n; i++ {
		h := sha(i)
		var parents []vdgit.Hash
		if parent != "" {
			parents = []vdgit.Hash{parent}
		}
		c := vdgit.NewCommit(h, parents)
		commits[h] = c
		parent = h
		last = c
	}
	return commits, last
}

func TestGetVersion_Scenario1_EmptyRepoSingleCommitNoTags(t *testing.T) {
	commits, head := linearCommits(1)
	view := &fakeView{working: true, hasHead: true, head: head, commits: commits}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "0.0.0-alpha.0.1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario2_PrereleaseTagOneCommitBack(t *testing.T) {
	commits, head := linearCommits(2)
	root := sha(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "2.3.4-alpha.5", root)},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "2.3.4-alpha.5.1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario3_ReleaseTagOnHead(t *testing.T) {
	commits, head := linearCommits(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "1.2.3", head.Hash)},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "1.2.3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario4_ReleaseTagThreeCommitsBack(t *testing.T) {
	commits, head := linearCommits(4)
	root := sha(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "1.2.3", root)},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "1.3.0-alpha.0.3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario5_TagPrefixAndBuildMetadata(t *testing.T) {
	commits, head := linearCommits(2)
	root := sha(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "v.2.3.4-alpha.5", root)},
	}

	cfg := baseConfig()
	cfg.TagPrefix = "v."
	cfg.BuildMetadata = "build.6"

	v, err := GetVersion(view, cfg, NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "2.3.4-alpha.5.1+build.6"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario6_TwoTagsSameCommitEqualVersion(t *testing.T) {
	commits, head := linearCommits(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{
			mustTag(t, "1.0.0", head.Hash),
			mustTag(t, "1.0.0+meta", head.Hash),
		},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "1.0.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Scenario7_MinMajorMinorFloor(t *testing.T) {
	commits, head := linearCommits(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "1.4.7", head.Hash)},
	}

	cfg := baseConfig()
	cfg.MinMajorMinor = vdsemver.MajorMinor{Major: 2, Minor: 0}

	v, err := GetVersion(view, cfg, NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "2.0.0-alpha.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_NotAWorkingDirectory(t *testing.T) {
	view := &fakeView{working: false}

	var warned bool
	log := &recordingLogger{warn: func(string, int, ...any) { warned = true }}

	v, err := GetVersion(view, baseConfig(), log)
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "0.0.0-alpha.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !warned {
		t.Error("expected a warning to be logged")
	}
}

func TestGetVersion_NoCommitsYet(t *testing.T) {
	view := &fakeView{working: true, hasHead: false}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "0.0.0-alpha.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_GitUnavailableOnTags(t *testing.T) {
	view := &fakeView{working: true, hasHead: true, head: vdgit.NewCommit(sha(1), nil), getTagsErr: fmt.Errorf("boom")}

	_, err := GetVersion(view, baseConfig(), NopLogger{})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestGetVersion_InvalidConfiguration(t *testing.T) {
	view := &fakeView{working: true}
	cfg := baseConfig()
	cfg.BuildMetadata = "not valid!"

	_, err := GetVersion(view, cfg, NopLogger{})
	if err == nil {
		t.Fatal("expected an InvalidConfigurationError")
	}
}

func TestGetVersion_MalformedTagsIgnored(t *testing.T) {
	commits, head := linearCommits(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "not-a-version", head.Hash)},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if got, want := v.String(), "0.0.0-alpha.0.1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetVersion_Deterministic(t *testing.T) {
	commits, head := linearCommits(4)
	root := sha(1)
	view := &fakeView{
		working: true, hasHead: true, head: head, commits: commits,
		tags: []vdgit.Tag{mustTag(t, "1.2.3", root)},
	}

	first, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	second, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("non-deterministic: %q vs %q", first.String(), second.String())
	}
}

// TestGetVersion_DiamondMergeVisitsEachCommitOnce exercises a DAG where two
// branches from the root converge back into a single merge commit at HEAD,
// ensuring the walker terminates and visits the shared ancestor only once.
func TestGetVersion_DiamondMergeVisitsEachCommitOnce(t *testing.T) {
	root := vdgit.NewCommit(sha(1), nil)
	left := vdgit.NewCommit(sha(2), []vdgit.Hash{root.Hash})
	right := vdgit.NewCommit(sha(3), []vdgit.Hash{root.Hash})
	merge := vdgit.NewCommit(sha(4), []vdgit.Hash{left.Hash, right.Hash})

	commits := map[vdgit.Hash]vdgit.Commit{
		root.Hash: root, left.Hash: left, right.Hash: right, merge.Hash: merge,
	}
	view := &fakeView{
		working: true, hasHead: true, head: merge, commits: commits,
		tags:           []vdgit.Tag{mustTag(t, "1.0.0", root.Hash)},
		getCommitCalls: map[vdgit.Hash]int{},
	}

	v, err := GetVersion(view, baseConfig(), NopLogger{})
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if v.String() == "" {
		t.Error("expected a non-empty version")
	}
	if got := view.getCommitCalls[root.Hash]; got != 1 {
		t.Errorf("shared ancestor fetched %d times, want 1", got)
	}
}

// recordingLogger implements Logger for assertions on what was logged,
// without pulling in a mocking library the teacher's own core packages
// never use.
type recordingLogger struct {
	warn func(string, int, ...any)
}

func (recordingLogger) IsTrace() bool          { return false }
func (recordingLogger) IsDebug() bool          { return false }
func (recordingLogger) IsInfo() bool           { return false }
func (recordingLogger) IsWarn() bool           { return true }
func (recordingLogger) Trace(string, ...any)   {}
func (recordingLogger) Debug(string, ...any)   {}
func (recordingLogger) Info(string, ...any)    {}
func (r *recordingLogger) Warn(msg string, code int, args ...any) {
	if r.warn != nil {
		r.warn(msg, code, args...)
	}
}

var _ Logger = (*recordingLogger)(nil)
