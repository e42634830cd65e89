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

import vdgit "verdepth.dev/vdcore/git"

// GitView is the read-only contract the Versioner consumes: a snapshot of a
// working directory taken once per GetVersion call. Implementations MUST be
// pure functions of the on-disk repository at call time; the walker assumes
// every method answers consistently for the lifetime of one call.
//
// vdcore/repoview.RepoView is the canonical implementation, backed by
// go-git. Tests in this package use an in-memory fake instead.
type GitView interface {
	// IsWorkingDirectory reports whether the snapshot was taken inside a
	// Git working directory at all.
	IsWorkingDirectory() bool

	// TryGetHead returns the HEAD commit, or ok == false if the repository
	// has no commits yet.
	TryGetHead() (commit vdgit.Commit, ok bool)

	// GetTags returns every tag reachable in the repository, annotated or
	// lightweight. Annotated tags MUST already be dereferenced to their
	// target commit sha, never the tag-object sha.
	GetTags() ([]vdgit.Tag, error)

	// GetCommit resolves hash to a Commit, including its ordered parent
	// list (first parent first). Called once per commit visited by the
	// walk, in addition to the HEAD commit already carried by TryGetHead.
	GetCommit(hash vdgit.Hash) (vdgit.Commit, error)
}
