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

	vdgit "verdepth.dev/vdcore/git"
	vdsemver "verdepth.dev/vdcore/semver"
)

// Candidate is one tag (or synthetic root) the walk considered for
// selection. It is local to a single GetVersion call and never escapes the
// package's exported surface unmodified; TypeName/String exist mainly so
// debug log lines have something uniform to print.
type Candidate struct {
	// Commit is the commit this candidate was discovered on.
	Commit vdgit.Commit

	// Height is the number of graph edges from HEAD to Commit, along the
	// path by which Commit was first discovered. For the synthetic root
	// candidate it is one more than that.
	Height int

	// Tag is the tag name that produced this candidate, or "" for the
	// synthetic root candidate.
	Tag string

	// Version is the parsed version this candidate carries.
	Version vdsemver.Version

	// Index is this candidate's position in discovery order, used as the
	// sole tie-break when two candidates carry equal versions.
	Index int
}

// String renders a column-aligned debug line, matching the "debug
// enumeration of all non-selected candidates with column-aligned fields"
// behavior spec.md §6 asks of the Logger call sites.
func (c Candidate) String() string {
	tag := c.Tag
	if tag == "" {
		tag = "<none>"
	}
	return fmt.Sprintf("Candidate{sha:%-7s height:%-3d tag:%-20s version:%-20s index:%d}",
		c.Commit.ShortSha(), c.Height, tag, c.Version.String(), c.Index)
}
