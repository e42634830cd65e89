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

import xsemver "golang.org/x/mod/semver"

// QuickReject reports whether name can be rejected as a version tag without
// running the full SemVer 2.0 parser, for the common case tagPrefix == "v".
// golang.org/x/mod/semver.IsValid implements the same canonical "vMAJOR.MINOR.PATCH"
// form that tagPrefix == "v" produces, so it is a cheap, allocation-light
// pre-filter ahead of Parse's regex/numeric validation — useful on
// repositories with large tag lists (spec.md §7's time bound).
//
// QuickReject never reports a false positive: xsemver.IsValid accepts a
// superset of what Parse accepts is false here only for genuinely invalid
// input. Callers MUST still run Parse on anything QuickReject does not
// reject; QuickReject only short-circuits the obviously-invalid case.
//
// For any tagPrefix other than "v", QuickReject always returns false (never
// rejects), deferring entirely to Parse.
func QuickReject(name, tagPrefix string) bool {
	if tagPrefix != "v" {
		return false
	}
	return !xsemver.IsValid(name)
}
