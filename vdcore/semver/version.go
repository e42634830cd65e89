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

// Package semver is the Version Grammar: a pure value type and a handful of
// transformations (parse-with-prefix, total order, satisfy a minimum
// (major, minor), apply height, append build metadata). Nothing in this
// package performs I/O; every function is a deterministic transformation of
// its arguments.
package semver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	bsemver "github.com/blang/semver/v4"

	vdmodel "verdepth.dev/vdcore/model"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
)

// Version is a SemVer 2.0.0 value: Major.Minor.Patch[-Prerelease][+Metadata].
// It wraps github.com/blang/semver/v4 for parsing and ordering, which is the
// hardest part of this type to get right (numeric vs alphanumeric
// pre-release identifier comparison per SemVer 2.0 §11).
//
// Prerelease and Metadata are stored as their dot-joined textual form
// rather than as identifier slices: every transformation this package
// performs on them (WithHeight appending a numeric identifier,
// AddBuildMetadata replacing the whole list) is naturally expressed as
// string append/replace, and the textual form is also exactly what String
// prints, which keeps printing and construction in lock-step.
//
// The zero value is 0.0.0 with no prerelease and no metadata — a release
// version, and IsZero reports true for it.
type Version struct {
	Major, Minor, Patch int
	Prerelease          string
	Metadata            string
}

// Parse parses text as tagPrefix followed by a strict SemVer 2.0 version.
// It fails (ok == false) if text does not start with exactly tagPrefix, or
// if the remainder is not a strictly valid SemVer 2.0 string: malformed
// numerics, leading zeros in a numeric identifier, an empty identifier, an
// illegal character, or trailing garbage.
func Parse(text, tagPrefix string) (v Version, ok bool) {
	if !strings.HasPrefix(text, tagPrefix) {
		return Version{}, false
	}
	rest := text[len(tagPrefix):]

	bv, err := bsemver.Parse(rest)
	if err != nil {
		return Version{}, false
	}

	return fromBlangSemver(bv), true
}

// ParseVersion parses s as a bare SemVer 2.0 string (tagPrefix == ""),
// returning an error instead of a boolean. Used when deserializing a
// Version value itself (JSON/YAML), as opposed to classifying a tag name.
func ParseVersion(s string) (Version, error) {
	v, ok := Parse(s, "")
	if !ok {
		return Version{}, &vderrors.ParseError{Type: "Version", Value: s}
	}
	return v, nil
}

// String renders the canonical form: "Major.Minor.Patch[-Prerelease][+Metadata]".
// print(parse(s)) == s whenever parse(s) succeeds.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// toBlangSemver re-parses v's own String() form, reusing blang/semver's
// grammar rather than duplicating its validation rules here.
func (v Version) toBlangSemver() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("failed to convert to blang/semver: %w", err)
	}
	return bv, nil
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	var metadata string
	if len(bv.Build) > 0 {
		metadata = strings.Join(bv.Build, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   metadata,
	}
}

// Validate reports whether v is a well-formed SemVer 2.0 value: Major,
// Minor, Patch non-negative and Prerelease/Metadata (if present) strictly
// valid dot-separated identifier lists.
func (v Version) Validate() error {
	if v.Major < 0 {
		return &vderrors.ValidationError{Type: v.TypeName(), Field: "Major", Reason: "must be non-negative", Value: v.Major}
	}
	if v.Minor < 0 {
		return &vderrors.ValidationError{Type: v.TypeName(), Field: "Minor", Reason: "must be non-negative", Value: v.Minor}
	}
	if v.Patch < 0 {
		return &vderrors.ValidationError{Type: v.TypeName(), Field: "Patch", Reason: "must be non-negative", Value: v.Patch}
	}
	if _, err := v.toBlangSemver(); err != nil {
		return &vderrors.ValidationError{Type: v.TypeName(), Reason: fmt.Sprintf("not strict SemVer 2.0: %v", err), Value: v.String()}
	}
	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no prerelease or
// metadata. "0.0.0-alpha" is NOT zero: it carries semantic meaning beyond
// the numeric core.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// IsPrerelease reports whether v has a non-empty Prerelease component.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// Compare orders v against other per SemVer 2.0 §11: numeric core first,
// then pre-release precedence (release > prerelease; otherwise identifier
// lists compared left to right, numeric identifiers compared numerically,
// numeric < alphanumeric, alphanumeric compared ASCII-lexically, a shorter
// list that is a prefix of a longer one is lower). Build metadata never
// participates. Returns -1, 0, or +1.
func (v Version) Compare(other Version) int {
	bv, err := v.toBlangSemver()
	if err != nil {
		return compareNumericCore(v, other)
	}
	bother, err := other.toBlangSemver()
	if err != nil {
		return compareNumericCore(v, other)
	}
	return bv.Compare(bother)
}

// compareNumericCore is the fallback used only if a Version somehow fails
// to round-trip through blang/semver (which should not happen for any
// Version produced by this package's own constructors).
func compareNumericCore(v, other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other have the same precedence (build
// metadata is ignored, per SemVer 2.0).
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// Greater reports whether v sorts strictly after other.
func (v Version) Greater(other Version) bool { return v.Compare(other) > 0 }

// Satisfying lifts v to meet a minimum (major, minor) floor. If v already
// satisfies min, v is returned unchanged. Otherwise the result is
// Version{min.Major, min.Minor, 0, pre_release: defaultPreReleaseIdentifiers}
// with no build metadata. Idempotent: Satisfying(Satisfying(v, min), min)
// always equals Satisfying(v, min).
func (v Version) Satisfying(min MajorMinor, defaultPreReleaseIdentifiers []string) Version {
	if v.Major > min.Major || (v.Major == min.Major && v.Minor >= min.Minor) {
		return v
	}
	return Version{
		Major:      min.Major,
		Minor:      min.Minor,
		Patch:      0,
		Prerelease: strings.Join(defaultPreReleaseIdentifiers, "."),
	}
}

// WithHeight applies the graph distance between HEAD and the selected
// candidate to v. It is a no-op when height <= 0 (the selected tag sits
// exactly on HEAD). Otherwise:
//
//   - if v is already a pre-release, height is appended as a trailing
//     numeric identifier: "...-<pre>.<height>";
//   - if v is a release, autoIncrement names the component bumped by one,
//     lower components are zeroed, pre-release becomes
//     defaultPreReleaseIdentifiers followed by <height>, and build
//     metadata is cleared.
func (v Version) WithHeight(height int, autoIncrement AutoIncrement, defaultPreReleaseIdentifiers []string) Version {
	if height <= 0 {
		return v
	}

	if v.IsPrerelease() {
		nv := v
		nv.Prerelease = v.Prerelease + "." + strconv.Itoa(height)
		return nv
	}

	nv := v
	switch autoIncrement {
	case AutoIncrementMajor:
		nv.Major++
		nv.Minor = 0
		nv.Patch = 0
	case AutoIncrementMinor:
		nv.Minor++
		nv.Patch = 0
	case AutoIncrementPatch:
		nv.Patch++
	}
	nv.Prerelease = strings.Join(append(append([]string{}, defaultPreReleaseIdentifiers...), strconv.Itoa(height)), ".")
	nv.Metadata = ""
	return nv
}

// isValidIdentifier reports whether s is a single valid SemVer identifier:
// non-empty, [0-9A-Za-z-] only.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

// AddBuildMetadata returns v with its build metadata replaced by meta
// (dot-split and validated identifier by identifier), or v unchanged if
// meta is empty. A malformed meta is an InvalidConfigurationError: build
// metadata is intake-time configuration, not data discovered during the
// walk, so it is rejected before the walk begins rather than silently
// dropped.
func (v Version) AddBuildMetadata(meta string) (Version, error) {
	if meta == "" {
		return v, nil
	}

	for _, part := range strings.Split(meta, ".") {
		if !isValidIdentifier(part) {
			return v, &vderrors.InvalidConfigurationError{
				Field:  "build_metadata",
				Reason: fmt.Sprintf("identifier %q is not a valid SemVer 2.0 build metadata identifier", part),
			}
		}
	}

	nv := v
	nv.Metadata = meta
	return nv, nil
}

// TypeName returns "Version".
func (v Version) TypeName() string { return "Version" }

// Redacted returns the same representation as String; versions carry
// nothing sensitive.
func (v Version) Redacted() string { return v.String() }

// MarshalJSON implements json.Marshaler, encoding v as its canonical string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler, parsing the canonical string
// form.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &vderrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding v as its canonical
// string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, parsing the canonical string
// form.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &vderrors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

var _ vdmodel.Model = (*Version)(nil)
