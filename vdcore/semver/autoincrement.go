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

import (
	"encoding/json"

	vdmodel "verdepth.dev/vdcore/model"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
)

// AutoIncrement names the version component WithHeight bumps when it lifts
// a release tag by its height. Unlike a general-purpose "what changed"
// enumeration, this domain has no "none" option: Configuration.AutoIncrement
// is always exactly one of these three, so there is nothing analogous to
// BumpNone here.
type AutoIncrement int

const (
	// AutoIncrementPatch bumps only the patch component.
	AutoIncrementPatch AutoIncrement = iota

	// AutoIncrementMinor bumps minor and resets patch to zero.
	AutoIncrementMinor

	// AutoIncrementMajor bumps major and resets minor and patch to zero.
	AutoIncrementMajor
)

const (
	AutoIncrementPatchStr = "patch"
	AutoIncrementMinorStr = "minor"
	AutoIncrementMajorStr = "major"
)

// ParseAutoIncrement converts "major", "minor", or "patch" into an
// AutoIncrement value. Any other input is a *vderrors.ParseError.
func ParseAutoIncrement(s string) (AutoIncrement, error) {
	switch s {
	case AutoIncrementPatchStr:
		return AutoIncrementPatch, nil
	case AutoIncrementMinorStr:
		return AutoIncrementMinor, nil
	case AutoIncrementMajorStr:
		return AutoIncrementMajor, nil
	default:
		return 0, &vderrors.ParseError{Type: "AutoIncrement", Value: s}
	}
}

// String returns the canonical lowercase name, or "unknown" for an
// out-of-range value.
func (a AutoIncrement) String() string {
	switch a {
	case AutoIncrementPatch:
		return AutoIncrementPatchStr
	case AutoIncrementMinor:
		return AutoIncrementMinorStr
	case AutoIncrementMajor:
		return AutoIncrementMajorStr
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the three defined constants.
func (a AutoIncrement) Valid() bool {
	return a == AutoIncrementPatch || a == AutoIncrementMinor || a == AutoIncrementMajor
}

// TypeName returns "AutoIncrement".
func (a AutoIncrement) TypeName() string { return "AutoIncrement" }

// Redacted returns the same representation as String.
func (a AutoIncrement) Redacted() string { return a.String() }

// IsZero reports whether a equals AutoIncrementPatch, its zero value. Patch
// is a legitimate, commonly configured choice, so IsZero here only answers
// "was this left at the Go zero value", not "is this unset".
func (a AutoIncrement) IsZero() bool { return a == AutoIncrementPatch }

// Equal reports whether a and other name the same component.
func (a AutoIncrement) Equal(other AutoIncrement) bool { return a == other }

// Validate reports whether a is one of the three defined constants.
func (a AutoIncrement) Validate() error {
	if !a.Valid() {
		return &vderrors.ValidationError{Type: "AutoIncrement", Reason: "must be one of major, minor, patch", Value: int(a)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a AutoIncrement) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &vderrors.MarshalError{Type: "AutoIncrement", Value: int(a)}
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AutoIncrement) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &vderrors.UnmarshalError{Type: "AutoIncrement", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseAutoIncrement(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a AutoIncrement) MarshalYAML() (interface{}, error) {
	if !a.Valid() {
		return nil, &vderrors.MarshalError{Type: "AutoIncrement", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AutoIncrement) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &vderrors.UnmarshalError{Type: "AutoIncrement", Reason: err.Error()}
	}
	parsed, err := ParseAutoIncrement(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

var _ vdmodel.Model = (*AutoIncrement)(nil)
