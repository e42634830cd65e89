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
	"fmt"

	vdmodel "verdepth.dev/vdcore/model"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
)

// MajorMinor is the (major, minor) pair used as the configured floor a
// selected version must satisfy. The zero value (0, 0) imposes no floor:
// every version satisfies it.
type MajorMinor struct {
	Major int
	Minor int
}

// String renders "Major.Minor".
func (m MajorMinor) String() string {
	return fmt.Sprintf("%d.%d", m.Major, m.Minor)
}

// Redacted returns the same representation as String.
func (m MajorMinor) Redacted() string { return m.String() }

// TypeName returns "MajorMinor".
func (m MajorMinor) TypeName() string { return "MajorMinor" }

// IsZero reports whether m is (0, 0).
func (m MajorMinor) IsZero() bool { return m.Major == 0 && m.Minor == 0 }

// Equal reports whether m and other hold the same pair.
func (m MajorMinor) Equal(other MajorMinor) bool {
	return m.Major == other.Major && m.Minor == other.Minor
}

// Less reports whether m sorts strictly before other, lexicographically
// comparing Major then Minor.
func (m MajorMinor) Less(other MajorMinor) bool {
	if m.Major != other.Major {
		return m.Major < other.Major
	}
	return m.Minor < other.Minor
}

// Validate reports whether Major and Minor are both non-negative.
func (m MajorMinor) Validate() error {
	if m.Major < 0 {
		return &vderrors.ValidationError{Type: m.TypeName(), Field: "Major", Reason: "must be non-negative", Value: m.Major}
	}
	if m.Minor < 0 {
		return &vderrors.ValidationError{Type: m.TypeName(), Field: "Minor", Reason: "must be non-negative", Value: m.Minor}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, encoding m as "Major.Minor".
func (m MajorMinor) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, parsing the "Major.Minor" form.
func (m *MajorMinor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &vderrors.UnmarshalError{Type: "MajorMinor", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseMajorMinor(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding m as "Major.Minor".
func (m MajorMinor) MarshalYAML() (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, parsing the "Major.Minor" form.
func (m *MajorMinor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &vderrors.UnmarshalError{Type: "MajorMinor", Reason: err.Error()}
	}
	parsed, err := ParseMajorMinor(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMajorMinor parses "Major.Minor" (e.g. "2.0") into a MajorMinor.
func ParseMajorMinor(s string) (MajorMinor, error) {
	var major, minor int
	n, err := fmt.Sscanf(s, "%d.%d", &major, &minor)
	if err != nil || n != 2 {
		return MajorMinor{}, &vderrors.ParseError{Type: "MajorMinor", Value: s}
	}
	mm := MajorMinor{Major: major, Minor: minor}
	if err := mm.Validate(); err != nil {
		return MajorMinor{}, &vderrors.ParseError{Type: "MajorMinor", Value: s}
	}
	return mm, nil
}

var _ vdmodel.Model = (*MajorMinor)(nil)
