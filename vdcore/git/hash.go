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

import (
	"encoding/json"
	"regexp"
	"strings"

	vdmodel "verdepth.dev/vdcore/model"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
)

const (
	// HashHexSizeSHA1 is the number of hex characters in a SHA-1 commit id.
	HashHexSizeSHA1 = 40

	// HashHexSizeSHA256 is the number of hex characters in a SHA-256 commit id.
	HashHexSizeSHA256 = 64

	// HashShortLen is the length of the abbreviated form used for logging.
	HashShortLen = 7
)

const hashHexPattern = `^(?:[0-9a-f]{40}|[0-9a-f]{64})$`

// hashHexRegexp validates canonical, lowercase-normalized commit object ids.
var hashHexRegexp = regexp.MustCompile(hashHexPattern)

// Hash is a commit's object id: a lowercase hex string of exactly 40 (SHA-1)
// or 64 (SHA-256) characters. The zero value (empty string) is valid and
// denotes the absence of a commit.
type Hash string

// String returns the full object id, or "" for the zero value.
func (h Hash) String() string {
	return string(h)
}

// Redacted returns the abbreviated form (see Short). Commit ids are not
// sensitive, but every Model value shares this method shape.
func (h Hash) Redacted() string {
	return h.Short()
}

// TypeName returns "Hash".
func (h Hash) TypeName() string {
	return "Hash"
}

// IsZero reports whether h is the empty, "no commit" value.
func (h Hash) IsZero() bool {
	return h == ""
}

// Equal reports whether h and other are the same object id.
func (h Hash) Equal(other Hash) bool {
	return h == other
}

// Short returns the first HashShortLen characters of h, used for log lines
// and the Redacted forms of Hash, Commit and Tag. It returns h unchanged if h is
// shorter than HashShortLen (including the zero value).
func (h Hash) Short() string {
	str := string(h)
	if len(str) < HashShortLen {
		return str
	}
	return str[:HashShortLen]
}

// IsSHA1 reports whether h has SHA-1 length (40 hex characters).
func (h Hash) IsSHA1() bool {
	return len(h) == HashHexSizeSHA1
}

// IsSHA256 reports whether h has SHA-256 length (64 hex characters).
func (h Hash) IsSHA256() bool {
	return len(h) == HashHexSizeSHA256
}

// Validate reports whether h is either the zero value or a lowercase hex
// string of SHA-1 or SHA-256 length.
func (h Hash) Validate() error {
	if h.IsZero() {
		return nil
	}

	str := string(h)

	if len(str) != HashHexSizeSHA1 && len(str) != HashHexSizeSHA256 {
		return &vderrors.ValidationError{
			Type:   "Hash",
			Reason: "length must be 40 (SHA-1) or 64 (SHA-256) hex characters",
			Value:  str,
		}
	}

	if !hashHexRegexp.MatchString(str) {
		return &vderrors.ValidationError{
			Type:   "Hash",
			Reason: "must be lowercase hexadecimal",
			Value:  str,
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (h Hash) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, &vderrors.MarshalError{Type: "Hash", Value: len(h)}
	}
	return json.Marshal(string(h))
}

// UnmarshalJSON implements json.Unmarshaler, normalizing case and whitespace
// via ParseHash before validating.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &vderrors.UnmarshalError{Type: "Hash", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseHash(str)
	if err != nil {
		return &vderrors.UnmarshalError{Type: "Hash", Data: data, Reason: err.Error()}
	}

	*h = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h Hash) MarshalYAML() (interface{}, error) {
	if err := h.Validate(); err != nil {
		return nil, &vderrors.MarshalError{Type: "Hash", Value: len(h)}
	}
	return string(h), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, normalizing case and whitespace
// via ParseHash before validating.
func (h *Hash) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &vderrors.UnmarshalError{Type: "Hash", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseHash(str)
	if err != nil {
		return &vderrors.UnmarshalError{Type: "Hash", Data: []byte(node.Value), Reason: err.Error()}
	}

	*h = parsed
	return nil
}

// ParseHash trims whitespace, lowercases the input (Git object ids are
// case-insensitive but stored canonically lowercase here), and validates
// the result.
func ParseHash(s string) (Hash, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	hash := Hash(normalized)
	if err := hash.Validate(); err != nil {
		return "", &vderrors.ParseError{Type: "Hash", Value: s}
	}

	return hash, nil
}

var _ vdmodel.Model = (*Hash)(nil)
