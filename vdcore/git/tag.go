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
	"fmt"

	vdmodel "verdepth.dev/vdcore/model"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
)

// TagNameMaxLen bounds the number of runes a TagName may hold. Git itself
// places no such bound; this guards the tag-intake step against pathological
// input while staying far above any name seen in practice.
const TagNameMaxLen = 4096

// TagName is a Git tag's ref name with the "refs/tags/" prefix already
// stripped. Per the tag grammar, it is treated as an arbitrary byte string:
// a name participates in versioning only if, after removing the configured
// prefix, it parses as a SemVer 2.0 version. No trimming or case folding is
// applied anywhere in this type — the tag grammar match against tag_prefix
// is a byte-exact prefix comparison, and normalizing the name here would
// silently break that exactness.
type TagName string

// ParseTagName validates s as a TagName without any normalization: no
// trimming, no case folding. The tag grammar requires an exact byte-prefix
// match against tag_prefix, so altering the name here would corrupt that
// comparison.
func ParseTagName(s string) (TagName, error) {
	name := TagName(s)
	if err := name.Validate(); err != nil {
		return "", &vderrors.ParseError{Type: "TagName", Value: s}
	}
	return name, nil
}

// String returns the tag name.
func (n TagName) String() string {
	return string(n)
}

// Redacted returns the tag name; tag names carry no sensitive data.
func (n TagName) Redacted() string {
	return string(n)
}

// TypeName returns "TagName".
func (n TagName) TypeName() string {
	return "TagName"
}

// IsZero reports whether n is empty.
func (n TagName) IsZero() bool {
	return n == ""
}

// Equal reports whether n and other are byte-identical.
func (n TagName) Equal(other TagName) bool {
	return n == other
}

// Validate reports whether n is within TagNameMaxLen runes. The zero value
// is invalid: every real Tag must carry a name.
func (n TagName) Validate() error {
	if len(n) == 0 {
		return &vderrors.ValidationError{Type: "TagName", Reason: "must not be empty"}
	}
	if len([]rune(n)) > TagNameMaxLen {
		return &vderrors.ValidationError{
			Type:   "TagName",
			Reason: fmt.Sprintf("exceeds maximum length of %d runes", TagNameMaxLen),
			Value:  string(n),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n TagName) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, &vderrors.MarshalError{Type: "TagName", Value: len(n)}
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *TagName) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &vderrors.UnmarshalError{Type: "TagName", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseTagName(str)
	if err != nil {
		return &vderrors.UnmarshalError{Type: "TagName", Data: data, Reason: err.Error()}
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n TagName) MarshalYAML() (interface{}, error) {
	if err := n.Validate(); err != nil {
		return nil, &vderrors.MarshalError{Type: "TagName", Value: len(n)}
	}
	return string(n), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *TagName) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &vderrors.UnmarshalError{Type: "TagName", Reason: err.Error()}
	}
	parsed, err := ParseTagName(str)
	if err != nil {
		return &vderrors.UnmarshalError{Type: "TagName", Reason: err.Error()}
	}
	*n = parsed
	return nil
}

var _ vdmodel.Model = (*TagName)(nil)

// Tag pairs a ref name with the commit it resolves to. For annotated tags,
// TargetSha MUST already be the dereferenced commit sha, never the
// tag-object sha — resolving that distinction is the Git View's
// responsibility (see vdcore/versioner.GitView), not this type's.
type Tag struct {
	// Name is the tag's ref name, prefix stripped by the caller before
	// construction is not required here — tag intake strips prefixes, this
	// type just carries whatever name it was given.
	Name TagName

	// TargetSha is the commit object id this tag resolves to.
	TargetSha Hash
}

// NewTag constructs a Tag from a name and target commit sha.
func NewTag(name TagName, targetSha Hash) Tag {
	return Tag{Name: name, TargetSha: targetSha}
}

// String returns a human-readable representation.
func (t Tag) String() string {
	return fmt.Sprintf("Tag{Name:%s, TargetSha:%s}", t.Name, t.TargetSha)
}

// Redacted returns the same representation as String with the target sha
// abbreviated (see Hash.Short); tags carry no sensitive data.
func (t Tag) Redacted() string {
	return fmt.Sprintf("Tag{Name:%s, TargetSha:%s}", t.Name, t.TargetSha.Short())
}

// TypeName returns "Tag".
func (t Tag) TypeName() string {
	return "Tag"
}

// IsZero reports whether t has neither a name nor a target.
func (t Tag) IsZero() bool {
	return t.Name.IsZero() && t.TargetSha.IsZero()
}

// Equal reports whether t and other share the same name and target.
func (t Tag) Equal(other Tag) bool {
	return t.Name == other.Name && t.TargetSha == other.TargetSha
}

// Validate reports whether t's name and target sha are each well-formed.
func (t Tag) Validate() error {
	if err := t.Name.Validate(); err != nil {
		return &vderrors.ValidationError{Type: t.TypeName(), Field: "Name", Reason: fmt.Sprintf("invalid: %v", err)}
	}
	if t.TargetSha.IsZero() {
		return &vderrors.ValidationError{Type: t.TypeName(), Field: "TargetSha", Reason: "must not be empty"}
	}
	if err := t.TargetSha.Validate(); err != nil {
		return &vderrors.ValidationError{Type: t.TypeName(), Field: "TargetSha", Reason: fmt.Sprintf("invalid: %v", err)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Tag) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tag Tag
	return json.Marshal(tag(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type tag Tag
	if err := json.Unmarshal(data, (*tag)(t)); err != nil {
		return &vderrors.UnmarshalError{Type: t.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: t.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Tag) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tag Tag
	return tag(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	type tag Tag
	if err := node.Decode((*tag)(t)); err != nil {
		return &vderrors.UnmarshalError{Type: t.TypeName(), Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: t.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ vdmodel.Model = (*Tag)(nil)
