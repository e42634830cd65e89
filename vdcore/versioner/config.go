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

// Package versioner is the orchestrator: it consumes a GitView, uses the
// semver package's Version Grammar, and produces the final Version
// according to the walk-and-select algorithm. Everything stateful about one
// invocation (the worklist, the visited set, the candidate list) is scoped
// to a single GetVersion call.
package versioner

import (
	"encoding/json"
	"fmt"

	vdsemver "verdepth.dev/vdcore/semver"

	"gopkg.in/yaml.v3"

	vderrors "verdepth.dev/vdcore/errors"
	vdmodel "verdepth.dev/vdcore/model"
)

// DefaultPreReleaseIdentifiers is used when Configuration.DefaultPreReleaseIdentifiers
// is nil.
var DefaultPreReleaseIdentifiers = []string{"alpha", "0"}

// Configuration is the full bag of options GetVersion accepts, owned by a
// single invocation and discarded on return.
type Configuration struct {
	// TagPrefix is stripped from tag names before they are parsed as
	// versions. May be empty.
	TagPrefix string

	// MinMajorMinor is a floor applied to the selected release version.
	MinMajorMinor vdsemver.MajorMinor

	// BuildMetadata is appended as SemVer build metadata on the final
	// version. May be empty.
	BuildMetadata string

	// AutoIncrement names which component WithHeight bumps when height is
	// applied to a release tag.
	AutoIncrement vdsemver.AutoIncrement

	// DefaultPreReleaseIdentifiers are the pre-release identifiers used for
	// the synthetic version when no release or pre-release tag is
	// reachable. Defaults to DefaultPreReleaseIdentifiers when nil.
	DefaultPreReleaseIdentifiers []string

	// IgnoreHeight, if true, means the walk's height is never incorporated
	// into the final version.
	IgnoreHeight bool
}

// effectiveDefaultPreReleaseIdentifiers returns c.DefaultPreReleaseIdentifiers,
// or the package default if it is nil.
func (c Configuration) effectiveDefaultPreReleaseIdentifiers() []string {
	if c.DefaultPreReleaseIdentifiers == nil {
		return DefaultPreReleaseIdentifiers
	}
	return c.DefaultPreReleaseIdentifiers
}

// String returns a human-readable representation of c.
func (c Configuration) String() string {
	return fmt.Sprintf(
		"Configuration{TagPrefix:%q, MinMajorMinor:%s, BuildMetadata:%q, AutoIncrement:%s, IgnoreHeight:%t}",
		c.TagPrefix, c.MinMajorMinor, c.BuildMetadata, c.AutoIncrement, c.IgnoreHeight,
	)
}

// Redacted returns the same representation as String; a Configuration
// carries no secrets.
func (c Configuration) Redacted() string { return c.String() }

// TypeName returns "Configuration".
func (c Configuration) TypeName() string { return "Configuration" }

// IsZero reports whether c is the Go zero value for Configuration.
func (c Configuration) IsZero() bool {
	return c.TagPrefix == "" &&
		c.MinMajorMinor.IsZero() &&
		c.BuildMetadata == "" &&
		c.AutoIncrement == vdsemver.AutoIncrementPatch &&
		len(c.DefaultPreReleaseIdentifiers) == 0 &&
		!c.IgnoreHeight
}

// Validate checks that MinMajorMinor has no negative component, that
// AutoIncrement is one of the three allowed values, and that BuildMetadata
// tokenizes as SemVer 2.0 build metadata. Everything else (TagPrefix,
// DefaultPreReleaseIdentifiers, IgnoreHeight) is accepted as given.
func (c Configuration) Validate() error {
	if err := c.MinMajorMinor.Validate(); err != nil {
		return fmt.Errorf("Configuration.MinMajorMinor: %w", err)
	}

	if !c.AutoIncrement.Valid() {
		return &vderrors.InvalidConfigurationError{
			Field:  "auto_increment",
			Reason: "must be one of major, minor, patch",
		}
	}

	if _, err := (vdsemver.Version{}).AddBuildMetadata(c.BuildMetadata); err != nil {
		return err
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Configuration) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type configuration Configuration
	return json.Marshal(configuration(c))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type configuration Configuration
	if err := json.Unmarshal(data, (*configuration)(c)); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler. YAML is this repository's
// configuration-file format (see cmd/vdver), so Configuration round-trips
// through it the same way every other Model value does.
func (c Configuration) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type configuration Configuration
	return configuration(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	type configuration Configuration
	if err := node.Decode((*configuration)(c)); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ vdmodel.Model = (*Configuration)(nil)
