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

// CommitParentsMaxCount bounds the number of parents a single Commit may
// carry. Git supports unbounded octopus merges in principle; 64 is far
// beyond anything seen in practice and guards the walker against pathological
// or corrupt input.
const CommitParentsMaxCount = 64

// Commit is a single node of the graph the Versioner walks: its own object
// id and the ordered list of its parents' object ids, exactly as Git
// records them (first parent first). No other metadata participates in
// versioning, so Commit carries none.
type Commit struct {
	// Hash is this commit's object id.
	Hash Hash

	// Parents are the object ids of this commit's parents, in the order
	// Git records them. Empty for a root commit.
	Parents []Hash
}

// NewCommit constructs a Commit from a hash and an ordered parent list.
func NewCommit(hash Hash, parents []Hash) Commit {
	return Commit{Hash: hash, Parents: parents}
}

// ShortSha returns the commit's abbreviated hash, used only for logging.
func (c Commit) ShortSha() string {
	return c.Hash.Short()
}

// String returns a human-readable representation of the commit.
func (c Commit) String() string {
	return fmt.Sprintf("Commit{Hash:%s, Parents:%d}", c.Hash, len(c.Parents))
}

// Redacted returns the same representation as String with the hash
// abbreviated (see Hash.Short); commit identity carries nothing sensitive.
func (c Commit) Redacted() string {
	return fmt.Sprintf("Commit{Hash:%s, Parents:%d}", c.Hash.Short(), len(c.Parents))
}

// TypeName returns "Commit".
func (c Commit) TypeName() string {
	return "Commit"
}

// IsZero reports whether c has no hash and no parents.
func (c Commit) IsZero() bool {
	return c.Hash.IsZero() && len(c.Parents) == 0
}

// Equal reports whether c and other have the same hash and parent list,
// in the same order.
func (c Commit) Equal(other Commit) bool {
	if c.Hash != other.Hash {
		return false
	}
	if len(c.Parents) != len(other.Parents) {
		return false
	}
	for i := range c.Parents {
		if c.Parents[i] != other.Parents[i] {
			return false
		}
	}
	return true
}

// Validate reports whether c's hash and every parent hash are well-formed,
// and that the parent count is within CommitParentsMaxCount.
func (c Commit) Validate() error {
	if c.Hash.IsZero() {
		return &vderrors.ValidationError{Type: c.TypeName(), Field: "Hash", Reason: "must not be empty"}
	}
	if err := c.Hash.Validate(); err != nil {
		return &vderrors.ValidationError{Type: c.TypeName(), Field: "Hash", Reason: fmt.Sprintf("invalid: %v", err)}
	}

	if len(c.Parents) > CommitParentsMaxCount {
		return &vderrors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Parents",
			Reason: fmt.Sprintf("has too many parents: %d (maximum %d)", len(c.Parents), CommitParentsMaxCount),
		}
	}
	for i, parent := range c.Parents {
		if parent.IsZero() {
			return &vderrors.ValidationError{Type: c.TypeName(), Field: fmt.Sprintf("Parents[%d]", i), Reason: "must not be empty"}
		}
		if err := parent.Validate(); err != nil {
			return &vderrors.ValidationError{Type: c.TypeName(), Field: fmt.Sprintf("Parents[%d]", i), Reason: fmt.Sprintf("invalid: %v", err)}
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Commit) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type commit Commit
	return json.Marshal(commit(c))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Commit) UnmarshalJSON(data []byte) error {
	type commit Commit
	if err := json.Unmarshal(data, (*commit)(c)); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Commit) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type commit Commit
	return commit(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Commit) UnmarshalYAML(node *yaml.Node) error {
	type commit Commit
	if err := node.Decode((*commit)(c)); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &vderrors.UnmarshalError{Type: c.TypeName(), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

var _ vdmodel.Model = (*Commit)(nil)
