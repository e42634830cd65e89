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

// Package model defines the contracts that every vdcore domain value type
// (Version, MajorMinor, AutoIncrement, Hash, Tag, Commit) implements.
//
// Every value type representing a unit of the versioning domain implements
// Model or its constituent parts (Validatable, Serializable, Loggable,
// Identifiable, ZeroCheckable). This gives the whole domain a uniform way to
// validate, serialize, log, and inspect its values, and lets the generic
// helpers in this package (ValidateAll, FilterZero, ToJSON, ToYAML, Clone,
// Equal) operate on any of them.
//
// Implementations are treated as immutable value types: methods never mutate
// the receiver unless explicitly documented (only Unmarshal* methods do, by
// necessity). Concurrent reads are always safe; concurrent writes require
// external synchronization, which in practice means none of these types are
// ever mutated after construction.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining every contract a vdcore domain value
// implements. Satisfying Model gives a type validation, JSON/YAML
// serialization, a safe (redacted) and unsafe (full) string form, a
// canonical type name, and zero-value detection, which together make it
// usable with every generic helper in this package.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be fast, deterministic, and idempotent; it MUST NOT mutate
// the receiver or have side effects such as logging. It returns nil iff the
// receiver is in a state usable by the rest of the domain. Error messages
// SHOULD name the offending field and what was wrong with it rather than
// saying "invalid".
type Validatable interface {
	// Validate reports whether the receiver satisfies all of its invariants.
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON and
// YAML. Implementations call Validate before marshaling (refusing to
// serialize an invalid instance) and after unmarshaling (refusing to accept
// invalid external input), following the type-alias pattern to avoid
// recursing back into the custom Marshal/Unmarshal method.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that provide both a safe and an unsafe
// string form. None of vdcore's value types carry secrets, so in practice
// Redacted differs from String at most by abbreviating commit hashes (Hash,
// Commit, Tag); the distinction is kept because it is part of the Model
// contract every value type shares,
// and because it costs nothing to keep the door open for a future type that
// does carry something sensitive (a private registry token in a
// Configuration value, say).
type Loggable interface {
	// Redacted returns a string representation safe for production logs.
	Redacted() string

	// String returns a human-readable representation that may be more
	// verbose than Redacted. Never used for production logging.
	String() string
}

// Identifiable is implemented by types that can name their own Go type for
// logging and error messages, independent of any package prefix.
type Identifiable interface {
	// TypeName returns the constant, unqualified name of this type, e.g.
	// "Version" or "Hash".
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they hold
// no meaningful data.
type ZeroCheckable interface {
	// IsZero reports whether the receiver is the zero value for its type.
	IsZero() bool
}

// Comparable is implemented by types offering value equality beyond what
// == provides (for example, because the type embeds a slice).
type Comparable[T any] interface {
	// Equal reports whether the receiver and other represent the same value.
	Equal(other T) bool
}
