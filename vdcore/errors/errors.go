// Package errors provides reusable error types for vdcore's enum-like and
// value-object types.
//
// This package defines common error types used across vdcore's value
// packages (vdcore/semver, vdcore/git, vdcore/versioner) when parsing,
// marshaling, and unmarshaling strongly typed values. Centralizing these
// types eliminates duplication and keeps diagnostics consistent across the
// whole module.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a strongly typed value fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails.
//
//   - ValidationError
//     Returned when Validate() on a Model type fails.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "AutoIncrement",
// "Hash"), and Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is "vdcore: invalid {Type} value: {Value}".
func (e *ParseError) Error() string {
	return "vdcore: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is "vdcore: cannot marshal invalid {Type} value: {Value}".
func (e *MarshalError) Error() string {
	return "vdcore: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason explains what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is "vdcore: cannot unmarshal {Type}: {Reason}". Data is
// intentionally not included to avoid overly verbose or sensitive logs.
func (e *UnmarshalError) Error() string {
	return "vdcore: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a Model type fails.
//
// Type identifies the type being validated, Field optionally identifies
// which field failed, Reason explains the failure, and Value optionally
// carries the offending value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation. May be empty
	// if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value. May be nil.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is "vdcore: invalid {Type}.{Field}: {Reason}" when
// Field is set, or "vdcore: invalid {Type}: {Reason}" otherwise.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "vdcore: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "vdcore: invalid " + e.Type + ": " + e.Reason
}

// GitUnavailableError is returned when the Git View could not be constructed
// or a required query against it failed unrecoverably (for example, the
// underlying repository is corrupt, or the Git backend returned a non-zero
// exit / parse error). It is always fatal: callers must decide whether to
// fall back to a default version or abort.
type GitUnavailableError struct {
	// Op names the Git View operation that failed (for example,
	// "GetTags" or "GetCommit").
	Op string

	// Reason carries the underlying cause.
	Reason error
}

// Error implements the error interface for GitUnavailableError.
func (e *GitUnavailableError) Error() string {
	if e.Reason != nil {
		return "vdcore: git unavailable during " + e.Op + ": " + e.Reason.Error()
	}
	return "vdcore: git unavailable during " + e.Op
}

// Unwrap allows errors.Is/errors.As to reach the underlying cause.
func (e *GitUnavailableError) Unwrap() error {
	return e.Reason
}

// InvalidConfigurationError is returned when a Versioner configuration value
// is malformed: build metadata that does not tokenize as SemVer 2.0 build
// metadata, or an auto_increment value outside {major, minor, patch}. It is
// fatal and preventable, and is raised at configuration intake rather than
// mid-walk.
type InvalidConfigurationError struct {
	// Field names the configuration field that failed intake (for example,
	// "build_metadata" or "auto_increment").
	Field string

	// Reason explains why the value was rejected.
	Reason string
}

// Error implements the error interface for InvalidConfigurationError.
func (e *InvalidConfigurationError) Error() string {
	return "vdcore: invalid configuration " + e.Field + ": " + e.Reason
}
