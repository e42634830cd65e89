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

package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// fakeModel is the minimal Model implementation used to exercise the
// generic helpers in helpers_test.go and to document the contract here.
type fakeModel struct {
	Name  string
	valid bool
}

func (f fakeModel) Validate() error {
	if !f.valid {
		return &fakeValidationError{f.Name}
	}
	return nil
}

func (f fakeModel) MarshalJSON() ([]byte, error) { return []byte(`"` + f.Name + `"`), nil }
func (f *fakeModel) UnmarshalJSON(data []byte) error {
	f.Name = string(data)
	f.valid = true
	return nil
}
func (f fakeModel) MarshalYAML() (interface{}, error) { return f.Name, nil }
func (f *fakeModel) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&f.Name)
}

func (f fakeModel) Redacted() string { return f.Name }
func (f fakeModel) String() string   { return f.Name }
func (f fakeModel) TypeName() string { return "fakeModel" }
func (f fakeModel) IsZero() bool     { return f.Name == "" }

type fakeValidationError struct{ name string }

func (e *fakeValidationError) Error() string { return "invalid fakeModel: " + e.name }

func TestModelInterfaceIsSatisfiable(t *testing.T) {
	var _ Validatable = fakeModel{}
	var _ Identifiable = fakeModel{}
	var _ Loggable = fakeModel{}
	var _ ZeroCheckable = fakeModel{}
	var _ Serializable = (*fakeModel)(nil)
	var _ Model = (*fakeModel)(nil)
}

func TestFakeModel_IsZero(t *testing.T) {
	if !(fakeModel{}).IsZero() {
		t.Error("expected zero value fakeModel to report IsZero() == true")
	}
	if (fakeModel{Name: "x"}).IsZero() {
		t.Error("expected non-empty fakeModel to report IsZero() == false")
	}
}
