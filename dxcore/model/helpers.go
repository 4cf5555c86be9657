/*
   Copyright 2026 The DIRPX Authors

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
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns every validation
// failure, not only the first one.
//
// Each model's Validate method is invoked in order. Failures are wrapped
// with the model's position and type name, then aggregated through an
// rxmerr.Collector so callers receive one combined error describing all
// invalid elements. An empty slice is valid and yields nil. The function
// never panics and always processes the entire slice.
//
//	if err := model.ValidateAll(commits); err != nil {
//	    return Decision{}, err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models whose IsZero
// reports false.
//
// The result is always a fresh allocation; the input slice is never
// mutated and relative order is preserved. FilterZero is useful for
// cleaning optional values out of caller-supplied slices before batch
// processing.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))
	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}
	return result
}

// SafeString returns the string form of a model appropriate for the
// requested visibility: the full String representation when unsafe is
// true, the Redacted form otherwise.
//
// Callers producing log output SHOULD pass unsafe=false; test helpers and
// local tooling MAY pass unsafe=true for full detail.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON serializes a model to JSON after validating it.
//
// The model's own MarshalJSON is responsible for the validate-on-marshal
// contract; ToJSON exists so callers get a uniform entry point with a
// wrapped, type-named error on failure.
func ToJSON[T Model](m T) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s to JSON: %w", m.TypeName(), err)
	}
	return data, nil
}

// ToYAML serializes a model to YAML after validating it.
//
// Like ToJSON, the type's own MarshalYAML enforces validity; ToYAML adds
// the uniform wrapped error.
func ToYAML[T Model](m T) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s to YAML: %w", m.TypeName(), err)
	}
	return data, nil
}

// FromJSON deserializes JSON data into a model and validates the result.
//
// The target's UnmarshalJSON performs decoding and validation; FromJSON
// wraps failures with the type name for uniform diagnostics.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot deserialize %s from JSON: %w", (*m).TypeName(), err)
	}
	return nil
}

// FromYAML deserializes YAML data into a model and validates the result.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot deserialize %s from YAML: %w", (*m).TypeName(), err)
	}
	return nil
}
