// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blk

import (
	"fmt"
	"strings"

	"github.com/BrunoReboul/gcpblocks/utilities/str"
	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Validate checks required fields, enum values and coarse types
func (block Block) Validate(input map[string]interface{}) error {
	var problems []string
	for _, field := range block.Fields {
		value, defined := lookup(input, field.Name)
		if !defined {
			if field.Required {
				problems = append(problems, fmt.Sprintf("missing required %s field '%s'", field.In, field.Name))
			}
			continue
		}
		if field.In == InPath && formatScalar(value) == "" {
			problems = append(problems, fmt.Sprintf("empty path field '%s'", field.Name))
			continue
		}
		if problem := checkType(field, value); problem != "" {
			problems = append(problems, problem)
			continue
		}
		if len(field.Enum) > 0 {
			if s, ok := value.(string); !ok || !str.Find(field.Enum, s) {
				problems = append(problems, fmt.Sprintf("field '%s' value '%v' should be one of %v", field.Name, value, field.Enum))
			}
		}
	}
	if len(problems) > 0 {
		return errors.Errorf("block %s invalid input: %s", block.Name, strings.Join(problems, "; "))
	}
	return nil
}

func checkType(field Field, value interface{}) string {
	ok := true
	switch field.Type {
	case jsonschema.String:
		switch value.(type) {
		case map[string]interface{}, map[interface{}]interface{}, []interface{}, []string:
			ok = false
		}
	case jsonschema.Object:
		_, ok = value.(map[string]interface{})
	case jsonschema.Array:
		_, ok = value.([]interface{})
		if !ok {
			_, ok = value.([]string)
		}
	case jsonschema.Boolean:
		switch value.(type) {
		case bool:
		case string:
			ok = field.In != InBody
		default:
			ok = false
		}
	case jsonschema.Integer, jsonschema.Number:
		switch value.(type) {
		case float64, float32, int, int32, int64, uint, uint32, uint64:
		case string:
			// int64 values are strings in Google JSON APIs
		default:
			ok = false
		}
	}
	if !ok {
		return fmt.Sprintf("field '%s' should be of type %s", field.Name, field.Type)
	}
	return ""
}
