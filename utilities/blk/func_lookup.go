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
	"strconv"
)

// lookup returns the value of a field and whether it is defined
// A missing key and a null value are both undefined
func lookup(input map[string]interface{}, name string) (interface{}, bool) {
	value, ok := input[name]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// formatScalar renders a value for the path or the query string
func formatScalar(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// normalizeInput converts yaml.v2 map[interface{}]interface{} into map[string]interface{}
// so that inputs read from YAML files can be JSON encoded
func normalizeInput(value interface{}) interface{} {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[fmt.Sprintf("%v", key)] = normalizeInput(item)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[key] = normalizeInput(item)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(v))
		for i, item := range v {
			s[i] = normalizeInput(item)
		}
		return s
	default:
		return v
	}
}

// NormalizeInput returns a copy of input safe to JSON encode
func NormalizeInput(input map[string]interface{}) map[string]interface{} {
	if input == nil {
		return map[string]interface{}{}
	}
	return normalizeInput(input).(map[string]interface{})
}
