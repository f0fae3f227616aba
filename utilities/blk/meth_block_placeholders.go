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
	"regexp"
)

var placeholderRegexp = regexp.MustCompile(`\{\+?([A-Za-z0-9_]+)\}`)

// Placeholders names found in the path template, in order of appearance
func (block Block) Placeholders() (names []string) {
	for _, match := range placeholderRegexp.FindAllStringSubmatch(block.PathTemplate, -1) {
		names = append(names, match[1])
	}
	return names
}

// Field returns the field with a given name
func (block Block) Field(name string) (Field, bool) {
	for _, field := range block.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
