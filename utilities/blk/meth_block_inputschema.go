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
	"github.com/sashabaranov/go-openai/jsonschema"
)

// InputSchema JSON schema of the block configuration
func (block Block) InputSchema() jsonschema.Definition {
	properties := make(map[string]jsonschema.Definition, len(block.Fields))
	var required []string
	for _, field := range block.Fields {
		properties[field.Name] = field.Definition()
		if field.Required {
			required = append(required, field.Name)
		}
	}
	return jsonschema.Definition{
		Type:        jsonschema.Object,
		Description: block.Description,
		Properties:  properties,
		Required:    required,
	}
}

// Describe returns the block descriptor
func (block Block) Describe() Descriptor {
	return Descriptor{
		Name:         block.Name,
		DisplayName:  block.DisplayName,
		Category:     block.Category,
		Description:  block.Description,
		Method:       block.Method,
		PathTemplate: block.PathTemplate,
		Scopes:       block.Scopes,
		Input:        block.InputSchema(),
		Output:       block.Output,
	}
}
