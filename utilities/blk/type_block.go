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

// Block declarative descriptor of one Google Cloud REST operation
type Block struct {
	Name         string
	DisplayName  string
	Category     string
	Description  string
	API          string
	Method       string
	PathTemplate string
	Scopes       []string
	Fields       []Field
	Output       jsonschema.Definition
	// PrepareBody optionally reshapes the body after defined fields are copied in
	PrepareBody func(input map[string]interface{}, body map[string]interface{}) error
}

// Descriptor the block as exposed to the hosting workflow runtime
type Descriptor struct {
	Name         string                `json:"name"`
	DisplayName  string                `json:"displayName"`
	Category     string                `json:"category"`
	Description  string                `json:"description,omitempty"`
	Method       string                `json:"method"`
	PathTemplate string                `json:"pathTemplate"`
	Scopes       []string              `json:"scopes"`
	Input        jsonschema.Definition `json:"input"`
	Output       jsonschema.Definition `json:"output"`
}
