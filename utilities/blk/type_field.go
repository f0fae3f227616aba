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

// Location where a field goes in the HTTP request
type Location string

// Field locations
const (
	InPath  Location = "path"
	InQuery Location = "query"
	InBody  Location = "body"
)

// Field one typed configuration field of a block
type Field struct {
	Name        string
	Key         string // wire name when it differs from Name
	In          Location
	Type        jsonschema.DataType
	Description string
	Required    bool
	Enum        []string
	Items       *jsonschema.Definition
	Properties  map[string]jsonschema.Definition
}

// PathParam a required string substituted in the path template
func PathParam(name string, description string) Field {
	return Field{Name: name, In: InPath, Type: jsonschema.String, Description: description, Required: true}
}

// QueryParam an optional query string parameter
func QueryParam(name string, dataType jsonschema.DataType, description string) Field {
	return Field{Name: name, In: InQuery, Type: dataType, Description: description}
}

// BodyParam an optional top level property of the JSON request body
func BodyParam(name string, dataType jsonschema.DataType, description string) Field {
	return Field{Name: name, In: InBody, Type: dataType, Description: description}
}

// Require marks the field as mandatory
func (field Field) Require() Field {
	field.Required = true
	return field
}

// WithEnum restricts accepted string values
func (field Field) WithEnum(values ...string) Field {
	field.Enum = values
	return field
}

// WithItems describes array items
func (field Field) WithItems(items jsonschema.Definition) Field {
	field.Items = &items
	return field
}

// WithProperties describes object properties
func (field Field) WithProperties(properties map[string]jsonschema.Definition) Field {
	field.Properties = properties
	return field
}

// WithKey sets the wire name
func (field Field) WithKey(key string) Field {
	field.Key = key
	return field
}

// WireName name used in the query string or in the body
func (field Field) WireName() string {
	if field.Key != "" {
		return field.Key
	}
	return field.Name
}

// Definition JSON schema of the field
func (field Field) Definition() jsonschema.Definition {
	dataType := field.Type
	if dataType == "" {
		dataType = jsonschema.String
	}
	return jsonschema.Definition{
		Type:        dataType,
		Description: field.Description,
		Enum:        field.Enum,
		Items:       field.Items,
		Properties:  field.Properties,
	}
}
