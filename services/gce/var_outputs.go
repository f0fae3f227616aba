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

package gce

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

var stringDef = jsonschema.Definition{Type: jsonschema.String}
var stringArrayDef = jsonschema.Definition{Type: jsonschema.Array, Items: &stringDef}

var warningOutput = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"code":    stringDef,
		"message": stringDef,
		"data":    {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
	},
}

var operationOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "compute#operation, a long running operation",
	Properties: map[string]jsonschema.Definition{
		"kind":          stringDef,
		"id":            stringDef,
		"name":          stringDef,
		"operationType": stringDef,
		"status":        {Type: jsonschema.String, Enum: []string{"PENDING", "RUNNING", "DONE"}},
		"statusMessage": stringDef,
		"targetLink":    stringDef,
		"targetId":      stringDef,
		"user":          stringDef,
		"progress":      {Type: jsonschema.Integer},
		"insertTime":    stringDef,
		"startTime":     stringDef,
		"endTime":       stringDef,
		"region":        stringDef,
		"zone":          stringDef,
		"selfLink":      stringDef,
		"error": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"errors": {Type: jsonschema.Array, Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"code":     stringDef,
						"location": stringDef,
						"message":  stringDef,
					},
				}},
			},
		},
		"warnings": {Type: jsonschema.Array, Items: &warningOutput},
	},
}

func resourceOutput(kind string, properties map[string]jsonschema.Definition) jsonschema.Definition {
	all := map[string]jsonschema.Definition{
		"kind":              stringDef,
		"id":                stringDef,
		"name":              stringDef,
		"description":       stringDef,
		"creationTimestamp": stringDef,
		"selfLink":          stringDef,
	}
	for name, definition := range properties {
		all[name] = definition
	}
	return jsonschema.Definition{
		Type:        jsonschema.Object,
		Description: kind,
		Properties:  all,
	}
}

func listOutput(kind string, item jsonschema.Definition) jsonschema.Definition {
	return jsonschema.Definition{
		Type:        jsonschema.Object,
		Description: kind,
		Properties: map[string]jsonschema.Definition{
			"kind":          stringDef,
			"id":            stringDef,
			"items":         {Type: jsonschema.Array, Items: &item},
			"nextPageToken": stringDef,
			"selfLink":      stringDef,
			"warning":       warningOutput,
		},
	}
}

func aggregatedListOutput(kind string, scopedListKey string, item jsonschema.Definition) jsonschema.Definition {
	scopedList := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			scopedListKey: {Type: jsonschema.Array, Items: &item},
			"warning":     warningOutput,
		},
	}
	return jsonschema.Definition{
		Type:        jsonschema.Object,
		Description: kind + ", items keyed by scope such as regions/us-central1",
		Properties: map[string]jsonschema.Definition{
			"kind":          stringDef,
			"id":            stringDef,
			"items":         {Type: jsonschema.Object, Properties: map[string]jsonschema.Definition{"regions/{region}": scopedList}},
			"nextPageToken": stringDef,
			"selfLink":      stringDef,
			"unreachables":  stringArrayDef,
			"warning":       warningOutput,
		},
	}
}
