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

package gsm

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

var replicationDef = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "Either automatic or userManaged with a list of replicas locations",
	Properties: map[string]jsonschema.Definition{
		"automatic": objectDef,
		"userManaged": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"replicas": {Type: jsonschema.Array, Items: &jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{"location": stringDef, "customerManagedEncryption": objectDef},
				}},
			},
		},
	},
}

var secretOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "A Secret is a logical secret whose value and versions can be accessed",
	Properties: map[string]jsonschema.Definition{
		"name":           stringDef,
		"replication":    replicationDef,
		"createTime":     stringDef,
		"labels":         objectDef,
		"topics":         {Type: jsonschema.Array, Items: &objectDef},
		"expireTime":     stringDef,
		"ttl":            stringDef,
		"etag":           stringDef,
		"rotation":       objectDef,
		"versionAliases": objectDef,
		"annotations":    objectDef,
	},
}

var versionOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "A secret version resource",
	Properties: map[string]jsonschema.Definition{
		"name":                           stringDef,
		"createTime":                     stringDef,
		"destroyTime":                    stringDef,
		"state":                          {Type: jsonschema.String, Enum: []string{"STATE_UNSPECIFIED", "ENABLED", "DISABLED", "DESTROYED"}},
		"replicationStatus":              objectDef,
		"etag":                           stringDef,
		"clientSpecifiedPayloadChecksum": {Type: jsonschema.Boolean},
	},
}

var payloadDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"data":       {Type: jsonschema.String, Description: "base64 encoded secret data"},
		"dataCrc32c": {Type: jsonschema.String, Description: "CRC32C checksum of data, int64 as a string"},
	},
}

var accessOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "The secret payload, data is base64 encoded",
	Properties: map[string]jsonschema.Definition{
		"name":    stringDef,
		"payload": payloadDef,
	},
}

var policyDef = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "An Identity and Access Management policy",
	Properties: map[string]jsonschema.Definition{
		"version": {Type: jsonschema.Integer},
		"etag":    stringDef,
		"bindings": {Type: jsonschema.Array, Items: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"role":      stringDef,
				"members":   stringArrayDef,
				"condition": objectDef,
			},
		}},
		"auditConfigs": {Type: jsonschema.Array, Items: &objectDef},
	},
}

var locationOutput = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"name":        stringDef,
		"locationId":  stringDef,
		"displayName": stringDef,
		"labels":      objectDef,
		"metadata":    objectDef,
	},
}

var emptyOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "Empty response",
}

func listOutput(key string, item jsonschema.Definition) jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			key:             {Type: jsonschema.Array, Items: &item},
			"nextPageToken": stringDef,
			"totalSize":     {Type: jsonschema.Integer},
		},
	}
}
