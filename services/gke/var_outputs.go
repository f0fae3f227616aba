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

package gke

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

var operationOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "A long running GKE operation",
	Properties: map[string]jsonschema.Definition{
		"name":          stringDef,
		"zone":          stringDef,
		"location":      stringDef,
		"operationType": stringDef,
		"status":        {Type: jsonschema.String, Enum: []string{"STATUS_UNSPECIFIED", "PENDING", "RUNNING", "DONE", "ABORTING"}},
		"detail":        stringDef,
		"statusMessage": stringDef,
		"selfLink":      stringDef,
		"targetLink":    stringDef,
		"startTime":     stringDef,
		"endTime":       stringDef,
		"progress":      objectDef,
		"error":         objectDef,
	},
}

var nodePoolOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "A group of nodes within a cluster with the same configuration",
	Properties: map[string]jsonschema.Definition{
		"name":              stringDef,
		"config":            objectDef,
		"initialNodeCount":  {Type: jsonschema.Integer},
		"locations":         stringArrayDef,
		"networkConfig":     objectDef,
		"selfLink":          stringDef,
		"version":           stringDef,
		"instanceGroupUrls": stringArrayDef,
		"status":            {Type: jsonschema.String, Enum: []string{"STATUS_UNSPECIFIED", "PROVISIONING", "RUNNING", "RUNNING_WITH_ERROR", "RECONCILING", "STOPPING", "ERROR"}},
		"statusMessage":     stringDef,
		"autoscaling":       objectDef,
		"management":        objectDef,
		"maxPodsConstraint": objectDef,
		"upgradeSettings":   objectDef,
	},
}

var clusterOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "A Google Kubernetes Engine cluster",
	Properties: map[string]jsonschema.Definition{
		"name":                   stringDef,
		"description":            stringDef,
		"location":               stringDef,
		"locations":              stringArrayDef,
		"network":                stringDef,
		"subnetwork":             stringDef,
		"clusterIpv4Cidr":        stringDef,
		"servicesIpv4Cidr":       stringDef,
		"endpoint":               stringDef,
		"currentMasterVersion":   stringDef,
		"currentNodeVersion":     stringDef,
		"currentNodeCount":       {Type: jsonschema.Integer},
		"status":                 {Type: jsonschema.String, Enum: []string{"STATUS_UNSPECIFIED", "PROVISIONING", "RUNNING", "RECONCILING", "STOPPING", "ERROR", "DEGRADED"}},
		"statusMessage":          stringDef,
		"nodePools":              {Type: jsonschema.Array, Items: &nodePoolOutput},
		"masterAuth":             objectDef,
		"networkPolicy":          objectDef,
		"ipAllocationPolicy":     objectDef,
		"maintenancePolicy":      objectDef,
		"legacyAbac":             objectDef,
		"privateClusterConfig":   objectDef,
		"resourceLabels":         objectDef,
		"labelFingerprint":       stringDef,
		"releaseChannel":         objectDef,
		"workloadIdentityConfig": objectDef,
		"selfLink":               stringDef,
		"createTime":             stringDef,
	},
}

var serverConfigOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "Kubernetes Engine service configuration",
	Properties: map[string]jsonschema.Definition{
		"defaultClusterVersion": stringDef,
		"validNodeVersions":     stringArrayDef,
		"defaultImageType":      stringDef,
		"validImageTypes":       stringArrayDef,
		"validMasterVersions":   stringArrayDef,
		"channels":              {Type: jsonschema.Array, Items: &objectDef},
	},
}

func listOutput(key string, item jsonschema.Definition) jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			key:            {Type: jsonschema.Array, Items: &item},
			"missingZones": stringArrayDef,
		},
	}
}

var emptyOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "Empty response",
}
