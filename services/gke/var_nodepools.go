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
	"net/http"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var nodePoolAutoscalingDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"enabled":           {Type: jsonschema.Boolean},
		"minNodeCount":      {Type: jsonschema.Integer},
		"maxNodeCount":      {Type: jsonschema.Integer},
		"totalMinNodeCount": {Type: jsonschema.Integer},
		"totalMaxNodeCount": {Type: jsonschema.Integer},
		"locationPolicy":    {Type: jsonschema.String, Enum: []string{"LOCATION_POLICY_UNSPECIFIED", "BALANCED", "ANY"}},
		"autoprovisioned":   {Type: jsonschema.Boolean},
	},
}

var nodeManagementDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"autoUpgrade": {Type: jsonschema.Boolean},
		"autoRepair":  {Type: jsonschema.Boolean},
	},
}

var nodePoolsList = blk.Block{
	Name:         "gke.nodePools.list",
	DisplayName:  "List Node Pools",
	Category:     category,
	Description:  "Lists the node pools for a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: nodePoolsPath,
	Scopes:       scopes,
	Fields:       clusterFields(),
	Output:       listOutput("nodePools", nodePoolOutput),
}

var nodePoolsGet = blk.Block{
	Name:         "gke.nodePools.get",
	DisplayName:  "Get Node Pool",
	Category:     category,
	Description:  "Retrieves the requested node pool.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: nodePoolPath,
	Scopes:       scopes,
	Fields:       nodePoolFields(),
	Output:       nodePoolOutput,
}

var nodePoolsCreate = blk.Block{
	Name:         "gke.nodePools.create",
	DisplayName:  "Create Node Pool",
	Category:     category,
	Description:  "Creates a node pool for a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: nodePoolsPath,
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("nodePool", jsonschema.Object, "The node pool to create: name, config, initialNodeCount, autoscaling, management...").WithProperties(map[string]jsonschema.Definition{
			"name":             stringDef,
			"config":           objectDef,
			"initialNodeCount": {Type: jsonschema.Integer},
			"locations":        stringArrayDef,
			"autoscaling":      nodePoolAutoscalingDef,
			"management":       nodeManagementDef,
			"version":          stringDef,
		}).Require(),
	),
	Output: operationOutput,
}

var nodePoolsUpdate = blk.Block{
	Name:         "gke.nodePools.update",
	DisplayName:  "Update Node Pool",
	Category:     category,
	Description:  "Updates the version and/or image type for the specified node pool.",
	API:          blk.APIContainer,
	Method:       http.MethodPut,
	PathTemplate: nodePoolPath,
	Scopes:       scopes,
	Fields: nodePoolFields(
		blk.BodyParam("nodeVersion", jsonschema.String, "The Kubernetes version to change the nodes to, - for the master version.").Require(),
		blk.BodyParam("imageType", jsonschema.String, "The desired image type for the node pool, e.g. COS_CONTAINERD.").Require(),
		blk.BodyParam("locations", jsonschema.Array, "The desired list of Compute Engine zones in which the node pool nodes should be located.").WithItems(stringDef),
		blk.BodyParam("upgradeSettings", jsonschema.Object, "Upgrade settings control disruption and speed of the upgrade."),
		blk.BodyParam("labels", jsonschema.Object, "The desired node labels, replacing existing ones."),
		blk.BodyParam("tags", jsonschema.Object, "The desired network tags, e.g. {\"tags\": [\"gke-node\"]}."),
		blk.BodyParam("taints", jsonschema.Object, "The desired node taints."),
	),
	Output: operationOutput,
}

var nodePoolsDelete = blk.Block{
	Name:         "gke.nodePools.delete",
	DisplayName:  "Delete Node Pool",
	Category:     category,
	Description:  "Deletes a node pool from a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodDelete,
	PathTemplate: nodePoolPath,
	Scopes:       scopes,
	Fields:       nodePoolFields(),
	Output:       operationOutput,
}

var nodePoolsSetSize = blk.Block{
	Name:         "gke.nodePools.setSize",
	DisplayName:  "Set Node Pool Size",
	Category:     category,
	Description:  "Sets the size for a specific node pool. The new size is used for all replicas, including future replicas created by modifying locations.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: nodePoolPath + ":setSize",
	Scopes:       scopes,
	Fields: nodePoolFields(
		blk.BodyParam("nodeCount", jsonschema.Integer, "The desired node count for the pool.").Require(),
	),
	Output: operationOutput,
}

var nodePoolsSetAutoscaling = blk.Block{
	Name:         "gke.nodePools.setAutoscaling",
	DisplayName:  "Set Node Pool Autoscaling",
	Category:     category,
	Description:  "Sets the autoscaling settings for the specified node pool.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: nodePoolPath + ":setAutoscaling",
	Scopes:       scopes,
	Fields: nodePoolFields(
		blk.BodyParam("autoscaling", jsonschema.Object, "Autoscaling configuration for the node pool.").WithProperties(nodePoolAutoscalingDef.Properties).Require(),
	),
	Output: operationOutput,
}

var nodePoolsSetManagement = blk.Block{
	Name:         "gke.nodePools.setManagement",
	DisplayName:  "Set Node Pool Management",
	Category:     category,
	Description:  "Sets the NodeManagement options for a node pool: auto upgrade and auto repair.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: nodePoolPath + ":setManagement",
	Scopes:       scopes,
	Fields: nodePoolFields(
		blk.BodyParam("management", jsonschema.Object, "NodeManagement configuration for the node pool.").WithProperties(nodeManagementDef.Properties).Require(),
	),
	Output: operationOutput,
}

var nodePoolsRollback = blk.Block{
	Name:         "gke.nodePools.rollback",
	DisplayName:  "Rollback Node Pool Upgrade",
	Category:     category,
	Description:  "Rolls back a previously aborted or failed node pool upgrade. A no-op if the last upgrade successfully completed.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: nodePoolPath + ":rollback",
	Scopes:       scopes,
	Fields: nodePoolFields(
		blk.BodyParam("respectPdb", jsonschema.Boolean, "Respect PodDisruptionBudgets during the rollback, surge upgrades only."),
	),
	Output: operationOutput,
}
