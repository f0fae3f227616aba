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

var clustersList = blk.Block{
	Name:         "gke.clusters.list",
	DisplayName:  "List Clusters",
	Category:     category,
	Description:  "Lists all clusters owned by a project in either the specified zone or all zones, use location - for all.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: clustersPath,
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), locationField()},
	Output:       listOutput("clusters", clusterOutput),
}

var clustersGet = blk.Block{
	Name:         "gke.clusters.get",
	DisplayName:  "Get Cluster",
	Category:     category,
	Description:  "Gets the details of a specific cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: clusterPath,
	Scopes:       scopes,
	Fields:       clusterFields(),
	Output:       clusterOutput,
}

var clustersCreate = blk.Block{
	Name:         "gke.clusters.create",
	DisplayName:  "Create Cluster",
	Category:     category,
	Description:  "Creates a cluster, consisting of the specified number and type of Google Compute Engine instances.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clustersPath,
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		locationField(),
		blk.BodyParam("cluster", jsonschema.Object, "A cluster resource: name, network, subnetwork, nodePools or initialNodeCount, ipAllocationPolicy, privateClusterConfig, releaseChannel...").WithProperties(map[string]jsonschema.Definition{
			"name":             stringDef,
			"description":      stringDef,
			"initialNodeCount": {Type: jsonschema.Integer},
			"network":          stringDef,
			"subnetwork":       stringDef,
			"locations":        stringArrayDef,
			"nodePools":        {Type: jsonschema.Array, Items: &objectDef},
			"resourceLabels":   objectDef,
		}).Require(),
	},
	Output: operationOutput,
}

var clustersUpdate = blk.Block{
	Name:         "gke.clusters.update",
	DisplayName:  "Update Cluster",
	Category:     category,
	Description:  "Updates the settings of a specific cluster, one change at a time.",
	API:          blk.APIContainer,
	Method:       http.MethodPut,
	PathTemplate: clusterPath,
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("update", jsonschema.Object, "A description of the update: desiredMasterVersion, desiredNodeVersion, desiredLocations, desiredLoggingService...").WithProperties(map[string]jsonschema.Definition{
			"desiredMasterVersion":     stringDef,
			"desiredNodeVersion":       stringDef,
			"desiredNodePoolId":        stringDef,
			"desiredLocations":         stringArrayDef,
			"desiredLoggingService":    stringDef,
			"desiredMonitoringService": stringDef,
			"desiredAddonsConfig":      objectDef,
			"desiredReleaseChannel":    objectDef,
		}).Require(),
	),
	Output: operationOutput,
}

var clustersDelete = blk.Block{
	Name:         "gke.clusters.delete",
	DisplayName:  "Delete Cluster",
	Category:     category,
	Description:  "Deletes the cluster, including the Kubernetes endpoint and all worker nodes.",
	API:          blk.APIContainer,
	Method:       http.MethodDelete,
	PathTemplate: clusterPath,
	Scopes:       scopes,
	Fields:       clusterFields(),
	Output:       operationOutput,
}

var clustersSetResourceLabels = blk.Block{
	Name:         "gke.clusters.setResourceLabels",
	DisplayName:  "Set Cluster Labels",
	Category:     category,
	Description:  "Sets labels on a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":setResourceLabels",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("resourceLabels", jsonschema.Object, "The labels to set for that cluster.").Require(),
		blk.BodyParam("labelFingerprint", jsonschema.String, "The fingerprint of the previous set of labels, from a get request.").Require(),
	),
	Output: operationOutput,
}

var clustersSetNetworkPolicy = blk.Block{
	Name:         "gke.clusters.setNetworkPolicy",
	DisplayName:  "Set Cluster Network Policy",
	Category:     category,
	Description:  "Enables or disables Network Policy for a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":setNetworkPolicy",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("networkPolicy", jsonschema.Object, "Configuration options for the NetworkPolicy feature.").WithProperties(map[string]jsonschema.Definition{
			"enabled":  {Type: jsonschema.Boolean},
			"provider": {Type: jsonschema.String, Enum: []string{"PROVIDER_UNSPECIFIED", "CALICO"}},
		}).Require(),
	),
	Output: operationOutput,
}

var clustersSetMaintenancePolicy = blk.Block{
	Name:         "gke.clusters.setMaintenancePolicy",
	DisplayName:  "Set Cluster Maintenance Policy",
	Category:     category,
	Description:  "Sets the maintenance policy for a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":setMaintenancePolicy",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("maintenancePolicy", jsonschema.Object, "The maintenance policy to be set, an empty object clears it.").WithProperties(map[string]jsonschema.Definition{
			"window":          objectDef,
			"resourceVersion": stringDef,
		}).Require(),
	),
	Output: operationOutput,
}

var clustersSetMasterAuth = blk.Block{
	Name:         "gke.clusters.setMasterAuth",
	DisplayName:  "Set Cluster Master Auth",
	Category:     category,
	Description:  "Sets master auth materials. Currently supports changing the admin password or a specific cluster, either via password generation or explicitly setting the password.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":setMasterAuth",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("action", jsonschema.String, "The exact form of action to be taken on the master auth.").WithEnum("UNKNOWN", "SET_PASSWORD", "GENERATE_PASSWORD", "SET_USERNAME").Require(),
		blk.BodyParam("update", jsonschema.Object, "A description of the update: username, password, clientCertificateConfig.").Require(),
	),
	Output: operationOutput,
}

var clustersStartIPRotation = blk.Block{
	Name:         "gke.clusters.startIpRotation",
	DisplayName:  "Start Cluster IP Rotation",
	Category:     category,
	Description:  "Starts master IP rotation.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":startIpRotation",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("rotateCredentials", jsonschema.Boolean, "Whether to rotate credentials during IP rotation."),
	),
	Output: operationOutput,
}

var clustersCompleteIPRotation = blk.Block{
	Name:         "gke.clusters.completeIpRotation",
	DisplayName:  "Complete Cluster IP Rotation",
	Category:     category,
	Description:  "Completes master IP rotation.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":completeIpRotation",
	Scopes:       scopes,
	Fields:       clusterFields(),
	Output:       operationOutput,
}

var clustersSetLegacyAbac = blk.Block{
	Name:         "gke.clusters.setLegacyAbac",
	DisplayName:  "Set Cluster Legacy ABAC",
	Category:     category,
	Description:  "Enables or disables the ABAC authorization mechanism on a cluster.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: clusterPath + ":setLegacyAbac",
	Scopes:       scopes,
	Fields: clusterFields(
		blk.BodyParam("enabled", jsonschema.Boolean, "Whether ABAC authorization will be enabled in the cluster.").Require(),
	),
	Output: operationOutput,
}

var getServerConfig = blk.Block{
	Name:         "gke.getServerConfig",
	DisplayName:  "Get Server Config",
	Category:     category,
	Description:  "Returns configuration info about the Google Kubernetes Engine service: versions and image types.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/locations/{location}/serverConfig",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), locationField()},
	Output:       serverConfigOutput,
}
