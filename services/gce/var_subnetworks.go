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
	"net/http"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var secondaryRangeDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"rangeName":   stringDef,
		"ipCidrRange": stringDef,
	},
	Required: []string{"rangeName", "ipCidrRange"},
}

var subnetworkLogConfigDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"enable":              {Type: jsonschema.Boolean},
		"aggregationInterval": stringDef,
		"flowSampling":        {Type: jsonschema.Number},
		"metadata":            stringDef,
		"filterExpr":          stringDef,
	},
}

var subnetworkOutput = resourceOutput("compute#subnetwork", map[string]jsonschema.Definition{
	"network":               stringDef,
	"region":                stringDef,
	"ipCidrRange":           stringDef,
	"gatewayAddress":        stringDef,
	"secondaryIpRanges":     {Type: jsonschema.Array, Items: &secondaryRangeDef},
	"privateIpGoogleAccess": {Type: jsonschema.Boolean},
	"purpose":               stringDef,
	"role":                  stringDef,
	"stackType":             stringDef,
	"state":                 stringDef,
	"logConfig":             subnetworkLogConfigDef,
	"fingerprint":           stringDef,
})

func subnetworkPathField(description string) blk.Field {
	return blk.PathParam("subnetwork", description)
}

func subnetworkBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("secondaryIpRanges", jsonschema.Array, "Secondary IP ranges, e.g. for GKE pods and services.").WithItems(secondaryRangeDef),
		blk.BodyParam("privateIpGoogleAccess", jsonschema.Boolean, "Whether the VMs in this subnet can access Google services without external IP addresses."),
		blk.BodyParam("privateIpv6GoogleAccess", jsonschema.String, "The private IPv6 google access type.").WithEnum("DISABLE_GOOGLE_ACCESS", "ENABLE_BIDIRECTIONAL_ACCESS_TO_GOOGLE", "ENABLE_OUTBOUND_VM_ACCESS_TO_GOOGLE"),
		blk.BodyParam("stackType", jsonschema.String, "The stack type for the subnet.").WithEnum("IPV4_ONLY", "IPV4_IPV6"),
		blk.BodyParam("ipv6AccessType", jsonschema.String, "The access type of IPv6 addresses.").WithEnum("EXTERNAL", "INTERNAL"),
		blk.BodyParam("logConfig", jsonschema.Object, "VPC flow logging configuration.").WithProperties(subnetworkLogConfigDef.Properties),
	}
}

var subnetworksList = blk.Block{
	Name:         "gce.subnetworks.list",
	DisplayName:  "List Subnetworks",
	Category:     category,
	Description:  "Retrieves a list of subnetworks available to the specified project in a region.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField(), regionField()}, listFields()),
	Output:       listOutput("compute#subnetworkList", subnetworkOutput),
}

var subnetworksAggregatedList = blk.Block{
	Name:         "gce.subnetworks.aggregatedList",
	DisplayName:  "Aggregated List Subnetworks",
	Category:     category,
	Description:  "Retrieves an aggregated list of subnetworks across all regions.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/aggregated/subnetworks",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, aggregatedListFields()),
	Output:       aggregatedListOutput("compute#subnetworkAggregatedList", "subnetworks", subnetworkOutput),
}

var subnetworksGet = blk.Block{
	Name:         "gce.subnetworks.get",
	DisplayName:  "Get Subnetwork",
	Category:     category,
	Description:  "Returns the specified subnetwork.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks/{subnetwork}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), subnetworkPathField("Name of the subnetwork to return.")},
	Output:       subnetworkOutput,
}

var subnetworksInsert = blk.Block{
	Name:         "gce.subnetworks.insert",
	DisplayName:  "Insert Subnetwork",
	Category:     category,
	Description:  "Creates a subnetwork in the specified project and region using the data included in the request.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			regionField(),
			requestIDField(),
			blk.BodyParam("name", jsonschema.String, "Name of the subnetwork, RFC1035 compliant.").Require(),
			blk.BodyParam("network", jsonschema.String, "URL of the network to which this subnetwork belongs.").Require(),
			blk.BodyParam("ipCidrRange", jsonschema.String, "The primary internal IPv4 range, e.g. 10.0.0.0/24.").Require(),
			blk.BodyParam("purpose", jsonschema.String, "The purpose of the resource.").WithEnum("PRIVATE", "REGIONAL_MANAGED_PROXY", "PRIVATE_SERVICE_CONNECT", "INTERNAL_HTTPS_LOAD_BALANCER"),
			blk.BodyParam("role", jsonschema.String, "The role of subnetwork, REGIONAL_MANAGED_PROXY purpose only.").WithEnum("ACTIVE", "BACKUP"),
		},
		subnetworkBodyFields(),
	),
	Output: operationOutput,
}

var subnetworksPatch = blk.Block{
	Name:         "gce.subnetworks.patch",
	DisplayName:  "Patch Subnetwork",
	Category:     category,
	Description:  "Patches the specified subnetwork with the data included in the request. The fingerprint from a get request is required.",
	API:          blk.APICompute,
	Method:       http.MethodPatch,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks/{subnetwork}",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			regionField(),
			subnetworkPathField("Name of the subnetwork resource to patch."),
			requestIDField(),
			blk.QueryParam("drainTimeoutSeconds", jsonschema.Integer, "Drain timeout for connections when changing the role of a proxy subnetwork."),
			blk.BodyParam("fingerprint", jsonschema.String, "Fingerprint of this resource, used for optimistic locking.").Require(),
			blk.BodyParam("role", jsonschema.String, "The role of subnetwork.").WithEnum("ACTIVE", "BACKUP"),
		},
		subnetworkBodyFields(),
	),
	Output: operationOutput,
}

var subnetworksDelete = blk.Block{
	Name:         "gce.subnetworks.delete",
	DisplayName:  "Delete Subnetwork",
	Category:     category,
	Description:  "Deletes the specified subnetwork.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks/{subnetwork}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), subnetworkPathField("Name of the subnetwork resource to delete."), requestIDField()},
	Output:       operationOutput,
}

var subnetworksExpandIPCidrRange = blk.Block{
	Name:         "gce.subnetworks.expandIpCidrRange",
	DisplayName:  "Expand Subnetwork IP Range",
	Category:     category,
	Description:  "Expands the IP CIDR range of the subnetwork to a specified value.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks/{subnetwork}/expandIpCidrRange",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		regionField(),
		subnetworkPathField("Name of the subnetwork resource to update."),
		requestIDField(),
		blk.BodyParam("ipCidrRange", jsonschema.String, "The IP CIDR range to expand the subnetwork to. It must contain the current range.").Require(),
	},
	Output: operationOutput,
}

var subnetworksSetPrivateIPGoogleAccess = blk.Block{
	Name:         "gce.subnetworks.setPrivateIpGoogleAccess",
	DisplayName:  "Set Subnetwork Private Google Access",
	Category:     category,
	Description:  "Sets whether VMs in this subnet can access Google services without assigning external IP addresses.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/subnetworks/{subnetwork}/setPrivateIpGoogleAccess",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		regionField(),
		subnetworkPathField("Name of the subnetwork resource."),
		requestIDField(),
		blk.BodyParam("privateIpGoogleAccess", jsonschema.Boolean, "Private Google Access status.").Require(),
	},
	Output: operationOutput,
}
