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

var routerNatDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"name":                             stringDef,
		"natIpAllocateOption":              {Type: jsonschema.String, Enum: []string{"AUTO_ONLY", "MANUAL_ONLY"}},
		"natIps":                           stringArrayDef,
		"sourceSubnetworkIpRangesToNat":    {Type: jsonschema.String, Enum: []string{"ALL_SUBNETWORKS_ALL_IP_RANGES", "ALL_SUBNETWORKS_ALL_PRIMARY_IP_RANGES", "LIST_OF_SUBNETWORKS"}},
		"subnetworks":                      {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
		"minPortsPerVm":                    {Type: jsonschema.Integer},
		"enableEndpointIndependentMapping": {Type: jsonschema.Boolean},
		"logConfig":                        {Type: jsonschema.Object},
	},
	Required: []string{"name", "natIpAllocateOption", "sourceSubnetworkIpRangesToNat"},
}

var routerBgpDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"asn":                {Type: jsonschema.Integer},
		"advertiseMode":      {Type: jsonschema.String, Enum: []string{"DEFAULT", "CUSTOM"}},
		"advertisedGroups":   stringArrayDef,
		"advertisedIpRanges": {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
		"keepaliveInterval":  {Type: jsonschema.Integer},
	},
}

var routerOutput = resourceOutput("compute#router", map[string]jsonschema.Definition{
	"network":                     stringDef,
	"region":                      stringDef,
	"bgp":                         routerBgpDef,
	"bgpPeers":                    {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
	"interfaces":                  {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
	"nats":                        {Type: jsonschema.Array, Items: &routerNatDef},
	"encryptedInterconnectRouter": {Type: jsonschema.Boolean},
})

var routerStatusOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "compute#routerStatusResponse",
	Properties: map[string]jsonschema.Definition{
		"kind": stringDef,
		"result": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"network":             stringDef,
				"bestRoutes":          {Type: jsonschema.Array, Items: &routeOutput},
				"bestRoutesForRouter": {Type: jsonschema.Array, Items: &routeOutput},
				"bgpPeerStatus":       {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
				"natStatus":           {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
			},
		},
	},
}

var natMappingOutput = jsonschema.Definition{
	Type:        jsonschema.Object,
	Description: "compute#vmEndpointNatMappingsList",
	Properties: map[string]jsonschema.Definition{
		"kind":          stringDef,
		"id":            stringDef,
		"result":        {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Object}},
		"nextPageToken": stringDef,
		"selfLink":      stringDef,
		"warning":       warningOutput,
	},
}

func routerPathField(description string) blk.Field {
	return blk.PathParam("router", description)
}

func routerBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("bgp", jsonschema.Object, "BGP information specific to this router.").WithProperties(routerBgpDef.Properties),
		blk.BodyParam("bgpPeers", jsonschema.Array, "BGP information that must be configured into the routing stack to establish BGP peering.").WithItems(jsonschema.Definition{Type: jsonschema.Object}),
		blk.BodyParam("interfaces", jsonschema.Array, "Router interfaces, each one linked to a VPN tunnel or an interconnect attachment.").WithItems(jsonschema.Definition{Type: jsonschema.Object}),
		blk.BodyParam("nats", jsonschema.Array, "A list of Cloud NAT services created in this router.").WithItems(routerNatDef),
		blk.BodyParam("encryptedInterconnectRouter", jsonschema.Boolean, "Indicates if a router is dedicated for use with encrypted VLAN attachments."),
	}
}

var routersList = blk.Block{
	Name:         "gce.routers.list",
	DisplayName:  "List Routers",
	Category:     category,
	Description:  "Retrieves a list of Cloud Routers available to the specified project in a region.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/routers",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField(), regionField()}, listFields()),
	Output:       listOutput("compute#routerList", routerOutput),
}

var routersAggregatedList = blk.Block{
	Name:         "gce.routers.aggregatedList",
	DisplayName:  "Aggregated List Routers",
	Category:     category,
	Description:  "Retrieves an aggregated list of routers across all regions.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/aggregated/routers",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, aggregatedListFields()),
	Output:       aggregatedListOutput("compute#routerAggregatedList", "routers", routerOutput),
}

var routersGet = blk.Block{
	Name:         "gce.routers.get",
	DisplayName:  "Get Router",
	Category:     category,
	Description:  "Returns the specified Cloud Router resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/routers/{router}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), routerPathField("Name of the router resource to return.")},
	Output:       routerOutput,
}

var routersInsert = blk.Block{
	Name:         "gce.routers.insert",
	DisplayName:  "Insert Router",
	Category:     category,
	Description:  "Creates a Cloud Router resource in the specified project and region, optionally with Cloud NAT configurations.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/routers",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			regionField(),
			requestIDField(),
			blk.BodyParam("name", jsonschema.String, "Name of the router, RFC1035 compliant.").Require(),
			blk.BodyParam("network", jsonschema.String, "URI of the network to which this router belongs.").Require(),
		},
		routerBodyFields(),
	),
	Output: operationOutput,
}

var routersPatch = blk.Block{
	Name:         "gce.routers.patch",
	DisplayName:  "Patch Router",
	Category:     category,
	Description:  "Patches the specified router with the data included in the request, e.g. to add or update Cloud NAT configurations.",
	API:          blk.APICompute,
	Method:       http.MethodPatch,
	PathTemplate: "projects/{project}/regions/{region}/routers/{router}",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{projectField(), regionField(), routerPathField("Name of the router resource to patch."), requestIDField()},
		routerBodyFields(),
	),
	Output: operationOutput,
}

var routersDelete = blk.Block{
	Name:         "gce.routers.delete",
	DisplayName:  "Delete Router",
	Category:     category,
	Description:  "Deletes the specified router.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/regions/{region}/routers/{router}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), routerPathField("Name of the router resource to delete."), requestIDField()},
	Output:       operationOutput,
}

var routersGetRouterStatus = blk.Block{
	Name:         "gce.routers.getRouterStatus",
	DisplayName:  "Get Router Status",
	Category:     category,
	Description:  "Retrieves runtime information of the specified router: best routes, BGP peers and NAT status.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/routers/{router}/getRouterStatus",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), routerPathField("Name of the router resource to query.")},
	Output:       routerStatusOutput,
}

var routersGetNatMappingInfo = blk.Block{
	Name:         "gce.routers.getNatMappingInfo",
	DisplayName:  "Get NAT Mapping Info",
	Category:     category,
	Description:  "Retrieves runtime Nat mapping information of VM endpoints.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/routers/{router}/getNatMappingInfo",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			regionField(),
			routerPathField("Name of the Router resource to query for Nat Mapping information of VM endpoints."),
			blk.QueryParam("natName", jsonschema.String, "Name of the nat service to filter the Nat Mapping information."),
		},
		listFields(),
	),
	Output: natMappingOutput,
}
