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

var routeOutput = resourceOutput("compute#route", map[string]jsonschema.Definition{
	"network":          stringDef,
	"destRange":        stringDef,
	"priority":         {Type: jsonschema.Integer},
	"tags":             stringArrayDef,
	"nextHopGateway":   stringDef,
	"nextHopIp":        stringDef,
	"nextHopInstance":  stringDef,
	"nextHopVpnTunnel": stringDef,
	"nextHopIlb":       stringDef,
	"nextHopNetwork":   stringDef,
	"nextHopPeering":   stringDef,
	"routeType":        stringDef,
	"warnings":         {Type: jsonschema.Array, Items: &warningOutput},
})

var routesList = blk.Block{
	Name:         "gce.routes.list",
	DisplayName:  "List Routes",
	Category:     category,
	Description:  "Retrieves the list of route resources available to the specified project.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/routes",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, listFields()),
	Output:       listOutput("compute#routeList", routeOutput),
}

var routesGet = blk.Block{
	Name:         "gce.routes.get",
	DisplayName:  "Get Route",
	Category:     category,
	Description:  "Returns the specified route resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/routes/{route}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), blk.PathParam("route", "Name of the route resource to return.")},
	Output:       routeOutput,
}

var routesInsert = blk.Block{
	Name:         "gce.routes.insert",
	DisplayName:  "Insert Route",
	Category:     category,
	Description:  "Creates a route resource in the specified project. Exactly one next hop must be set.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/routes",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		requestIDField(),
		blk.BodyParam("name", jsonschema.String, "Name of the route, RFC1035 compliant.").Require(),
		blk.BodyParam("network", jsonschema.String, "Fully-qualified URL of the network that this route applies to.").Require(),
		blk.BodyParam("destRange", jsonschema.String, "The destination range of outgoing packets that this route applies to.").Require(),
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("priority", jsonschema.Integer, "The priority of this route, 0 to 65535, default 1000."),
		blk.BodyParam("tags", jsonschema.Array, "A list of instance tags to which this route applies.").WithItems(stringDef),
		blk.BodyParam("nextHopGateway", jsonschema.String, "The URL to a gateway, e.g. projects/p/global/gateways/default-internet-gateway."),
		blk.BodyParam("nextHopIp", jsonschema.String, "The network IP address of an instance that should handle matching packets."),
		blk.BodyParam("nextHopInstance", jsonschema.String, "The URL to an instance that should handle matching packets."),
		blk.BodyParam("nextHopVpnTunnel", jsonschema.String, "The URL to a VpnTunnel that should handle matching packets."),
		blk.BodyParam("nextHopIlb", jsonschema.String, "The URL to a forwarding rule of type loadBalancingScheme=INTERNAL."),
	},
	Output: operationOutput,
}

var routesDelete = blk.Block{
	Name:         "gce.routes.delete",
	DisplayName:  "Delete Route",
	Category:     category,
	Description:  "Deletes the specified route resource.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/global/routes/{route}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), blk.PathParam("route", "Name of the route resource to delete."), requestIDField()},
	Output:       operationOutput,
}
