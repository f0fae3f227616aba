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

var peeringOutput = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"name":                 stringDef,
		"network":              stringDef,
		"state":                {Type: jsonschema.String, Enum: []string{"ACTIVE", "INACTIVE"}},
		"stateDetails":         stringDef,
		"exchangeSubnetRoutes": {Type: jsonschema.Boolean},
		"exportCustomRoutes":   {Type: jsonschema.Boolean},
		"importCustomRoutes":   {Type: jsonschema.Boolean},
		"stackType":            stringDef,
	},
}

var networkOutput = resourceOutput("compute#network", map[string]jsonschema.Definition{
	"autoCreateSubnetworks": {Type: jsonschema.Boolean},
	"subnetworks":           stringArrayDef,
	"peerings":              {Type: jsonschema.Array, Items: &peeringOutput},
	"routingConfig":         {Type: jsonschema.Object, Properties: map[string]jsonschema.Definition{"routingMode": {Type: jsonschema.String, Enum: []string{"REGIONAL", "GLOBAL"}}}},
	"mtu":                   {Type: jsonschema.Integer},
	"gatewayIPv4":           stringDef,
	"firewallPolicy":        stringDef,
})

func networkBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("routingConfig", jsonschema.Object, "The network-level routing configuration for this network.").WithProperties(map[string]jsonschema.Definition{
			"routingMode": {Type: jsonschema.String, Enum: []string{"REGIONAL", "GLOBAL"}},
		}),
		blk.BodyParam("mtu", jsonschema.Integer, "Maximum Transmission Unit in bytes, 1300 to 8896."),
		blk.BodyParam("enableUlaInternalIpv6", jsonschema.Boolean, "Enable ULA internal ipv6 on this network."),
		blk.BodyParam("networkFirewallPolicyEnforcementOrder", jsonschema.String, "The network firewall policy enforcement order.").WithEnum("AFTER_CLASSIC_FIREWALL", "BEFORE_CLASSIC_FIREWALL"),
	}
}

func networkPathField(description string) blk.Field {
	return blk.PathParam("network", description)
}

var networksList = blk.Block{
	Name:         "gce.networks.list",
	DisplayName:  "List Networks",
	Category:     category,
	Description:  "Retrieves the list of VPC networks available to the specified project.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/networks",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, listFields()),
	Output:       listOutput("compute#networkList", networkOutput),
}

var networksGet = blk.Block{
	Name:         "gce.networks.get",
	DisplayName:  "Get Network",
	Category:     category,
	Description:  "Returns the specified VPC network.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/networks/{network}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), networkPathField("Name of the network to return.")},
	Output:       networkOutput,
}

var networksInsert = blk.Block{
	Name:         "gce.networks.insert",
	DisplayName:  "Insert Network",
	Category:     category,
	Description:  "Creates a VPC network in the specified project using the data included in the request.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/networks",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			requestIDField(),
			blk.BodyParam("name", jsonschema.String, "Name of the network, RFC1035 compliant.").Require(),
			blk.BodyParam("autoCreateSubnetworks", jsonschema.Boolean, "When true the network is created in auto subnet mode, when false in custom subnet mode."),
		},
		networkBodyFields(),
	),
	Output: operationOutput,
}

var networksPatch = blk.Block{
	Name:         "gce.networks.patch",
	DisplayName:  "Patch Network",
	Category:     category,
	Description:  "Patches the specified network with the data included in the request. Only routingConfig and mtu can be modified.",
	API:          blk.APICompute,
	Method:       http.MethodPatch,
	PathTemplate: "projects/{project}/global/networks/{network}",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{projectField(), networkPathField("Name of the network to update."), requestIDField()},
		networkBodyFields(),
	),
	Output: operationOutput,
}

var networksDelete = blk.Block{
	Name:         "gce.networks.delete",
	DisplayName:  "Delete Network",
	Category:     category,
	Description:  "Deletes the specified network.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/global/networks/{network}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), networkPathField("Name of the network to delete."), requestIDField()},
	Output:       operationOutput,
}

var networksAddPeering = blk.Block{
	Name:         "gce.networks.addPeering",
	DisplayName:  "Add Network Peering",
	Category:     category,
	Description:  "Adds a peering to the specified network.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/networks/{network}/addPeering",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		networkPathField("Name of the network resource to add peering to."),
		requestIDField(),
		blk.BodyParam("networkPeering", jsonschema.Object, "Network peering parameters: name, network, exchangeSubnetRoutes, exportCustomRoutes, importCustomRoutes.").WithProperties(peeringOutput.Properties),
		blk.BodyParam("name", jsonschema.String, "Name of the peering, deprecated in favor of networkPeering.name."),
		blk.BodyParam("peerNetwork", jsonschema.String, "URL of the peer network, deprecated in favor of networkPeering.network."),
		blk.BodyParam("autoCreateRoutes", jsonschema.Boolean, "Must be true when name and peerNetwork are used."),
	},
	Output: operationOutput,
}

var networksRemovePeering = blk.Block{
	Name:         "gce.networks.removePeering",
	DisplayName:  "Remove Network Peering",
	Category:     category,
	Description:  "Removes a peering from the specified network.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/networks/{network}/removePeering",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		networkPathField("Name of the network resource to remove peering from."),
		requestIDField(),
		blk.BodyParam("name", jsonschema.String, "Name of the peering.").Require(),
	},
	Output: operationOutput,
}

var networksSwitchToCustomMode = blk.Block{
	Name:         "gce.networks.switchToCustomMode",
	DisplayName:  "Switch Network To Custom Mode",
	Category:     category,
	Description:  "Switches an auto mode network to custom subnet mode.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/networks/{network}/switchToCustomMode",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), networkPathField("Name of the network to be updated."), requestIDField()},
	Output:       operationOutput,
}
