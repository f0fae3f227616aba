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

var firewallRuleDef = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"IPProtocol": {Type: jsonschema.String, Description: "tcp, udp, icmp, esp, ah, ipip, sctp, all or an IP protocol number"},
		"ports":      stringArrayDef,
	},
	Required: []string{"IPProtocol"},
}

var firewallOutput = resourceOutput("compute#firewall", map[string]jsonschema.Definition{
	"network":               stringDef,
	"priority":              {Type: jsonschema.Integer},
	"direction":             {Type: jsonschema.String, Enum: []string{"INGRESS", "EGRESS"}},
	"allowed":               {Type: jsonschema.Array, Items: &firewallRuleDef},
	"denied":                {Type: jsonschema.Array, Items: &firewallRuleDef},
	"sourceRanges":          stringArrayDef,
	"destinationRanges":     stringArrayDef,
	"sourceTags":            stringArrayDef,
	"targetTags":            stringArrayDef,
	"sourceServiceAccounts": stringArrayDef,
	"targetServiceAccounts": stringArrayDef,
	"disabled":              {Type: jsonschema.Boolean},
	"logConfig":             {Type: jsonschema.Object},
})

func firewallPathField(description string) blk.Field {
	return blk.PathParam("firewall", description)
}

func firewallBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("network", jsonschema.String, "URL of the network resource for this firewall rule, default network when omitted on insert."),
		blk.BodyParam("priority", jsonschema.Integer, "Priority for this rule, 0 to 65535, lower is higher priority. Default 1000."),
		blk.BodyParam("direction", jsonschema.String, "Direction of traffic to which this firewall applies.").WithEnum("INGRESS", "EGRESS"),
		blk.BodyParam("allowed", jsonschema.Array, "The list of ALLOW rules specified by this firewall.").WithItems(firewallRuleDef),
		blk.BodyParam("denied", jsonschema.Array, "The list of DENY rules specified by this firewall.").WithItems(firewallRuleDef),
		blk.BodyParam("sourceRanges", jsonschema.Array, "Source IPv4 or IPv6 ranges in CIDR format.").WithItems(stringDef),
		blk.BodyParam("destinationRanges", jsonschema.Array, "Destination ranges in CIDR format, EGRESS only.").WithItems(stringDef),
		blk.BodyParam("sourceTags", jsonschema.Array, "Source network tags.").WithItems(stringDef),
		blk.BodyParam("targetTags", jsonschema.Array, "Instances tags to which the rule applies.").WithItems(stringDef),
		blk.BodyParam("sourceServiceAccounts", jsonschema.Array, "Source service accounts.").WithItems(stringDef),
		blk.BodyParam("targetServiceAccounts", jsonschema.Array, "Service accounts of instances to which the rule applies.").WithItems(stringDef),
		blk.BodyParam("disabled", jsonschema.Boolean, "Denotes whether the firewall rule is disabled."),
		blk.BodyParam("logConfig", jsonschema.Object, "Firewall rule logging options.").WithProperties(map[string]jsonschema.Definition{
			"enable":   {Type: jsonschema.Boolean},
			"metadata": {Type: jsonschema.String, Enum: []string{"EXCLUDE_ALL_METADATA", "INCLUDE_ALL_METADATA"}},
		}),
	}
}

var firewallsList = blk.Block{
	Name:         "gce.firewalls.list",
	DisplayName:  "List Firewall Rules",
	Category:     category,
	Description:  "Retrieves the list of firewall rules available to the specified project.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/firewalls",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, listFields()),
	Output:       listOutput("compute#firewallList", firewallOutput),
}

var firewallsGet = blk.Block{
	Name:         "gce.firewalls.get",
	DisplayName:  "Get Firewall Rule",
	Category:     category,
	Description:  "Returns the specified firewall rule.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/firewalls/{firewall}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), firewallPathField("Name of the firewall rule to return.")},
	Output:       firewallOutput,
}

var firewallsInsert = blk.Block{
	Name:         "gce.firewalls.insert",
	DisplayName:  "Insert Firewall Rule",
	Category:     category,
	Description:  "Creates a firewall rule in the specified project using the data included in the request.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/firewalls",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			requestIDField(),
			blk.BodyParam("name", jsonschema.String, "Name of the firewall rule, RFC1035 compliant.").Require(),
		},
		firewallBodyFields(),
	),
	Output: operationOutput,
}

var firewallsPatch = blk.Block{
	Name:         "gce.firewalls.patch",
	DisplayName:  "Patch Firewall Rule",
	Category:     category,
	Description:  "Updates the specified firewall rule with the data included in the request, patch semantics.",
	API:          blk.APICompute,
	Method:       http.MethodPatch,
	PathTemplate: "projects/{project}/global/firewalls/{firewall}",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{projectField(), firewallPathField("Name of the firewall rule to patch."), requestIDField()},
		firewallBodyFields(),
	),
	Output: operationOutput,
}

var firewallsUpdate = blk.Block{
	Name:         "gce.firewalls.update",
	DisplayName:  "Update Firewall Rule",
	Category:     category,
	Description:  "Updates the specified firewall rule with the data included in the request, unspecified fields are reset to their defaults.",
	API:          blk.APICompute,
	Method:       http.MethodPut,
	PathTemplate: "projects/{project}/global/firewalls/{firewall}",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{
			projectField(),
			firewallPathField("Name of the firewall rule to update."),
			requestIDField(),
			blk.BodyParam("name", jsonschema.String, "Name of the firewall rule, must match the firewall path parameter.").Require(),
		},
		firewallBodyFields(),
	),
	Output: operationOutput,
}

var firewallsDelete = blk.Block{
	Name:         "gce.firewalls.delete",
	DisplayName:  "Delete Firewall Rule",
	Category:     category,
	Description:  "Deletes the specified firewall rule.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/global/firewalls/{firewall}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), firewallPathField("Name of the firewall rule to delete."), requestIDField()},
	Output:       operationOutput,
}
