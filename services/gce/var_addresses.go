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

var addressOutput = resourceOutput("compute#address", map[string]jsonschema.Definition{
	"address":          stringDef,
	"addressType":      {Type: jsonschema.String, Enum: []string{"EXTERNAL", "INTERNAL"}},
	"ipVersion":        stringDef,
	"networkTier":      stringDef,
	"prefixLength":     {Type: jsonschema.Integer},
	"purpose":          stringDef,
	"network":          stringDef,
	"subnetwork":       stringDef,
	"region":           stringDef,
	"status":           {Type: jsonschema.String, Enum: []string{"RESERVING", "RESERVED", "IN_USE"}},
	"users":            stringArrayDef,
	"labels":           {Type: jsonschema.Object},
	"labelFingerprint": stringDef,
})

func addressBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("name", jsonschema.String, "Name of the resource, RFC1035 compliant.").Require(),
		blk.BodyParam("description", jsonschema.String, "An optional description of this resource."),
		blk.BodyParam("address", jsonschema.String, "The static IP address represented by this resource."),
		blk.BodyParam("addressType", jsonschema.String, "The type of address to reserve.").WithEnum("EXTERNAL", "INTERNAL"),
		blk.BodyParam("purpose", jsonschema.String, "The purpose of this resource.").WithEnum("GCE_ENDPOINT", "DNS_RESOLVER", "VPC_PEERING", "NAT_AUTO", "IPSEC_INTERCONNECT", "SHARED_LOADBALANCER_VIP", "PRIVATE_SERVICE_CONNECT"),
		blk.BodyParam("networkTier", jsonschema.String, "The networking tier used for configuring this address.").WithEnum("PREMIUM", "STANDARD"),
		blk.BodyParam("ipVersion", jsonschema.String, "The IP version that will be used by this address.").WithEnum("IPV4", "IPV6"),
		blk.BodyParam("prefixLength", jsonschema.Integer, "The prefix length if the resource represents an IP range."),
		blk.BodyParam("network", jsonschema.String, "The URL of the network in which to reserve the address, VPC_PEERING and IPSEC_INTERCONNECT purposes only."),
		blk.BodyParam("subnetwork", jsonschema.String, "The URL of the subnetwork in which to reserve the address, internal addresses only."),
	}
}

var addressesList = blk.Block{
	Name:         "gce.addresses.list",
	DisplayName:  "List Addresses",
	Category:     category,
	Description:  "Retrieves a list of addresses contained within the specified region.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/addresses",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField(), regionField()}, listFields()),
	Output:       listOutput("compute#addressList", addressOutput),
}

var addressesAggregatedList = blk.Block{
	Name:         "gce.addresses.aggregatedList",
	DisplayName:  "Aggregated List Addresses",
	Category:     category,
	Description:  "Retrieves an aggregated list of addresses across all regions.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/aggregated/addresses",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, aggregatedListFields()),
	Output:       aggregatedListOutput("compute#addressAggregatedList", "addresses", addressOutput),
}

var addressesGet = blk.Block{
	Name:         "gce.addresses.get",
	DisplayName:  "Get Address",
	Category:     category,
	Description:  "Returns the specified address resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/addresses/{address}",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		regionField(),
		blk.PathParam("address", "Name of the address resource to return."),
	},
	Output: addressOutput,
}

var addressesInsert = blk.Block{
	Name:         "gce.addresses.insert",
	DisplayName:  "Insert Address",
	Category:     category,
	Description:  "Creates an address resource in the specified project by using the data included in the request.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/addresses",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{projectField(), regionField(), requestIDField()},
		addressBodyFields(),
		[]blk.Field{labelsField()},
	),
	Output: operationOutput,
}

var addressesDelete = blk.Block{
	Name:         "gce.addresses.delete",
	DisplayName:  "Delete Address",
	Category:     category,
	Description:  "Deletes the specified address resource.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/regions/{region}/addresses/{address}",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		regionField(),
		blk.PathParam("address", "Name of the address resource to delete."),
		requestIDField(),
	},
	Output: operationOutput,
}

var addressesSetLabels = blk.Block{
	Name:         "gce.addresses.setLabels",
	DisplayName:  "Set Address Labels",
	Category:     category,
	Description:  "Sets the labels on an address, replacing existing labels.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/addresses/{address}/setLabels",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		regionField(),
		blk.PathParam("address", "Name of the address resource."),
		requestIDField(),
		blk.BodyParam("labels", jsonschema.Object, "The labels to set for this resource.").Require(),
		blk.BodyParam("labelFingerprint", jsonschema.String, "The fingerprint of the previous set of labels, from a get request, used for optimistic locking.").Require(),
	},
	Output: operationOutput,
}

var globalAddressesList = blk.Block{
	Name:         "gce.globalAddresses.list",
	DisplayName:  "List Global Addresses",
	Category:     category,
	Description:  "Retrieves a list of global addresses.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/addresses",
	Scopes:       scopes,
	Fields:       fields([]blk.Field{projectField()}, listFields()),
	Output:       listOutput("compute#addressList", addressOutput),
}

var globalAddressesGet = blk.Block{
	Name:         "gce.globalAddresses.get",
	DisplayName:  "Get Global Address",
	Category:     category,
	Description:  "Returns the specified global address resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/addresses/{address}",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		blk.PathParam("address", "Name of the address resource to return."),
	},
	Output: addressOutput,
}

var globalAddressesInsert = blk.Block{
	Name:         "gce.globalAddresses.insert",
	DisplayName:  "Insert Global Address",
	Category:     category,
	Description:  "Creates a global address resource, e.g. a range allocated for private services access with purpose VPC_PEERING.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/addresses",
	Scopes:       scopes,
	Fields: fields(
		[]blk.Field{projectField(), requestIDField()},
		addressBodyFields(),
	),
	Output: operationOutput,
}

var globalAddressesDelete = blk.Block{
	Name:         "gce.globalAddresses.delete",
	DisplayName:  "Delete Global Address",
	Category:     category,
	Description:  "Deletes the specified global address resource.",
	API:          blk.APICompute,
	Method:       http.MethodDelete,
	PathTemplate: "projects/{project}/global/addresses/{address}",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		blk.PathParam("address", "Name of the address resource to delete."),
		requestIDField(),
	},
	Output: operationOutput,
}
