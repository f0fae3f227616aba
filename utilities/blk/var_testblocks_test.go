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

package blk

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

var testAddressesInsert = Block{
	Name:         "test.addresses.insert",
	DisplayName:  "Insert Address",
	Category:     "Compute Engine",
	API:          APICompute,
	Method:       "POST",
	PathTemplate: "projects/{project}/regions/{region}/addresses",
	Scopes:       []string{"https://www.googleapis.com/auth/compute"},
	Fields: []Field{
		PathParam("project", "Project ID"),
		PathParam("region", "Region name"),
		QueryParam("requestId", jsonschema.String, "Idempotency key"),
		BodyParam("name", jsonschema.String, "Address name").Require(),
		BodyParam("description", jsonschema.String, "Description"),
		BodyParam("addressType", jsonschema.String, "Address type").WithEnum("EXTERNAL", "INTERNAL"),
		BodyParam("prefixLength", jsonschema.Integer, "Prefix length"),
		BodyParam("labels", jsonschema.Object, "Labels"),
	},
}

var testAddressesList = Block{
	Name:         "test.addresses.list",
	API:          APICompute,
	Method:       "GET",
	PathTemplate: "projects/{project}/regions/{region}/addresses",
	Fields: []Field{
		PathParam("project", "Project ID"),
		PathParam("region", "Region name"),
		QueryParam("filter", jsonschema.String, "Filter"),
		QueryParam("maxResults", jsonschema.Integer, "Page size"),
		QueryParam("returnPartialSuccess", jsonschema.Boolean, "Partial success"),
		QueryParam("fields", jsonschema.Array, "Partial response").WithItems(jsonschema.Definition{Type: jsonschema.String}),
	},
}

var testClustersSetResourceLabels = Block{
	Name:         "test.clusters.setResourceLabels",
	API:          APIContainer,
	Method:       "POST",
	PathTemplate: "projects/{project}/locations/{location}/clusters/{cluster}:setResourceLabels",
	Fields: []Field{
		PathParam("project", "Project ID"),
		PathParam("location", "Location"),
		PathParam("cluster", "Cluster name"),
		BodyParam("resourceLabels", jsonschema.Object, "Labels").Require(),
		BodyParam("labelFingerprint", jsonschema.String, "Fingerprint"),
	},
}

var testAddressesDelete = Block{
	Name:         "test.addresses.delete",
	API:          APICompute,
	Method:       "DELETE",
	PathTemplate: "projects/{project}/regions/{region}/addresses/{address}",
	Fields: []Field{
		PathParam("project", "Project ID"),
		PathParam("region", "Region name"),
		PathParam("address", "Address name"),
	},
}
