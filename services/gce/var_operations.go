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
)

func operationPathField() blk.Field {
	return blk.PathParam("operation", "Name of the Operations resource, e.g. operation-1592395935353-5a8353a5e9b5c-0d4c6d0f-4a7a85d3.")
}

var globalOperationsGet = blk.Block{
	Name:         "gce.globalOperations.get",
	DisplayName:  "Get Global Operation",
	Category:     category,
	Description:  "Retrieves the specified global Operations resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/global/operations/{operation}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), operationPathField()},
	Output:       operationOutput,
}

var globalOperationsWait = blk.Block{
	Name:         "gce.globalOperations.wait",
	DisplayName:  "Wait Global Operation",
	Category:     category,
	Description:  "Waits for the specified global operation to complete, returns after 2 minutes at most with the operation status.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/global/operations/{operation}/wait",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), operationPathField()},
	Output:       operationOutput,
}

var regionOperationsGet = blk.Block{
	Name:         "gce.regionOperations.get",
	DisplayName:  "Get Region Operation",
	Category:     category,
	Description:  "Retrieves the specified region-specific Operations resource.",
	API:          blk.APICompute,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/regions/{region}/operations/{operation}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), operationPathField()},
	Output:       operationOutput,
}

var regionOperationsWait = blk.Block{
	Name:         "gce.regionOperations.wait",
	DisplayName:  "Wait Region Operation",
	Category:     category,
	Description:  "Waits for the specified region-specific operation to complete, returns after 2 minutes at most with the operation status.",
	API:          blk.APICompute,
	Method:       http.MethodPost,
	PathTemplate: "projects/{project}/regions/{region}/operations/{operation}/wait",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), regionField(), operationPathField()},
	Output:       operationOutput,
}
