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
)

var operationsList = blk.Block{
	Name:         "gke.operations.list",
	DisplayName:  "List Operations",
	Category:     category,
	Description:  "Lists all operations in a project in a specific zone or all zones, use location - for all.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: operationsPath,
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), locationField()},
	Output:       listOutput("operations", operationOutput),
}

var operationsGet = blk.Block{
	Name:         "gke.operations.get",
	DisplayName:  "Get Operation",
	Category:     category,
	Description:  "Gets the specified operation.",
	API:          blk.APIContainer,
	Method:       http.MethodGet,
	PathTemplate: operationsPath + "/{operation}",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		locationField(),
		blk.PathParam("operation", "The operation id, e.g. operation-1592395935353-8f7b2a1c."),
	},
	Output: operationOutput,
}

var operationsCancel = blk.Block{
	Name:         "gke.operations.cancel",
	DisplayName:  "Cancel Operation",
	Category:     category,
	Description:  "Cancels the specified operation.",
	API:          blk.APIContainer,
	Method:       http.MethodPost,
	PathTemplate: operationsPath + "/{operation}:cancel",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		locationField(),
		blk.PathParam("operation", "The operation id to cancel."),
	},
	Output: emptyOutput,
}
