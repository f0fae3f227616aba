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
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
	compute "google.golang.org/api/compute/v1"
)

const category = "Compute Engine"

var scopes = []string{compute.ComputeScope, compute.CloudPlatformScope}

func projectField() blk.Field {
	return blk.PathParam("project", "Project ID for this request.")
}

func regionField() blk.Field {
	return blk.PathParam("region", "Name of the region scoping this request.")
}

func requestIDField() blk.Field {
	return blk.QueryParam("requestId", jsonschema.String, "An optional request ID to identify requests. The server ignores a second request with the same ID for at least 60 minutes.")
}

func listFields() []blk.Field {
	return []blk.Field{
		blk.QueryParam("filter", jsonschema.String, "A filter expression that filters resources listed in the response, e.g. name != example-instance."),
		blk.QueryParam("maxResults", jsonschema.Integer, "The maximum number of results per page that should be returned, 0 to 500."),
		blk.QueryParam("orderBy", jsonschema.String, "Sorts list results by a certain order, creationTimestamp desc or name."),
		blk.QueryParam("pageToken", jsonschema.String, "Specifies a page token to use, set to the nextPageToken returned by a previous list request."),
		blk.QueryParam("returnPartialSuccess", jsonschema.Boolean, "Opt-in for partial success behavior which provides partial results in case of failure."),
	}
}

func aggregatedListFields() []blk.Field {
	return append(listFields(),
		blk.QueryParam("includeAllScopes", jsonschema.Boolean, "Include all scopes, including scopes where no resources are available."),
		blk.QueryParam("serviceProjectNumber", jsonschema.String, "The Shared VPC service project id or service project number for which aggregated list request is invoked."),
	)
}

func labelsField() blk.Field {
	return blk.BodyParam("labels", jsonschema.Object, "Labels to apply to this resource, key value pairs.")
}

func fields(groups ...[]blk.Field) []blk.Field {
	var all []blk.Field
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}
