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
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
	container "google.golang.org/api/container/v1"
)

const category = "Kubernetes Engine"

var scopes = []string{container.CloudPlatformScope}

const (
	clustersPath   = "projects/{project}/locations/{location}/clusters"
	clusterPath    = clustersPath + "/{cluster}"
	nodePoolsPath  = clusterPath + "/nodePools"
	nodePoolPath   = nodePoolsPath + "/{nodePool}"
	operationsPath = "projects/{project}/locations/{location}/operations"
)

var stringDef = jsonschema.Definition{Type: jsonschema.String}
var stringArrayDef = jsonschema.Definition{Type: jsonschema.Array, Items: &stringDef}
var objectDef = jsonschema.Definition{Type: jsonschema.Object}

func projectField() blk.Field {
	return blk.PathParam("project", "The Google Developers Console project ID or project number.")
}

func locationField() blk.Field {
	return blk.PathParam("location", "The region or zone of the clusters, e.g. europe-west1 or europe-west1-b.")
}

func clusterField() blk.Field {
	return blk.PathParam("cluster", "The name of the cluster.")
}

func nodePoolField() blk.Field {
	return blk.PathParam("nodePool", "The name of the node pool.")
}

func clusterFields(more ...blk.Field) []blk.Field {
	return append([]blk.Field{projectField(), locationField(), clusterField()}, more...)
}

func nodePoolFields(more ...blk.Field) []blk.Field {
	return append([]blk.Field{projectField(), locationField(), clusterField(), nodePoolField()}, more...)
}
