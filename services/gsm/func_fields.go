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

package gsm

import (
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
	secretmanager "google.golang.org/api/secretmanager/v1"
)

const category = "Secret Manager"

var scopes = []string{secretmanager.CloudPlatformScope}

const (
	secretsPath  = "projects/{project}/secrets"
	secretPath   = secretsPath + "/{secret}"
	versionsPath = secretPath + "/versions"
	versionPath  = versionsPath + "/{version}"
)

var stringDef = jsonschema.Definition{Type: jsonschema.String}
var stringArrayDef = jsonschema.Definition{Type: jsonschema.Array, Items: &stringDef}
var objectDef = jsonschema.Definition{Type: jsonschema.Object}

func projectField() blk.Field {
	return blk.PathParam("project", "The project ID or project number.")
}

func secretField() blk.Field {
	return blk.PathParam("secret", "The secret ID.")
}

func versionField() blk.Field {
	return blk.PathParam("version", "The version number, or latest for the most recently created version.")
}

func pageFields() []blk.Field {
	return []blk.Field{
		blk.QueryParam("filter", jsonschema.String, "Filter string adhering to the List-operation filtering rules, e.g. labels.env:prod."),
		blk.QueryParam("pageSize", jsonschema.Integer, "The maximum number of results to be returned in a single page, default 25000."),
		blk.QueryParam("pageToken", jsonschema.String, "Pagination token returned in a previous list nextPageToken."),
	}
}
