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
	"net/http"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/sashabaranov/go-openai/jsonschema"
)

func etagField() blk.Field {
	return blk.BodyParam("etag", jsonschema.String, "Etag of the SecretVersion, the request succeeds only if it matches.")
}

var versionsList = blk.Block{
	Name:         "gsm.versions.list",
	DisplayName:  "List Secret Versions",
	Category:     category,
	Description:  "Lists SecretVersions. This call does not return secret data.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: versionsPath,
	Scopes:       scopes,
	Fields:       append([]blk.Field{projectField(), secretField()}, pageFields()...),
	Output:       listOutput("versions", versionOutput),
}

var versionsGet = blk.Block{
	Name:         "gsm.versions.get",
	DisplayName:  "Get Secret Version",
	Category:     category,
	Description:  "Gets metadata for a SecretVersion.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: versionPath,
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField(), versionField()},
	Output:       versionOutput,
}

var versionsAccess = blk.Block{
	Name:         "gsm.versions.access",
	DisplayName:  "Access Secret Version",
	Category:     category,
	Description:  "Accesses a SecretVersion. This call returns the secret data, base64 encoded.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: versionPath + ":access",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField(), versionField()},
	Output:       accessOutput,
}

var versionsEnable = blk.Block{
	Name:         "gsm.versions.enable",
	DisplayName:  "Enable Secret Version",
	Category:     category,
	Description:  "Enables a SecretVersion, state ENABLED.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: versionPath + ":enable",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField(), versionField(), etagField()},
	Output:       versionOutput,
}

var versionsDisable = blk.Block{
	Name:         "gsm.versions.disable",
	DisplayName:  "Disable Secret Version",
	Category:     category,
	Description:  "Disables a SecretVersion, state DISABLED.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: versionPath + ":disable",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField(), versionField(), etagField()},
	Output:       versionOutput,
}

var versionsDestroy = blk.Block{
	Name:         "gsm.versions.destroy",
	DisplayName:  "Destroy Secret Version",
	Category:     category,
	Description:  "Destroys a SecretVersion, state DESTROYED, and irrevocably destroys the secret data.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: versionPath + ":destroy",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField(), versionField(), etagField()},
	Output:       versionOutput,
}

var locationsList = blk.Block{
	Name:         "gsm.locations.list",
	DisplayName:  "List Locations",
	Category:     category,
	Description:  "Lists information about the supported locations for this service.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/locations",
	Scopes:       scopes,
	Fields:       append([]blk.Field{projectField()}, pageFields()...),
	Output:       listOutput("locations", locationOutput),
}

var locationsGet = blk.Block{
	Name:         "gsm.locations.get",
	DisplayName:  "Get Location",
	Category:     category,
	Description:  "Gets information about a location.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: "projects/{project}/locations/{location}",
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), blk.PathParam("location", "Resource name for the location, e.g. europe-west1.")},
	Output:       locationOutput,
}
