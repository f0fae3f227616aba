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

func secretBodyFields() []blk.Field {
	return []blk.Field{
		blk.BodyParam("labels", jsonschema.Object, "The labels assigned to this Secret, at most 64."),
		blk.BodyParam("topics", jsonschema.Array, "Pub/Sub topics receiving secret events, e.g. [{\"name\": \"projects/p/topics/t\"}].").WithItems(jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{"name": stringDef},
		}),
		blk.BodyParam("expireTime", jsonschema.String, "Timestamp in UTC when the Secret is scheduled to expire, RFC3339."),
		blk.BodyParam("ttl", jsonschema.String, "Input only. The TTL for the Secret, e.g. 86400s."),
		blk.BodyParam("rotation", jsonschema.Object, "Rotation policy: nextRotationTime and rotationPeriod.").WithProperties(map[string]jsonschema.Definition{
			"nextRotationTime": stringDef,
			"rotationPeriod":   stringDef,
		}),
		blk.BodyParam("versionAliases", jsonschema.Object, "Mapping from version alias to version number."),
		blk.BodyParam("annotations", jsonschema.Object, "Custom metadata about the secret."),
		blk.BodyParam("etag", jsonschema.String, "Etag of the currently stored Secret."),
	}
}

var secretsList = blk.Block{
	Name:         "gsm.secrets.list",
	DisplayName:  "List Secrets",
	Category:     category,
	Description:  "Lists Secrets.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: secretsPath,
	Scopes:       scopes,
	Fields:       append([]blk.Field{projectField()}, pageFields()...),
	Output:       listOutput("secrets", secretOutput),
}

var secretsGet = blk.Block{
	Name:         "gsm.secrets.get",
	DisplayName:  "Get Secret",
	Category:     category,
	Description:  "Gets metadata for a given Secret.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: secretPath,
	Scopes:       scopes,
	Fields:       []blk.Field{projectField(), secretField()},
	Output:       secretOutput,
}

var secretsCreate = blk.Block{
	Name:         "gsm.secrets.create",
	DisplayName:  "Create Secret",
	Category:     category,
	Description:  "Creates a new Secret containing no SecretVersions, automatic replication when none is given.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: secretsPath,
	Scopes:       scopes,
	Fields: append([]blk.Field{
		projectField(),
		blk.QueryParam("secretId", jsonschema.String, "The secret ID, up to 255 letters, numbers, hyphens and underscores.").Require(),
		blk.BodyParam("replication", jsonschema.Object, "The replication policy of the secret data, immutable.").WithProperties(replicationDef.Properties),
	}, secretBodyFields()...),
	Output:      secretOutput,
	PrepareBody: prepareReplication,
}

var secretsPatch = blk.Block{
	Name:         "gsm.secrets.patch",
	DisplayName:  "Update Secret",
	Category:     category,
	Description:  "Updates metadata of an existing Secret, fields listed in updateMask only.",
	API:          blk.APISecretManager,
	Method:       http.MethodPatch,
	PathTemplate: secretPath,
	Scopes:       scopes,
	Fields: append([]blk.Field{
		projectField(),
		secretField(),
		blk.QueryParam("updateMask", jsonschema.String, "Comma separated list of fields to update, e.g. labels,rotation.").Require(),
	}, secretBodyFields()...),
	Output: secretOutput,
}

var secretsDelete = blk.Block{
	Name:         "gsm.secrets.delete",
	DisplayName:  "Delete Secret",
	Category:     category,
	Description:  "Deletes a Secret and all of its versions.",
	API:          blk.APISecretManager,
	Method:       http.MethodDelete,
	PathTemplate: secretPath,
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		secretField(),
		blk.QueryParam("etag", jsonschema.String, "Etag of the Secret, the request succeeds only if it matches."),
	},
	Output: emptyOutput,
}

var secretsAddVersion = blk.Block{
	Name:         "gsm.secrets.addVersion",
	DisplayName:  "Add Secret Version",
	Category:     category,
	Description:  "Creates a new SecretVersion containing secret data and attaches it to an existing Secret.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: secretPath + ":addVersion",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		secretField(),
		blk.BodyParam("payload", jsonschema.Object, "The secret payload, data base64 encoded and optional dataCrc32c.").WithProperties(payloadDef.Properties),
		blk.BodyParam("data", jsonschema.String, "Plain text secret data, encoded into the payload by the block. Do not set with payload."),
	},
	Output:      versionOutput,
	PrepareBody: preparePayload,
}

var secretsGetIamPolicy = blk.Block{
	Name:         "gsm.secrets.getIamPolicy",
	DisplayName:  "Get Secret IAM Policy",
	Category:     category,
	Description:  "Gets the access control policy for a secret.",
	API:          blk.APISecretManager,
	Method:       http.MethodGet,
	PathTemplate: secretPath + ":getIamPolicy",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		secretField(),
		blk.QueryParam("requestedPolicyVersion", jsonschema.Integer, "The maximum policy version used to format the policy, 0, 1 or 3.").WithKey("options.requestedPolicyVersion"),
	},
	Output: policyDef,
}

var secretsSetIamPolicy = blk.Block{
	Name:         "gsm.secrets.setIamPolicy",
	DisplayName:  "Set Secret IAM Policy",
	Category:     category,
	Description:  "Sets the access control policy on the specified secret, replacing any existing policy.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: secretPath + ":setIamPolicy",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		secretField(),
		blk.BodyParam("policy", jsonschema.Object, "The complete policy to be applied, get it first to keep the etag.").WithProperties(policyDef.Properties).Require(),
		blk.BodyParam("updateMask", jsonschema.String, "Policy fields to modify, default bindings, etag."),
	},
	Output: policyDef,
}

var secretsTestIamPermissions = blk.Block{
	Name:         "gsm.secrets.testIamPermissions",
	DisplayName:  "Test Secret IAM Permissions",
	Category:     category,
	Description:  "Returns permissions that a caller has for the specified secret.",
	API:          blk.APISecretManager,
	Method:       http.MethodPost,
	PathTemplate: secretPath + ":testIamPermissions",
	Scopes:       scopes,
	Fields: []blk.Field{
		projectField(),
		secretField(),
		blk.BodyParam("permissions", jsonschema.Array, "The set of permissions to check, e.g. secretmanager.versions.access.").WithItems(stringDef).Require(),
	},
	Output: jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: map[string]jsonschema.Definition{"permissions": stringArrayDef},
	},
}
