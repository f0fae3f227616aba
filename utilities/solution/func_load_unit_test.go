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

package solution

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("ioutil.WriteFile %v", err)
	}
	return path
}

func TestUnitLoadDefaults(t *testing.T) {
	t.Setenv("GCPBLOCKS_ACCESS_TOKEN", "ya29.env")
	settings, err := Load("", "")
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if settings.Environment != DevelopmentEnvironmentName {
		t.Errorf("Want environment '%s' got '%s'", DevelopmentEnvironmentName, settings.Environment)
	}
	if settings.Endpoints.Compute != "https://compute.googleapis.com/compute/v1/" {
		t.Errorf("Unexpected compute endpoint '%s'", settings.Endpoints.Compute)
	}
	if settings.Endpoints.Container != "https://container.googleapis.com/v1/" {
		t.Errorf("Unexpected container endpoint '%s'", settings.Endpoints.Container)
	}
	if settings.Endpoints.SecretManager != "https://secretmanager.googleapis.com/v1/" {
		t.Errorf("Unexpected secret manager endpoint '%s'", settings.Endpoints.SecretManager)
	}
	if settings.HTTP.TimeoutSeconds != 60 {
		t.Errorf("Want timeout 60 got %d", settings.HTTP.TimeoutSeconds)
	}
	if settings.Output.Kind != "stdout" {
		t.Errorf("Want output 'stdout' got '%s'", settings.Output.Kind)
	}
	if settings.Credentials.AccessToken != "ya29.env" {
		t.Errorf("Want access token from environment got '%s'", settings.Credentials.AccessToken)
	}
}

func TestUnitLoadFile(t *testing.T) {
	path := writeSettingsFile(t, `environment: prd
defaults:
  projectIDs:
    dev: blocks-dev
    prd: blocks-prd
  region: europe-west1
endpoints:
  compute: http://127.0.0.1:9999/compute/v1/
output:
  kind: pubsub
  pubsub:
    topicID: block-events
`)
	t.Setenv("GCPBLOCKS_ZONE", "europe-west1-b")
	settings, err := Load(path, "")
	if err != nil {
		t.Fatalf("Want NO error, got %v", err)
	}
	if settings.Defaults.Project != "blocks-prd" {
		t.Errorf("Want project 'blocks-prd' got '%s'", settings.Defaults.Project)
	}
	if settings.Output.PubSub.ProjectID != "blocks-prd" {
		t.Errorf("Want pubsub project 'blocks-prd' got '%s'", settings.Output.PubSub.ProjectID)
	}
	if settings.Endpoints.Compute != "http://127.0.0.1:9999/compute/v1/" {
		t.Errorf("Want compute endpoint from file got '%s'", settings.Endpoints.Compute)
	}
	defaults := settings.DefaultValues()
	if defaults["region"] != "europe-west1" || defaults["zone"] != "europe-west1-b" || defaults["project"] != "blocks-prd" {
		t.Errorf("Unexpected default values %v", defaults)
	}
	if _, ok := defaults["location"]; ok {
		t.Errorf("Location should not be defaulted")
	}
	if settings.EndpointsByAPI()["compute"] != settings.Endpoints.Compute {
		t.Errorf("EndpointsByAPI compute mismatch")
	}
}

func TestUnitLoadInvalid(t *testing.T) {
	var testCases = []struct {
		name         string
		content      string
		wantErrorMsg string
	}{
		{
			name:         "badEndpoint",
			content:      "endpoints:\n  container: container.googleapis.com\n",
			wantErrorMsg: "settings validation failed",
		},
		{
			name:         "badOutput",
			content:      "output:\n  kind: kafka\n",
			wantErrorMsg: "settings validation failed",
		},
		{
			name:         "pubsubWithoutTopic",
			content:      "output:\n  kind: pubsub\n",
			wantErrorMsg: "topicID",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeSettingsFile(t, tc.content), "")
			if err == nil {
				t.Fatalf("Should send back an error and is NOT")
			}
			if !strings.Contains(err.Error(), tc.wantErrorMsg) {
				t.Errorf("Error message should contains '%s' and is '%s'", tc.wantErrorMsg, err.Error())
			}
		})
	}
}
