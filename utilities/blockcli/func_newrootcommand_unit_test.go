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

package blockcli

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := NewRootCommand(context.Background(), &stdout)
	cmd.SetArgs(args)
	cmd.SetErr(ioutil.Discard)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestUnitListCommand(t *testing.T) {
	out, err := execute(t, "list", "--category", "Secret Manager")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17)
	assert.True(t, strings.HasPrefix(lines[0], "gsm.locations.get"), lines[0])

	_, err = execute(t, "list", "--category", "Cloud SQL")
	assert.Error(t, err)
}

func TestUnitDescribeCommand(t *testing.T) {
	out, err := execute(t, "describe", "gke.nodePools.setSize")
	require.NoError(t, err)
	var descriptor map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &descriptor))
	assert.Equal(t, "POST", descriptor["method"])
	input := descriptor["input"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"project", "location", "cluster", "nodePool", "nodeCount"}, input["required"])

	_, err = execute(t, "describe", "gke.nodePools.resize")
	assert.Error(t, err)
}

func TestUnitExportCommand(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "blocks.yaml")
	out, err := execute(t, "export", "--output", outputPath)
	require.NoError(t, err)
	assert.Contains(t, out, "90 blocks exported")

	b, err := ioutil.ReadFile(outputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# Copyright 2020 Google LLC"))
	var descriptors []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &descriptors))
	require.Len(t, descriptors, 90)
	assert.Equal(t, "gce.addresses.aggregatedList", descriptors[0]["name"])
}

func TestUnitRunCommand(t *testing.T) {
	var gotPath, gotAuthorization, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		gotPath, gotAuthorization, gotBody = r.URL.EscapedPath(), r.Header.Get("Authorization"), string(b)
		w.Write([]byte(`{"kind":"compute#operation","name":"operation-42","status":"PENDING"}`))
	}))
	defer srv.Close()

	settingsPath := writeFile(t, "settings.yaml", `environment: prd
credentials:
  accessToken: ya29.settings
defaults:
  projectIDs:
    prd: net-host-prd
  region: europe-west1
endpoints:
  compute: `+srv.URL+`/compute/v1/
`)
	inputPath := writeFile(t, "router.yaml", `name: nat-router
network: projects/net-host-prd/global/networks/shared-vpc
nats:
- name: nat-1
  natIpAllocateOption: AUTO_ONLY
  sourceSubnetworkIpRangesToNat: ALL_SUBNETWORKS_ALL_IP_RANGES
`)
	out, err := execute(t, "run", "gce.routers.insert",
		"--settings", settingsPath,
		"--environment", "prd",
		"--input", inputPath,
		"--set", "region=us-central1")
	require.NoError(t, err)

	assert.Equal(t, "/compute/v1/projects/net-host-prd/regions/us-central1/routers", gotPath)
	assert.Equal(t, "Bearer ya29.settings", gotAuthorization)
	assert.JSONEq(t, `{"name":"nat-router","network":"projects/net-host-prd/global/networks/shared-vpc","nats":[{"name":"nat-1","natIpAllocateOption":"AUTO_ONLY","sourceSubnetworkIpRangesToNat":"ALL_SUBNETWORKS_ALL_IP_RANGES"}]}`, gotBody)

	var event blk.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &event))
	assert.Equal(t, "gce.routers.insert", event.Block)
	assert.Equal(t, "operation-42", event.Data["name"])
}

func TestUnitRunCommandDataOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"projects/secrets-prd/secrets/db-password","replication":{"automatic":{}}}`))
	}))
	defer srv.Close()

	settingsPath := writeFile(t, "settings.yaml", `credentials:
  accessToken: ya29.settings
endpoints:
  secretManager: `+srv.URL+`/v1/
output:
  dataOnly: true
`)
	out, err := execute(t, "run", "gsm.secrets.get",
		"--settings", settingsPath,
		"--set", "project=secrets-prd",
		"--set", "secret=db-password")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"projects/secrets-prd/secrets/db-password","replication":{"automatic":{}}}`, strings.TrimSpace(out))
}

func TestUnitRunCommandCredentialsFile(t *testing.T) {
	var gotAuthorization string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"Permission 'secretmanager.versions.access' denied","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	settingsPath := writeFile(t, "settings.yaml", `endpoints:
  secretManager: `+srv.URL+`/v1/
`)
	credentialsPath := writeFile(t, "credentials.json", `{"accessToken":"ya29.file"}`)
	out, err := execute(t, "run", "gsm.versions.access",
		"--settings", settingsPath,
		"--credentials", credentialsPath,
		"--set", "project=secrets-prd",
		"--set", "secret=db-password",
		"--set", "version=latest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
	assert.Equal(t, "Bearer ya29.file", gotAuthorization)
	assert.Empty(t, out)
}

func TestUnitReadInput(t *testing.T) {
	_, err := readInput("", []string{"novalue"})
	assert.Error(t, err)
	input, err := readInput("", []string{"filter=name = nat-*"})
	require.NoError(t, err)
	assert.Equal(t, "name = nat-*", input["filter"])
}
