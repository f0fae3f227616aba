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
	"context"
	"encoding/base64"
	"encoding/json"
	"hash/crc32"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/BrunoReboul/gcpblocks/utilities/aut"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const testCasesYAML = `
- block: gsm.secrets.create
  input:
    project: secrets-prd
    secretId: db-password
    labels:
      app: billing
  wantMethod: POST
  wantPath: /v1/projects/secrets-prd/secrets
  wantQuery: secretId=db-password
  wantBody: '{"labels":{"app":"billing"},"replication":{"automatic":{}}}'
- block: gsm.secrets.create
  input:
    project: secrets-prd
    secretId: eu-only
    replication:
      userManaged:
        replicas:
        - location: europe-west1
        - location: europe-west4
  wantMethod: POST
  wantPath: /v1/projects/secrets-prd/secrets
  wantQuery: secretId=eu-only
  wantBody: '{"replication":{"userManaged":{"replicas":[{"location":"europe-west1"},{"location":"europe-west4"}]}}}'
- block: gsm.secrets.addVersion
  input:
    project: secrets-prd
    secret: db-password
    payload:
      data: czNjcjN0
  wantMethod: POST
  wantPath: /v1/projects/secrets-prd/secrets/db-password:addVersion
  wantBody: '{"payload":{"data":"czNjcjN0"}}'
- block: gsm.secrets.getIamPolicy
  input:
    project: secrets-prd
    secret: db-password
    requestedPolicyVersion: 3
  wantMethod: GET
  wantPath: /v1/projects/secrets-prd/secrets/db-password:getIamPolicy
  wantQuery: options.requestedPolicyVersion=3
- block: gsm.versions.access
  input:
    project: secrets-prd
    secret: db-password
    version: latest
  wantMethod: GET
  wantPath: /v1/projects/secrets-prd/secrets/db-password/versions/latest:access
- block: gsm.versions.destroy
  input:
    project: secrets-prd
    secret: db-password
    version: 2
  wantMethod: POST
  wantPath: /v1/projects/secrets-prd/secrets/db-password/versions/2:destroy
  wantBody: '{}'
- block: gsm.locations.get
  input:
    project: secrets-prd
    location: europe-west1
  wantMethod: GET
  wantPath: /v1/projects/secrets-prd/locations/europe-west1
`

type testCase struct {
	Block      string                 `yaml:"block"`
	Input      map[string]interface{} `yaml:"input"`
	WantMethod string                 `yaml:"wantMethod"`
	WantPath   string                 `yaml:"wantPath"`
	WantQuery  string                 `yaml:"wantQuery"`
	WantBody   string                 `yaml:"wantBody"`
}

type capture struct {
	method, path, query, body string
}

func fakeSecretManager(t *testing.T, response string) (*blk.Runtime, *capture) {
	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		got.method, got.path, got.query, got.body = r.Method, r.URL.EscapedPath(), r.URL.RawQuery, string(b)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return &blk.Runtime{
		Credentials: aut.Credentials{AccessToken: "ya29.gsm"},
		Endpoints:   map[string]string{blk.APISecretManager: srv.URL + "/v1/"},
		HTTPClient:  srv.Client(),
	}, got
}

func TestUnitBlocksRequests(t *testing.T) {
	var testCases []testCase
	err := yaml.Unmarshal([]byte(testCasesYAML), &testCases)
	if err != nil {
		t.Fatalf("yaml.Unmarshal %v", err)
	}
	blocks := make(map[string]blk.Block)
	for _, block := range Blocks() {
		blocks[block.Name] = block
	}
	for i, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(strconv.Itoa(i)+"_"+tc.Block, func(t *testing.T) {
			t.Parallel()
			block, ok := blocks[tc.Block]
			require.True(t, ok, "block %s not found", tc.Block)
			runtime, got := fakeSecretManager(t, `{"name":"projects/123/secrets/db-password"}`)

			output, err := block.Run(context.Background(), runtime, tc.Input)
			require.NoError(t, err)
			assert.Equal(t, "projects/123/secrets/db-password", output["name"])
			assert.Equal(t, tc.WantMethod, got.method)
			assert.Equal(t, tc.WantPath, got.path)
			assert.Equal(t, tc.WantQuery, got.query)
			if tc.WantBody == "" {
				assert.Empty(t, got.body)
			} else {
				assert.JSONEq(t, tc.WantBody, got.body)
			}
		})
	}
}

func TestUnitAddVersionPlainTextData(t *testing.T) {
	runtime, got := fakeSecretManager(t, `{"name":"projects/123/secrets/db-password/versions/3","state":"ENABLED"}`)
	output, err := secretsAddVersion.Run(context.Background(), runtime, map[string]interface{}{
		"project": "secrets-prd",
		"secret":  "db-password",
		"data":    "s3cr3t",
	})
	require.NoError(t, err)
	assert.Equal(t, "ENABLED", output["state"])

	var body struct {
		Payload struct {
			Data       string `json:"data"`
			DataCrc32c string `json:"dataCrc32c"`
		} `json:"payload"`
		Data *string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.Nil(t, body.Data, "plain text data should not be sent")
	decoded, err := base64.StdEncoding.DecodeString(body.Payload.Data)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", string(decoded))
	wantCrc := crc32.Checksum([]byte("s3cr3t"), crc32.MakeTable(crc32.Castagnoli))
	assert.Equal(t, strconv.FormatUint(uint64(wantCrc), 10), body.Payload.DataCrc32c)
}

func TestUnitAddVersionPayloadOrData(t *testing.T) {
	var testCases = []struct {
		name  string
		input map[string]interface{}
	}{
		{name: "none", input: map[string]interface{}{}},
		{name: "both", input: map[string]interface{}{"data": "x", "payload": map[string]interface{}{"data": "eA=="}}},
		{name: "notString", input: map[string]interface{}{"data": 42}},
		{name: "emptyData", input: map[string]interface{}{"data": ""}},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			body := make(map[string]interface{})
			if payload, ok := tc.input["payload"]; ok {
				body["payload"] = payload
			}
			if data, ok := tc.input["data"]; ok {
				body["data"] = data
			}
			err := preparePayload(tc.input, body)
			assert.Error(t, err)
		})
	}
}
