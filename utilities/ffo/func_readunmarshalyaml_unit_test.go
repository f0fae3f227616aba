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

package ffo

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrunoReboul/gcpblocks/utilities/str"
)

func TestUnitMarshalYAMLWriteReadUnmarshalYAML(t *testing.T) {
	type input struct {
		Block string                 `yaml:"block"`
		Input map[string]interface{} `yaml:"input"`
	}
	path := filepath.Join(t.TempDir(), "input.yaml")
	in := input{
		Block: "gce.addresses.insert",
		Input: map[string]interface{}{
			"project": "my-project",
			"region":  "europe-west1",
			"name":    "nat-ip-1",
		},
	}
	err := MarshalYAMLWrite(path, in)
	if err != nil {
		t.Fatalf("MarshalYAMLWrite %v", err)
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("ioutil.ReadFile %v", err)
	}
	if !strings.HasPrefix(string(b), str.YAMLDisclaimer) {
		t.Errorf("Want the yaml disclaimer on top of the file")
	}
	var out input
	err = ReadUnmarshalYAML(path, &out)
	if err != nil {
		t.Fatalf("ReadUnmarshalYAML %v", err)
	}
	if out.Block != in.Block {
		t.Errorf("Want block '%s' got '%s'", in.Block, out.Block)
	}
	for key, value := range in.Input {
		if out.Input[key] != value {
			t.Errorf("Want %s '%v' got '%v'", key, value, out.Input[key])
		}
	}
}

func TestUnitReadUnmarshalYAMLMissingFile(t *testing.T) {
	var out map[string]interface{}
	err := ReadUnmarshalYAML(filepath.Join(t.TempDir(), "missing.yaml"), &out)
	if err == nil {
		t.Errorf("Should send back an error and is NOT")
	}
}
