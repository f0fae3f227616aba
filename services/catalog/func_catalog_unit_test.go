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

package catalog

import (
	"net/http"
	"strings"
	"testing"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/BrunoReboul/gcpblocks/utilities/str"
)

var validMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

func TestUnitCatalogCounts(t *testing.T) {
	var testCases = []struct {
		category string
		want     int
	}{
		{category: "Compute Engine", want: 48},
		{category: "Kubernetes Engine", want: 25},
		{category: "Secret Manager", want: 17},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.category, func(t *testing.T) {
			t.Parallel()
			got := len(ByCategory(tc.category))
			if got != tc.want {
				t.Errorf("Want %d blocks got %d", tc.want, got)
			}
		})
	}
	if len(Categories()) != len(testCases) {
		t.Errorf("Want %d categories got %v", len(testCases), Categories())
	}
	if len(All()) != 90 {
		t.Errorf("Want 90 blocks got %d", len(All()))
	}
}

func TestUnitCatalogGet(t *testing.T) {
	block, ok := Get("gsm.versions.access")
	if !ok {
		t.Fatalf("Want gsm.versions.access found")
	}
	if block.PathTemplate != "projects/{project}/secrets/{secret}/versions/{version}:access" {
		t.Errorf("Unexpected path template %s", block.PathTemplate)
	}
	if _, ok := Get("gsm.versions.unknown"); ok {
		t.Errorf("Want unknown block not found")
	}
}

func TestUnitCatalogConsistency(t *testing.T) {
	names := make(map[string]bool)
	for _, block := range All() {
		block := block // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		if names[block.Name] {
			t.Errorf("Duplicate block name %s", block.Name)
		}
		names[block.Name] = true
		t.Run(block.Name, func(t *testing.T) {
			t.Parallel()
			checkBlock(t, block)
		})
	}
}

func checkBlock(t *testing.T, block blk.Block) {
	if block.DisplayName == "" || block.Description == "" || block.Category == "" {
		t.Errorf("Missing display name, description or category")
	}
	if !str.Find(validMethods, block.Method) {
		t.Errorf("Invalid method %s", block.Method)
	}
	if _, ok := blk.DefaultEndpoints[block.API]; !ok {
		t.Errorf("Unknown API %s", block.API)
	}
	if len(block.Scopes) == 0 {
		t.Errorf("Missing OAuth scopes")
	}
	if strings.HasPrefix(block.PathTemplate, "/") {
		t.Errorf("Path template %s should be relative to the API base URL", block.PathTemplate)
	}
	if block.Output.Type == "" {
		t.Errorf("Missing output schema")
	}
	placeholders := block.Placeholders()
	for _, name := range placeholders {
		field, ok := block.Field(name)
		if !ok {
			t.Errorf("Placeholder {%s} has no field", name)
			continue
		}
		if field.In != blk.InPath || !field.Required {
			t.Errorf("Placeholder {%s} field should be a required path field", name)
		}
	}
	fieldNames := make(map[string]bool)
	for _, field := range block.Fields {
		if fieldNames[field.Name] {
			t.Errorf("Duplicate field %s", field.Name)
		}
		fieldNames[field.Name] = true
		switch field.In {
		case blk.InPath:
			if !str.Find(placeholders, field.Name) {
				t.Errorf("Path field %s not in template %s", field.Name, block.PathTemplate)
			}
		case blk.InQuery, blk.InBody:
		default:
			t.Errorf("Field %s has no location", field.Name)
		}
		if field.Type == "" {
			t.Errorf("Field %s has no type", field.Name)
		}
		if field.Description == "" {
			t.Errorf("Field %s has no description", field.Name)
		}
	}
	if block.Method == http.MethodGet || block.Method == http.MethodDelete {
		for _, field := range block.Fields {
			if field.In == blk.InBody {
				t.Errorf("%s block should not declare body field %s", block.Method, field.Name)
			}
		}
	}
}
