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

package blk

// API names, used to look up endpoints
const (
	APICompute       = "compute"
	APIContainer     = "container"
	APISecretManager = "secretmanager"
)

// DefaultEndpoints Google Cloud REST base URLs per API
var DefaultEndpoints = map[string]string{
	APICompute:       "https://compute.googleapis.com/compute/v1/",
	APIContainer:     "https://container.googleapis.com/v1/",
	APISecretManager: "https://secretmanager.googleapis.com/v1/",
}
