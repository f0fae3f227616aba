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
	"github.com/BrunoReboul/gcpblocks/utilities/aut"
)

// DevelopmentEnvironmentName default environment
const DevelopmentEnvironmentName = "dev"

// Settings settings common to all blocks
type Settings struct {
	Environment string          `yaml:"environment" env:"GCPBLOCKS_ENVIRONMENT" env-default:"dev" valid:"isNotZeroValue"`
	Credentials aut.Credentials `yaml:"credentials"`
	Defaults    struct {
		Project    string            `yaml:"project,omitempty" env:"GCPBLOCKS_PROJECT"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		Region     string            `yaml:"region,omitempty" env:"GCPBLOCKS_REGION"`
		Zone       string            `yaml:"zone,omitempty" env:"GCPBLOCKS_ZONE"`
		Location   string            `yaml:"location,omitempty" env:"GCPBLOCKS_LOCATION"`
	} `yaml:"defaults"`
	Endpoints struct {
		Compute       string `yaml:"compute" env:"GCPBLOCKS_COMPUTE_ENDPOINT" env-default:"https://compute.googleapis.com/compute/v1/" valid:"isURL"`
		Container     string `yaml:"container" env:"GCPBLOCKS_CONTAINER_ENDPOINT" env-default:"https://container.googleapis.com/v1/" valid:"isURL"`
		SecretManager string `yaml:"secretManager" env:"GCPBLOCKS_SECRETMANAGER_ENDPOINT" env-default:"https://secretmanager.googleapis.com/v1/" valid:"isURL"`
	} `yaml:"endpoints"`
	HTTP struct {
		TimeoutSeconds int64 `yaml:"timeoutSeconds" env:"GCPBLOCKS_HTTP_TIMEOUT_SECONDS" env-default:"60" valid:"isNotZeroValue"`
	} `yaml:"http"`
	Output struct {
		Kind     string `yaml:"kind" env:"GCPBLOCKS_OUTPUT" env-default:"stdout" valid:"isOneOf,stdout,pubsub"`
		DataOnly bool   `yaml:"dataOnly" env:"GCPBLOCKS_OUTPUT_DATA_ONLY"`
		PubSub   struct {
			ProjectID string `yaml:"projectID" env:"GCPBLOCKS_PUBSUB_PROJECT"`
			TopicID   string `yaml:"topicID" env:"GCPBLOCKS_PUBSUB_TOPIC"`
		} `yaml:"pubsub"`
	} `yaml:"output"`
}
