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
	"fmt"

	"github.com/BrunoReboul/gcpblocks/utilities/validater"
	"github.com/ilyakaznacheev/cleanenv"
)

// Load read settings from a YAML file when path is not empty, then from environment variables
func Load(path string, environmentName string) (settings *Settings, err error) {
	settings = &Settings{}
	if path != "" {
		err = cleanenv.ReadConfig(path, settings)
	} else {
		err = cleanenv.ReadEnv(settings)
	}
	if err != nil {
		return nil, fmt.Errorf("solution settings %v", err)
	}
	settings.Situate(environmentName)
	err = validater.ValidateStruct(settings, "settings")
	if err != nil {
		return nil, err
	}
	if settings.Output.Kind == "pubsub" && settings.Output.PubSub.TopicID == "" {
		return nil, fmt.Errorf("solution settings output pubsub requires a topicID")
	}
	return settings, nil
}
