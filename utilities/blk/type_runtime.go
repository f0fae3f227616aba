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

import (
	"net/http"

	"github.com/BrunoReboul/gcpblocks/utilities/aut"
)

// Runtime carries what the hosting platform provides to every block execution
type Runtime struct {
	Credentials aut.Credentials
	// Endpoints overrides DefaultEndpoints, keyed by API name
	Endpoints map[string]string
	// Defaults fills path, query or body fields missing from the input, keyed by field name
	Defaults    map[string]interface{}
	HTTPClient  *http.Client
	Emitter     Emitter
	Environment string
}

func (runtime *Runtime) endpoint(api string) string {
	if runtime != nil {
		if baseURL, ok := runtime.Endpoints[api]; ok && baseURL != "" {
			return baseURL
		}
	}
	return DefaultEndpoints[api]
}

func (runtime *Runtime) httpClient() *http.Client {
	if runtime != nil && runtime.HTTPClient != nil {
		return runtime.HTTPClient
	}
	return http.DefaultClient
}

func (runtime *Runtime) defaults() map[string]interface{} {
	if runtime == nil {
		return nil
	}
	return runtime.Defaults
}

func (runtime *Runtime) emitter() Emitter {
	if runtime == nil {
		return nil
	}
	return runtime.Emitter
}

func (runtime *Runtime) environment() string {
	if runtime == nil {
		return ""
	}
	return runtime.Environment
}
