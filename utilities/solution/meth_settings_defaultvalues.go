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

// DefaultValues returns the values used to fill block inputs left empty
// Keys match block field names
func (settings *Settings) DefaultValues() map[string]interface{} {
	defaults := make(map[string]interface{})
	if settings.Defaults.Project != "" {
		defaults["project"] = settings.Defaults.Project
	}
	if settings.Defaults.Region != "" {
		defaults["region"] = settings.Defaults.Region
	}
	if settings.Defaults.Zone != "" {
		defaults["zone"] = settings.Defaults.Zone
	}
	if settings.Defaults.Location != "" {
		defaults["location"] = settings.Defaults.Location
	}
	return defaults
}

// EndpointsByAPI returns the base URL per API name
func (settings *Settings) EndpointsByAPI() map[string]string {
	return map[string]string{
		"compute":       settings.Endpoints.Compute,
		"container":     settings.Endpoints.Container,
		"secretmanager": settings.Endpoints.SecretManager,
	}
}
