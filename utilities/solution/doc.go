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

/*
Package solution settings common to all blocks

Settings are read from a YAML file, then overridden by environment variables:

	GCPBLOCKS_ENVIRONMENT            environment name, selects defaults.projectIDs
	GCPBLOCKS_ACCESS_TOKEN           pre-supplied OAuth2 access token
	GCPBLOCKS_SERVICE_ACCOUNT_KEY    service account JSON key content
	GOOGLE_APPLICATION_CREDENTIALS   service account JSON key file path
	GCPBLOCKS_PROJECT, GCPBLOCKS_REGION, GCPBLOCKS_ZONE, GCPBLOCKS_LOCATION
	GCPBLOCKS_COMPUTE_ENDPOINT, GCPBLOCKS_CONTAINER_ENDPOINT, GCPBLOCKS_SECRETMANAGER_ENDPOINT
	GCPBLOCKS_OUTPUT                 stdout or pubsub
*/
package solution
