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
Package gcpblocks Google Cloud integration blocks for workflow automation

## What

Each block wraps one Google Cloud REST operation:

- Compute Engine networking: addresses, networks, subnetworks, firewalls, routes, routers, operations
- Google Kubernetes Engine: clusters, node pools, operations, server config
- Secret Manager: secrets, versions, IAM policies, locations

A block declares its typed input fields and output schema, acquires an OAuth2 bearer token from an
access token or a service account key, issues one HTTP request and emits the parsed JSON response.

## How

- services/gce, services/gke, services/gsm declare the blocks
- services/catalog lists them
- utilities/blk runs them
- utilities/blockcli and cmd/gcpblocks host them on the command line
*/
package gcpblocks
