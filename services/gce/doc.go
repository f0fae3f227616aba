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
Package gce Compute Engine networking blocks

Each block wraps one operation of the Compute Engine API v1 on networking resources:

- addresses and globalAddresses
- networks and subnetworks
- firewalls and routes
- routers, including Cloud NAT status
- global and regional operations

Mutations return a compute#operation, poll it with the operations blocks.
*/
package gce
