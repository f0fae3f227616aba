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
Package aut resolves block credentials into OAuth2 bearer tokens

Two credential kinds are accepted:

- a pre-supplied access token, used as-is
- a service account JSON key, exchanged for an access token with a signed JWT assertion, optionally impersonating a user (domain wide delegation)

The access token wins when both are provided.
*/
package aut
