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
Package blk defines a block: one Google Cloud REST operation exposed to the workflow platform

A block is declarative: a name, a category, an HTTP method, a path template and typed fields.
Fields are located in the path, the query string or the JSON body.

Run executes the block:

- resolve credentials and acquire a bearer token
- substitute {placeholders} in the path template with input values
- serialize the query string and the body from the defined fields only
- issue one HTTP request, non 2xx responses fail with *erm.HTTPError
- emit the parsed JSON response, an empty object when the body is empty

Failures are not retried.
*/
package blk
