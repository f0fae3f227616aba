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
Package services structure

All block packages share a consistent structure

## One function and one variable per block

### `Blocks` function

- Goal
  - Expose the blocks of one Google Cloud API to the catalog
- Implementation
  - Returns the package block variables, in declaration order

### Block variables

- One `blk.Block` per REST operation, named after the resource and the method, e.g. `routersGetNatMappingInfo`
- Grouped in one `var_<resource>.go` file per resource
- Fields reuse the package helpers in `func_fields.go`, output schemas are declared in `var_outputs.go`
- Block names are `<package>.<resource>.<method>`, the method being the one of the Google Cloud REST reference

### `catalog`

- Goal
  - Single place to find a block by name or by category
- Implementation
  - Loads every package `Blocks` once
  - Tests check the consistency of every block declaration

*/
package services
