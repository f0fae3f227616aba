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

// Command gcpblocks lists, describes, exports and runs Google Cloud integration blocks
package main

import (
	"context"
	"log"
	"os"

	"github.com/BrunoReboul/gcpblocks/utilities/blockcli"
)

func main() {
	err := blockcli.NewRootCommand(context.Background(), os.Stdout).Execute()
	if err != nil {
		log.Fatalln(err)
	}
}
