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

package blockcli

import (
	"context"
	"io"

	"github.com/BrunoReboul/gcpblocks/utilities/solution"
)

// Global structure for global variables
type Global struct {
	ctx             context.Context
	stdout          io.Writer
	settingsPath    string
	environmentName string
}

func (global *Global) loadSettings() (*solution.Settings, error) {
	return solution.Load(global.settingsPath, global.environmentName)
}
