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
	"net/http"
	"time"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/BrunoReboul/gcpblocks/utilities/emt"
	"github.com/BrunoReboul/gcpblocks/utilities/gps"
	"github.com/BrunoReboul/gcpblocks/utilities/solution"
)

// newRuntime wires settings into a block runtime, the returned func releases the emitter
func newRuntime(ctx context.Context, settings *solution.Settings, stdout io.Writer) (*blk.Runtime, func(), error) {
	runtime := &blk.Runtime{
		Credentials: settings.Credentials,
		Endpoints:   settings.EndpointsByAPI(),
		Defaults:    settings.DefaultValues(),
		HTTPClient:  &http.Client{Timeout: time.Duration(settings.HTTP.TimeoutSeconds) * time.Second},
		Environment: settings.Environment,
	}
	switch settings.Output.Kind {
	case "pubsub":
		emitter, err := gps.NewPubSubEmitterWithCredentials(ctx,
			settings.Credentials,
			settings.Output.PubSub.ProjectID,
			settings.Output.PubSub.TopicID)
		if err != nil {
			return nil, nil, err
		}
		runtime.Emitter = emitter
		return runtime, func() { emitter.Close() }, nil
	default:
		emitter := emt.NewWriterEmitter(stdout)
		emitter.DataOnly = settings.Output.DataOnly
		runtime.Emitter = emitter
		return runtime, func() {}, nil
	}
}
