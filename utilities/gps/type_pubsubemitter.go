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

package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/gcpblocks/utilities/blk"
	"github.com/BrunoReboul/gcpblocks/utilities/logging"
)

// PubSubEmitter publishes each event as a Pub/Sub message
type PubSubEmitter struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// Emit publish the event and wait for the server to acknowledge it
// No retry here as already implemented in the GO client
func (emitter *PubSubEmitter) Emit(ctx context.Context, event blk.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gps json.Marshal %v", err)
	}
	id, err := emitter.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"block":        event.Block,
			"execution_id": event.ExecutionID,
		},
	}).Get(ctx)
	if err != nil {
		return fmt.Errorf("gps publish %s %v", emitter.topic.String(), err)
	}
	log.Println(logging.Entry{
		BlockName:   event.Block,
		ExecutionID: event.ExecutionID,
		Message:     "published",
		Description: fmt.Sprintf("topic %s message id %s", emitter.topic.String(), id),
	})
	return nil
}

// Close flushes pending messages and releases the client
func (emitter *PubSubEmitter) Close() error {
	emitter.topic.Stop()
	return emitter.client.Close()
}
