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
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/gcpblocks/utilities/aut"
	"google.golang.org/api/option"
)

// NewPubSubEmitter returns an emitter publishing to projects/projectID/topics/topicID
func NewPubSubEmitter(ctx context.Context, projectID string, topicID string, opts ...option.ClientOption) (*PubSubEmitter, error) {
	if projectID == "" || topicID == "" {
		return nil, fmt.Errorf("gps projectID and topicID are required, got '%s' '%s'", projectID, topicID)
	}
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("gps pubsub.NewClient %v", err)
	}
	return &PubSubEmitter{
		client: client,
		topic:  client.Topic(topicID),
	}, nil
}

// NewPubSubEmitterWithCredentials authenticates the Pub/Sub client with block credentials
func NewPubSubEmitterWithCredentials(ctx context.Context, credentials aut.Credentials, projectID string, topicID string) (*PubSubEmitter, error) {
	if credentials.IsZero() {
		return NewPubSubEmitter(ctx, projectID, topicID)
	}
	clientOption, err := aut.GetClientOption(ctx, credentials, []string{pubsub.ScopePubSub})
	if err != nil {
		return nil, err
	}
	return NewPubSubEmitter(ctx, projectID, topicID, clientOption)
}
