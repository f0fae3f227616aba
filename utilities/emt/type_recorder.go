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

package emt

import (
	"context"
	"sync"

	"github.com/BrunoReboul/gcpblocks/utilities/blk"
)

// Recorder keeps emitted events in memory
type Recorder struct {
	mu     sync.Mutex
	events []blk.Event
}

// Emit records the event
func (recorder *Recorder) Emit(ctx context.Context, event blk.Event) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.events = append(recorder.events, event)
	return nil
}

// Events returns a copy of recorded events
func (recorder *Recorder) Events() []blk.Event {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	events := make([]blk.Event, len(recorder.events))
	copy(events, recorder.events)
	return events
}

// Last returns the last recorded event
func (recorder *Recorder) Last() (blk.Event, bool) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if len(recorder.events) == 0 {
		return blk.Event{}, false
	}
	return recorder.events[len(recorder.events)-1], true
}
